package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nahom8bit/Balancer/internal/logging"
	"github.com/Nahom8bit/Balancer/internal/operator"
	"github.com/Nahom8bit/Balancer/internal/service"
	"github.com/Nahom8bit/Balancer/internal/session"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

func newTestServer(t *testing.T, now time.Time) *httptest.Server {
	t.Helper()
	store, err := storage.NewStorage(filepath.Join(t.TempDir(), "ledger.db"), time.UTC)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()

	window := session.Window{StartHour: 18, EndHour: 24, Location: time.UTC}
	svc := service.NewService(store, delegator, window, "Kz")
	svc.Ledger.SetClock(func() time.Time { return now })

	logger := logging.SetupLogging("error")
	logger.Out = io.Discard
	rest := &Rest{Logger: logger, Storage: store, Service: svc}

	server := httptest.NewServer(rest.Handler())
	t.Cleanup(func() {
		server.Close()
		delegator.Stop()
		_ = store.Close()
	})
	return server
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return resp
}

func TestStatus(t *testing.T) {
	server := newTestServer(t, time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC))

	resp, err := http.Get(server.URL + "/status")

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClosingFlow(t *testing.T) {
	server := newTestServer(t, time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC))

	for _, tc := range []struct {
		path string
		body map[string]any
	}{
		{"/v1/entry/opening_balance", map[string]any{"amount": 1000}},
		{"/v1/entry/petty_cash", map[string]any{"description": "taxi", "amount": 50}},
		{"/v1/entry/petty_cash", map[string]any{"description": "bags", "amount": 30}},
		{"/v1/entry/purchase", map[string]any{"description": "flour", "type": "goods", "amount": 200}},
		{"/v1/entry/payment", map[string]any{"description": "supplier", "amount": 100}},
		{"/v1/entry/closing_balance", map[string]any{"amount": 900}},
		{"/v1/entry/sales", map[string]any{"amount": 1180}},
	} {
		resp := post(t, server.URL+tc.path, tc.body)
		assert.Equal(t, http.StatusCreated, resp.StatusCode, tc.path)
		_ = resp.Body.Close()
	}

	resp, err := http.Get(server.URL + "/v1/balance")
	assert.NoError(t, err)
	defer resp.Body.Close()
	var balance struct {
		CheckingBalance string `json:"checkingBalance"`
		Difference      string `json:"difference"`
		Status          string `json:"status"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&balance))
	assert.Equal(t, "80.00", balance.CheckingBalance)
	assert.Equal(t, "-1100.00", balance.Difference)
	assert.Equal(t, "missing", balance.Status)

	reportResp, err := http.Get(server.URL + "/v1/report")
	assert.NoError(t, err)
	defer reportResp.Body.Close()
	doc, err := io.ReadAll(reportResp.Body)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "# Balancer: Shop Closing Report"))
	assert.Contains(t, string(doc), "**Missing amount**")
}

func TestInsertOutsideClosingTime(t *testing.T) {
	server := newTestServer(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	resp := post(t, server.URL+"/v1/entry/sales", map[string]any{"amount": 10})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
