package balance

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/logging"
	"github.com/Nahom8bit/Balancer/internal/reconcile"
	"github.com/Nahom8bit/Balancer/internal/service"
)

// Totals holds the per-category sums shown on each category card.
type Totals struct {
	OpeningBalance string `json:"openingBalance" doc:"Decimal total"`
	ClosingBalance string `json:"closingBalance" doc:"Decimal total"`
	Sales          string `json:"sales" doc:"Decimal total"`
	PettyCash      string `json:"pettyCash" doc:"Decimal total"`
	Purchases      string `json:"purchases" doc:"Decimal total"`
	Payments       string `json:"payments" doc:"Decimal total"`
}

// BalanceResponseBody is the reconciliation of today's entries.
type BalanceResponseBody struct {
	Day             string         `json:"day" doc:"Reconciled day, YYYY-MM-DD"`
	Totals          Totals         `json:"totals"`
	CheckingBalance string         `json:"checkingBalance" doc:"(pettyCash + purchases + closingBalance) - (payments + openingBalance)"`
	Difference      string         `json:"difference" doc:"checkingBalance - sales"`
	Status          string         `json:"status" enum:"balanced,excess,missing"`
	EntryCounts     map[string]int `json:"entryCounts" doc:"Number of entries per category"`
}

type GetBalanceOutput struct {
	Body BalanceResponseBody
}

// balancer is the interface for reconciling the current day.
type balancer interface {
	Balance(ctx context.Context) (*service.Balance, error)
}

// GetBalanceHandler handles GET /v1/balance.
type GetBalanceHandler struct {
	LedgerService balancer
}

func NewGetBalanceHandler(svc balancer) *GetBalanceHandler {
	return &GetBalanceHandler{LedgerService: svc}
}

func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/balance",
		Summary:     "Reconcile today",
		Description: "Reconciles today's entries and reports whether cash is balanced, in excess or missing.",
		Tags:        []string{"Balance"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, _ *struct{}) (*GetBalanceOutput, error) {
	logData := logging.GetLogData(ctx)

	balance, err := h.LedgerService.Balance(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to reconcile", err)
	}

	if logData != nil {
		logData.AddData("balanceStatus", balance.Report.Status)
	}
	return &GetBalanceOutput{Body: toResponse(balance)}, nil
}

func toResponse(b *service.Balance) BalanceResponseBody {
	r := b.Report
	counts := make(map[string]int, len(ledger.Categories))
	for _, c := range ledger.Categories {
		counts[c.String()] = len(b.Entries[c])
	}
	return BalanceResponseBody{
		Day: b.Day.Format("2006-01-02"),
		Totals: Totals{
			OpeningBalance: r.OpeningBalance.StringFixed(2),
			ClosingBalance: r.ClosingBalance.StringFixed(2),
			Sales:          r.Sales.StringFixed(2),
			PettyCash:      r.PettyCash.StringFixed(2),
			Purchases:      r.Purchases.StringFixed(2),
			Payments:       r.Payments.StringFixed(2),
		},
		CheckingBalance: r.CheckingBalance.StringFixed(2),
		Difference:      r.Difference.StringFixed(2),
		Status:          statusOrBalanced(r.Status),
		EntryCounts:     counts,
	}
}

func statusOrBalanced(s reconcile.Status) string {
	if s == "" {
		return string(reconcile.StatusBalanced)
	}
	return string(s)
}
