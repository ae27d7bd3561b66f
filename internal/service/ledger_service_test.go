package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/operator"
	"github.com/Nahom8bit/Balancer/internal/operator/actions"
	"github.com/Nahom8bit/Balancer/internal/reconcile"
	"github.com/Nahom8bit/Balancer/internal/session"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

var utcWindow = session.Window{StartHour: 18, EndHour: 24, Location: time.UTC}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, time.UTC)
}

func newLedgerTestService(t *testing.T, now time.Time) (*LedgerService, *storage.Storage, *clock) {
	t.Helper()
	store, err := storage.NewStorage(filepath.Join(t.TempDir(), "ledger.db"), time.UTC)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	t.Cleanup(func() {
		delegator.Stop()
		_ = store.Close()
	})

	c := &clock{now: now}
	svc := NewLedgerService(store, delegator, utcWindow)
	svc.SetClock(c.Now)
	return svc, store, c
}

func insertAmount(t *testing.T, svc *LedgerService, fields ledger.Fields) int64 {
	t.Helper()
	id, err := svc.Insert(context.Background(), ledger.Draft{Fields: fields})
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return id
}

// -- Insert tests --

func TestInsert_OutsideWindow(t *testing.T) {
	processor := &mockProcessor{}
	store, err := storage.NewStorage(filepath.Join(t.TempDir(), "ledger.db"), time.UTC)
	assert.NoError(t, err)
	defer store.Close()
	svc := NewLedgerService(store, processor, utcWindow)
	svc.SetClock(func() time.Time { return at(1, 17, 59) })

	id, err := svc.Insert(context.Background(), ledger.Draft{Fields: ledger.Sales{Amount: decimal.NewFromInt(1)}})

	assert.ErrorIs(t, err, ledger.ErrClosedWindow)
	assert.Equal(t, int64(0), id)
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestInsert_PassesNowToAction(t *testing.T) {
	processor := &mockProcessor{}
	store, err := storage.NewStorage(filepath.Join(t.TempDir(), "ledger.db"), time.UTC)
	assert.NoError(t, err)
	defer store.Close()
	svc := NewLedgerService(store, processor, utcWindow)
	svc.SetClock(func() time.Time { return at(1, 18, 0) })

	processor.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		insert, ok := a.(*actions.InsertEntry)
		return ok && insert.Now.Equal(at(1, 18, 0))
	})).Return(nil)

	_, err = svc.Insert(context.Background(), ledger.Draft{Fields: ledger.Sales{Amount: decimal.NewFromInt(1)}})

	assert.NoError(t, err)
	processor.AssertExpectations(t)
}

func TestInsert_ProcessorError(t *testing.T) {
	processor := &mockProcessor{}
	store, err := storage.NewStorage(filepath.Join(t.TempDir(), "ledger.db"), time.UTC)
	assert.NoError(t, err)
	defer store.Close()
	svc := NewLedgerService(store, processor, utcWindow)
	svc.SetClock(func() time.Time { return at(1, 20, 0) })
	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err = svc.Insert(context.Background(), ledger.Draft{Fields: ledger.Sales{Amount: decimal.NewFromInt(1)}})

	assert.EqualError(t, err, "disk full")
}

func TestInsert_WindowBoundaries(t *testing.T) {
	cases := []struct {
		now  time.Time
		open bool
	}{
		{at(1, 17, 59), false},
		{at(1, 18, 0), true},
		{at(1, 23, 59), true},
		{at(2, 0, 0), false},
	}
	for _, tc := range cases {
		svc, _, _ := newLedgerTestService(t, tc.now)
		_, err := svc.Insert(context.Background(), ledger.Draft{Fields: ledger.Sales{Amount: decimal.NewFromInt(1)}})
		if tc.open {
			assert.NoError(t, err, tc.now.String())
		} else {
			assert.ErrorIs(t, err, ledger.ErrClosedWindow, tc.now.String())
		}
		assert.Equal(t, tc.open, svc.IsWithinClosingWindow(), tc.now.String())
	}
}

func TestInsert_StaleSessionLeavesRowCount(t *testing.T) {
	svc, store, c := newLedgerTestService(t, at(1, 19, 0))
	insertAmount(t, svc, ledger.OpeningBalance{Amount: decimal.NewFromInt(1000)})

	c.now = at(2, 19, 0)
	_, err := svc.Insert(context.Background(), ledger.Draft{Fields: ledger.OpeningBalance{Amount: decimal.NewFromInt(500)}})

	assert.ErrorIs(t, err, ledger.ErrStaleSession)
	count, err := store.Read().Entries.Count(context.Background(), ledger.CategoryOpeningBalance)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestInsert_ValidationError(t *testing.T) {
	svc, store, _ := newLedgerTestService(t, at(1, 19, 0))

	_, err := svc.Insert(context.Background(), ledger.Draft{Fields: ledger.PettyCash{Amount: decimal.NewFromInt(5)}})

	assert.ErrorIs(t, err, ledger.ErrValidation)
	count, err := store.Read().Entries.Count(context.Background(), ledger.CategoryPettyCash)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// -- Select tests --

func TestSelect_Idempotent(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 19, 0))
	insertAmount(t, svc, ledger.PettyCash{Description: "taxi", Amount: decimal.NewFromInt(50)})
	insertAmount(t, svc, ledger.PettyCash{Description: "bags", Amount: decimal.NewFromInt(30)})

	first, err := svc.Select(context.Background(), ledger.CategoryPettyCash)
	assert.NoError(t, err)
	second, err := svc.Select(context.Background(), ledger.CategoryPettyCash)
	assert.NoError(t, err)

	assert.Len(t, first, 2)
	assert.Equal(t, first, second)
}

func TestSelect_OnlyToday(t *testing.T) {
	svc, _, c := newLedgerTestService(t, at(1, 19, 0))
	insertAmount(t, svc, ledger.Sales{Amount: decimal.NewFromInt(10)})

	c.now = at(2, 10, 0)
	entries, err := svc.Select(context.Background(), ledger.CategorySales)

	assert.NoError(t, err)
	assert.Empty(t, entries)
}

// -- Update tests --

func TestUpdate_UnknownID(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 19, 0))
	insertAmount(t, svc, ledger.Sales{Amount: decimal.NewFromInt(10)})
	before, err := svc.Balance(context.Background())
	assert.NoError(t, err)

	changed, err := svc.Update(context.Background(), ledger.CategorySales, 999, ledger.Sales{Amount: decimal.NewFromInt(99)})

	assert.NoError(t, err)
	assert.False(t, changed)
	after, err := svc.Balance(context.Background())
	assert.NoError(t, err)
	assert.True(t, before.Report.Sales.Equal(after.Report.Sales))
}

func TestUpdate_NotGatedByWindow(t *testing.T) {
	svc, _, c := newLedgerTestService(t, at(1, 19, 0))
	id := insertAmount(t, svc, ledger.Sales{Amount: decimal.NewFromInt(10)})

	c.now = at(1, 10, 0)
	changed, err := svc.Update(context.Background(), ledger.CategorySales, id, ledger.Sales{Amount: decimal.NewFromInt(12)})

	assert.NoError(t, err)
	assert.True(t, changed)
}

func TestUpdate_CategoryMismatch(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 19, 0))

	_, err := svc.Update(context.Background(), ledger.CategorySales, 1, ledger.Payment{Description: "x", Amount: decimal.NewFromInt(1)})

	assert.ErrorIs(t, err, ledger.ErrValidation)
}

// -- Delete tests --

func TestDelete_ThenReinsert(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 19, 0))
	insertAmount(t, svc, ledger.OpeningBalance{Amount: decimal.NewFromInt(1000)})
	id := insertAmount(t, svc, ledger.Purchase{Description: "flour", Type: "goods", Amount: decimal.NewFromInt(200)})
	before, err := svc.Balance(context.Background())
	assert.NoError(t, err)

	changed, err := svc.Delete(context.Background(), ledger.CategoryPurchase, id)
	assert.NoError(t, err)
	assert.True(t, changed)
	newID := insertAmount(t, svc, ledger.Purchase{Description: "flour", Type: "goods", Amount: decimal.NewFromInt(200)})

	assert.NotEqual(t, id, newID)
	after, err := svc.Balance(context.Background())
	assert.NoError(t, err)
	assert.True(t, before.Report.Purchases.Equal(after.Report.Purchases))
	assert.True(t, before.Report.CheckingBalance.Equal(after.Report.CheckingBalance))
}

func TestDelete_UnknownID(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 19, 0))

	changed, err := svc.Delete(context.Background(), ledger.CategoryPayment, 7)

	assert.NoError(t, err)
	assert.False(t, changed)
}

// -- Balance tests --

func TestBalance_WorkedExample(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 19, 0))
	insertAmount(t, svc, ledger.OpeningBalance{Amount: decimal.NewFromInt(1000)})
	insertAmount(t, svc, ledger.PettyCash{Description: "taxi", Amount: decimal.NewFromInt(50)})
	insertAmount(t, svc, ledger.PettyCash{Description: "bags", Amount: decimal.NewFromInt(30)})
	insertAmount(t, svc, ledger.Purchase{Description: "flour", Type: "goods", Amount: decimal.NewFromInt(200)})
	insertAmount(t, svc, ledger.Payment{Description: "supplier", Amount: decimal.NewFromInt(100)})
	insertAmount(t, svc, ledger.ClosingBalance{Amount: decimal.NewFromInt(900)})
	insertAmount(t, svc, ledger.Sales{Amount: decimal.NewFromInt(1180)})

	balance, err := svc.Balance(context.Background())

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(80).Equal(balance.Report.CheckingBalance))
	assert.True(t, decimal.NewFromInt(-1100).Equal(balance.Report.Difference))
	assert.Equal(t, reconcile.StatusMissing, balance.Report.Status)
	assert.Len(t, balance.Entries[ledger.CategoryPettyCash], 2)
}

// -- Session tests --

func TestSession(t *testing.T) {
	svc, _, _ := newLedgerTestService(t, at(1, 18, 30))

	state := svc.Session()

	assert.True(t, state.WithinClosingWindow)
	assert.Equal(t, 18, state.WindowStartHour)
	assert.Equal(t, 24, state.WindowEndHour)
	assert.True(t, at(1, 18, 30).Equal(state.ActiveDay))
}
