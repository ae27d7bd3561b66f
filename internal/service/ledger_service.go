package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/operator/actions"
	"github.com/Nahom8bit/Balancer/internal/reconcile"
	"github.com/Nahom8bit/Balancer/internal/session"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

// ActionProcessor runs a write action in its own transaction.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SessionState describes the closing session as seen at a point in time.
type SessionState struct {
	WithinClosingWindow bool
	WindowStartHour     int
	WindowEndHour       int
	ActiveDay           time.Time
}

// Balance is the reconciliation of one day together with the entries it
// was computed from.
type Balance struct {
	Day     time.Time
	Entries map[ledger.Category][]ledger.Entry
	Report  reconcile.BalanceReport
}

// LedgerService handles the write admission rules and same-day reads.
type LedgerService struct {
	storage   *storage.Storage
	processor ActionProcessor
	window    session.Window
	now       func() time.Time
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store *storage.Storage, processor ActionProcessor, window session.Window) *LedgerService {
	if window.Location == nil {
		window.Location = store.Location()
	}
	return &LedgerService{
		storage:   store,
		processor: processor,
		window:    window,
		now:       time.Now,
	}
}

// SetClock replaces the time source.
func (s *LedgerService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *LedgerService) today() time.Time {
	return s.now().In(s.window.Location)
}

// IsWithinClosingWindow reports whether inserts are currently admitted.
func (s *LedgerService) IsWithinClosingWindow() bool {
	return s.window.IsWithinClosingWindow(s.now())
}

func (s *LedgerService) Session() SessionState {
	now := s.today()
	return SessionState{
		WithinClosingWindow: s.window.IsWithinClosingWindow(now),
		WindowStartHour:     s.window.StartHour,
		WindowEndHour:       s.window.EndHour,
		ActiveDay:           now,
	}
}

// Insert records a new entry. It fails with ledger.ErrClosedWindow outside
// closing time and with ledger.ErrStaleSession when the store still holds
// entries from an earlier day.
func (s *LedgerService) Insert(ctx context.Context, draft ledger.Draft) (int64, error) {
	now := s.today()
	if !s.window.IsWithinClosingWindow(now) {
		return 0, ledger.ErrClosedWindow
	}
	if draft.Fields == nil {
		return 0, &ledger.ValidationError{Reason: "missing fields"}
	}

	action := &actions.InsertEntry{Draft: draft, Now: now}
	if err := s.processor.Process(ctx, action); err != nil {
		logrus.WithError(err).WithField("category", draft.Fields.Category()).Warn("Operator.Action.Insert.Rejected")
		return 0, err
	}

	logrus.WithFields(logrus.Fields{
		"category": draft.Fields.Category(),
		"id":       action.ID,
	}).Info("Operator.Action.Insert")
	return action.ID, nil
}

// Select returns today's entries of a category ordered by id.
func (s *LedgerService) Select(ctx context.Context, c ledger.Category) ([]ledger.Entry, error) {
	return s.SelectDay(ctx, c, s.today())
}

func (s *LedgerService) SelectDay(ctx context.Context, c ledger.Category, day time.Time) ([]ledger.Entry, error) {
	return s.storage.Read().Entries.ListForDay(ctx, c, day)
}

// Update replaces the fields of entry id in category c. Unknown ids report
// changed=false without an error.
func (s *LedgerService) Update(ctx context.Context, c ledger.Category, id int64, fields ledger.Fields) (bool, error) {
	if fields == nil {
		return false, &ledger.ValidationError{Reason: "missing fields"}
	}
	if fields.Category() != c {
		return false, &ledger.ValidationError{Reason: fmt.Sprintf("fields of %s cannot update %s", fields.Category(), c)}
	}

	action := &actions.UpdateEntry{ID: id, Fields: fields}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}

	logrus.WithFields(logrus.Fields{
		"category": c,
		"id":       id,
		"changed":  action.Changed,
	}).Info("Operator.Action.Update")
	return action.Changed, nil
}

// Delete removes entry id from category c. Unknown ids report
// changed=false without an error.
func (s *LedgerService) Delete(ctx context.Context, c ledger.Category, id int64) (bool, error) {
	action := &actions.DeleteEntry{Category: c, ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, err
	}

	logrus.WithFields(logrus.Fields{
		"category": c,
		"id":       id,
		"changed":  action.Changed,
	}).Info("Operator.Action.Delete")
	return action.Changed, nil
}

// DayEntries returns today's entries of every category.
func (s *LedgerService) DayEntries(ctx context.Context) (time.Time, map[ledger.Category][]ledger.Entry, error) {
	day := s.today()
	result := make(map[ledger.Category][]ledger.Entry, len(ledger.Categories))
	for _, c := range ledger.Categories {
		entries, err := s.SelectDay(ctx, c, day)
		if err != nil {
			return day, nil, err
		}
		result[c] = entries
	}
	return day, result, nil
}

// Balance reconciles today's entries.
func (s *LedgerService) Balance(ctx context.Context) (*Balance, error) {
	day, entries, err := s.DayEntries(ctx)
	if err != nil {
		return nil, err
	}
	return &Balance{
		Day:     day,
		Entries: entries,
		Report:  reconcile.Reconcile(entries),
	}, nil
}
