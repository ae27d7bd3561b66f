package actions

import (
	"context"
	"time"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/session"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

// InsertEntry records a draft after checking that the store does not hold
// entries from an earlier day. ID is set once Perform succeeds.
type InsertEntry struct {
	Draft ledger.Draft
	Now   time.Time

	ID int64
	IAction
}

func (i *InsertEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	if i.Draft.Fields == nil {
		return &ledger.ValidationError{Reason: "missing fields"}
	}
	if err := i.Draft.Fields.Validate(); err != nil {
		return err
	}

	latest, err := writer.Entries.LatestDate(ctx)
	if err != nil {
		return err
	}
	if err := session.AssertSameDay(i.Now, latest); err != nil {
		return err
	}

	date := i.Draft.Date
	if date.IsZero() {
		date = i.Now
	} else if !session.SameDay(i.Now, date) {
		return &ledger.ValidationError{Field: ledger.ColumnDate, Reason: "must fall on the current day"}
	}

	id, err := writer.Entries.Insert(ctx, i.Draft.Fields, date)
	if err != nil {
		return err
	}
	i.ID = id
	return nil
}
