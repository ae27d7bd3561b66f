package actions

import (
	"context"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

// UpdateEntry overwrites the fields of an existing entry. A missing id is
// not an error; Changed stays false.
type UpdateEntry struct {
	ID     int64
	Fields ledger.Fields

	Changed bool
	IAction
}

func (u *UpdateEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	if u.Fields == nil {
		return &ledger.ValidationError{Reason: "missing fields"}
	}
	if err := u.Fields.Validate(); err != nil {
		return err
	}

	changed, err := writer.Entries.Update(ctx, u.ID, u.Fields)
	if err != nil {
		return err
	}
	u.Changed = changed
	return nil
}
