package actions

import (
	"context"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

type DeleteEntry struct {
	Category ledger.Category
	ID       int64

	Changed bool
	IAction
}

func (d *DeleteEntry) Perform(ctx context.Context, writer *storage.Writer) error {
	changed, err := writer.Entries.Delete(ctx, d.Category, d.ID)
	if err != nil {
		return err
	}
	d.Changed = changed
	return nil
}
