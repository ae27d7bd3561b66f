package storage

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"

	"github.com/Nahom8bit/Balancer/internal/storage/entry"
)

type Writer struct {
	tx      bob.Tx
	Entries *entry.Writer
}

func NewWriter(tx bob.Tx, location *time.Location) Writer {
	return Writer{
		tx:      tx,
		Entries: entry.NewWriter(tx, location),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
