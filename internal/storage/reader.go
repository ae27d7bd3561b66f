package storage

import (
	"time"

	"github.com/stephenafamo/bob"

	"github.com/Nahom8bit/Balancer/internal/storage/entry"
)

type Reader struct {
	Entries *entry.Reader
}

func NewReader(exec bob.Executor, location *time.Location) *Reader {
	return &Reader{
		Entries: entry.NewReader(exec, location),
	}
}
