package actions

import (
	"context"

	"github.com/Nahom8bit/Balancer/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
