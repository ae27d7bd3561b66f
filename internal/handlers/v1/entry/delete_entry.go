package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

// DeleteEntryInput is the Huma input for removing an entry.
type DeleteEntryInput struct {
	Category string `path:"category" doc:"One of opening_balance, closing_balance, sales, petty_cash, purchase, payment"`
	ID int64 `path:"id" doc:"Entry id"`
}

// DeleteEntryOutput is the Huma output for removing an entry.
type DeleteEntryOutput struct {
	Body ChangedBody
}

type entryDeleter interface {
	Delete(ctx context.Context, c ledger.Category, id int64) (bool, error)
}

// DeleteEntryHandler handles DELETE /v1/entry/{category}/{id}.
type DeleteEntryHandler struct {
	LedgerService entryDeleter
}

func NewDeleteEntryHandler(svc entryDeleter) *DeleteEntryHandler {
	return &DeleteEntryHandler{LedgerService: svc}
}

func (h *DeleteEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-entry",
		Method:      http.MethodDelete,
		Path:        "/v1/entry/{category}/{id}",
		Summary:     "Delete entry",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *DeleteEntryHandler) handle(ctx context.Context, input *DeleteEntryInput) (*DeleteEntryOutput, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	changed, err := h.LedgerService.Delete(ctx, c, input.ID)
	if err != nil {
		return nil, toHumaError(err, "failed to delete entry")
	}
	return &DeleteEntryOutput{Body: ChangedBody{Changed: changed}}, nil
}
