package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

// UpdateEntryInput is the Huma input for replacing an entry's fields.
type UpdateEntryInput struct {
	Category string `path:"category" doc:"One of opening_balance, closing_balance, sales, petty_cash, purchase, payment"`
	ID   int64 `path:"id" doc:"Entry id"`
	Body map[string]any
}

// UpdateEntryOutput is the Huma output for replacing an entry's fields.
type UpdateEntryOutput struct {
	Body ChangedBody
}

// entryUpdater is the interface for updating entries.
type entryUpdater interface {
	Update(ctx context.Context, c ledger.Category, id int64, fields ledger.Fields) (bool, error)
}

// UpdateEntryHandler handles PUT /v1/entry/{category}/{id}.
type UpdateEntryHandler struct {
	LedgerService entryUpdater
}

// NewUpdateEntryHandler creates a new UpdateEntryHandler.
func NewUpdateEntryHandler(svc entryUpdater) *UpdateEntryHandler {
	return &UpdateEntryHandler{LedgerService: svc}
}

// Register registers the update entry endpoint with the Huma API.
func (h *UpdateEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-entry",
		Method:      http.MethodPut,
		Path:        "/v1/entry/{category}/{id}",
		Summary:     "Update entry",
		Description: "Replaces every field of an entry. The entry date is kept.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

// parseUpdateEntryInput resolves the category and decodes the replacement
// fields. The date of an entry cannot be changed.
func parseUpdateEntryInput(input *UpdateEntryInput) (ledger.Category, ledger.Fields, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return "", nil, err
	}
	if _, ok := input.Body[ledger.ColumnDate]; ok {
		return "", nil, huma.NewError(http.StatusUnprocessableEntity, "invalid entry: date cannot be changed")
	}
	draft, err := ledger.ParseDraft(c, input.Body)
	if err != nil {
		logrus.WithField("payload", spew.Sdump(input.Body)).Debug("UpdateEntry.Rejected")
		return "", nil, toHumaError(err, "invalid entry")
	}
	return c, draft.Fields, nil
}

func (h *UpdateEntryHandler) handle(ctx context.Context, input *UpdateEntryInput) (*UpdateEntryOutput, error) {
	c, fields, err := parseUpdateEntryInput(input)
	if err != nil {
		return nil, err
	}

	changed, err := h.LedgerService.Update(ctx, c, input.ID, fields)
	if err != nil {
		return nil, toHumaError(err, "failed to update entry")
	}
	return &UpdateEntryOutput{Body: ChangedBody{Changed: changed}}, nil
}
