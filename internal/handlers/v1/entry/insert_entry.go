package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/logging"
)

// InsertEntryInput is the Huma input for recording an entry. The body is a
// field map whose keys must belong to the category.
type InsertEntryInput struct {
	Category string `path:"category" doc:"One of opening_balance, closing_balance, sales, petty_cash, purchase, payment"`
	Body map[string]any
}

type InsertEntryResponse struct {
	ID int64 `json:"id" doc:"Id of the new entry"`
}

// InsertEntryOutput is the Huma output for recording an entry.
type InsertEntryOutput struct {
	Body InsertEntryResponse
}

// entryInserter is the interface for recording entries.
type entryInserter interface {
	Insert(ctx context.Context, draft ledger.Draft) (int64, error)
}

// InsertEntryHandler handles POST /v1/entry/{category}.
type InsertEntryHandler struct {
	LedgerService entryInserter
}

// NewInsertEntryHandler creates a new InsertEntryHandler.
func NewInsertEntryHandler(svc entryInserter) *InsertEntryHandler {
	return &InsertEntryHandler{LedgerService: svc}
}

// Register registers the insert entry endpoint with the Huma API.
func (h *InsertEntryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "insert-entry",
		Method:        http.MethodPost,
		Path:          "/v1/entry/{category}",
		Summary:       "Record entry",
		Description:   "Records an entry for today. Only accepted during closing time and while the store holds no entries from an earlier day.",
		Tags:          []string{"Entries"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseInsertEntryInput resolves the category and decodes the field map.
func parseInsertEntryInput(input *InsertEntryInput) (ledger.Draft, error) {
	c, err := parseCategory(input.Category)
	if err != nil {
		return ledger.Draft{}, err
	}
	draft, err := ledger.ParseDraft(c, input.Body)
	if err != nil {
		logrus.WithField("payload", spew.Sdump(input.Body)).Debug("InsertEntry.Rejected")
		return ledger.Draft{}, toHumaError(err, "invalid entry")
	}
	return draft, nil
}

func (h *InsertEntryHandler) handle(ctx context.Context, input *InsertEntryInput) (*InsertEntryOutput, error) {
	logData := logging.GetLogData(ctx)
	draft, err := parseInsertEntryInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("category", input.Category)
		stopTimer = logData.AddTiming("insertEntryMs")
	}
	id, err := h.LedgerService.Insert(ctx, draft)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err, "failed to record entry")
	}

	if logData != nil {
		logData.AddData("id", id)
	}
	return &InsertEntryOutput{Body: InsertEntryResponse{ID: id}}, nil
}
