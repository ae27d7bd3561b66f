package entry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nahom8bit/Balancer/internal/ledger"
	"github.com/Nahom8bit/Balancer/internal/logging"
)

// ListEntriesInput is the Huma input for listing today's entries.
type ListEntriesInput struct {
	Category string `path:"category" doc:"One of opening_balance, closing_balance, sales, petty_cash, purchase, payment"`
}

type ListEntriesResponseBody struct {
	Entries []Entry `json:"entries" doc:"Entries dated today, ordered by id"`
}

// ListEntriesOutput is the Huma output for listing today's entries.
type ListEntriesOutput struct {
	Body ListEntriesResponseBody
}

// entryLister is the interface for reading today's entries.
type entryLister interface {
	Select(ctx context.Context, c ledger.Category) ([]ledger.Entry, error)
}

// ListEntriesHandler handles GET /v1/entry/{category}.
type ListEntriesHandler struct {
	LedgerService entryLister
}

// NewListEntriesHandler creates a new ListEntriesHandler.
func NewListEntriesHandler(svc entryLister) *ListEntriesHandler {
	return &ListEntriesHandler{LedgerService: svc}
}

// Register registers the list entries endpoint with the Huma API.
func (h *ListEntriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-entries",
		Method:      http.MethodGet,
		Path:        "/v1/entry/{category}",
		Summary:     "List today's entries",
		Description: "Returns the entries of a category dated today. Entries from other days are never returned.",
		Tags:        []string{"Entries"},
	}, h.handle)
}

func (h *ListEntriesHandler) handle(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	logData := logging.GetLogData(ctx)
	c, err := parseCategory(input.Category)
	if err != nil {
		return nil, err
	}

	entries, err := h.LedgerService.Select(ctx, c)
	if err != nil {
		return nil, toHumaError(err, "failed to list entries")
	}

	if logData != nil {
		logData.AddData("entryCount", len(entries))
	}

	resp := ListEntriesResponseBody{Entries: make([]Entry, len(entries))}
	for i, e := range entries {
		resp.Entries[i] = toAPIEntry(e)
	}
	return &ListEntriesOutput{Body: resp}, nil
}
