package entry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nahom8bit/Balancer/internal/ledger"
)

// Entry is the API response model for a ledger entry.
type Entry struct {
	ID          int64  `json:"id" doc:"Row id, unique within the category"`
	Category    string `json:"category" doc:"Category the entry belongs to"`
	Description string `json:"description,omitempty" doc:"Free text description"`
	Type        string `json:"type,omitempty" doc:"Purchase type"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Date        string `json:"date" doc:"RFC3339 entry date"`
}

// ChangedBody reports whether an update or delete touched a row.
type ChangedBody struct {
	Changed bool `json:"changed" doc:"False when no entry has the given id"`
}

func toAPIEntry(e ledger.Entry) Entry {
	out := Entry{
		ID:       e.ID,
		Category: e.Category().String(),
		Amount:   e.Amount().String(),
		Date:     e.Date.Format(time.RFC3339),
	}
	switch f := e.Fields.(type) {
	case ledger.PettyCash:
		out.Description = f.Description
	case ledger.Payment:
		out.Description = f.Description
	case ledger.Purchase:
		out.Description = f.Description
		out.Type = f.Type
	}
	return out
}

func parseCategory(name string) (ledger.Category, error) {
	c, err := ledger.ParseCategory(name)
	if err != nil {
		return "", huma.NewError(http.StatusNotFound, "unknown category "+name, err)
	}
	return c, nil
}

// toHumaError maps ledger errors onto HTTP statuses. Anything unrecognized
// is reported as a 500 with the given message.
func toHumaError(err error, fallback string) error {
	switch {
	case errors.Is(err, ledger.ErrClosedWindow):
		return huma.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, ledger.ErrStaleSession):
		return huma.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, ledger.ErrValidation):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ledger.ErrUnknownCategory), errors.Is(err, ledger.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, "request cancelled", err)
	}
	return huma.NewError(http.StatusInternalServerError, fallback, err)
}
