package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Nahom8bit/Balancer/internal/service"
)

type SessionResponseBody struct {
	WithinClosingWindow bool   `json:"withinClosingWindow" doc:"Whether new entries are accepted right now"`
	WindowStartHour     int    `json:"windowStartHour" doc:"First hour of closing time, inclusive"`
	WindowEndHour       int    `json:"windowEndHour" doc:"Hour closing time ends, exclusive"`
	ActiveDay           string `json:"activeDay" doc:"Day entries are recorded against, YYYY-MM-DD"`
}

type GetSessionOutput struct {
	Body SessionResponseBody
}

type sessionProber interface {
	Session() service.SessionState
}

// GetSessionHandler handles GET /v1/session.
type GetSessionHandler struct {
	LedgerService sessionProber
}

func NewGetSessionHandler(svc sessionProber) *GetSessionHandler {
	return &GetSessionHandler{LedgerService: svc}
}

func (h *GetSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/v1/session",
		Summary:     "Closing session state",
		Tags:        []string{"Session"},
	}, h.handle)
}

func (h *GetSessionHandler) handle(_ context.Context, _ *struct{}) (*GetSessionOutput, error) {
	state := h.LedgerService.Session()
	return &GetSessionOutput{Body: SessionResponseBody{
		WithinClosingWindow: state.WithinClosingWindow,
		WindowStartHour:     state.WindowStartHour,
		WindowEndHour:       state.WindowEndHour,
		ActiveDay:           state.ActiveDay.Format("2006-01-02"),
	}}, nil
}
