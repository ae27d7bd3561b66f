package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// GetReportOutput is the Markdown closing report.
type GetReportOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

type closingReporter interface {
	Closing(ctx context.Context) ([]byte, error)
}

// GetReportHandler handles GET /v1/report.
type GetReportHandler struct {
	ReportService closingReporter
}

func NewGetReportHandler(svc closingReporter) *GetReportHandler {
	return &GetReportHandler{ReportService: svc}
}

func (h *GetReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-report",
		Method:      http.MethodGet,
		Path:        "/v1/report",
		Summary:     "Closing report",
		Description: "Renders today's entries and balance check as a Markdown document.",
		Tags:        []string{"Report"},
	}, h.handle)
}

func (h *GetReportHandler) handle(ctx context.Context, _ *struct{}) (*GetReportOutput, error) {
	body, err := h.ReportService.Closing(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to render report", err)
	}
	return &GetReportOutput{
		ContentType:        "text/markdown; charset=utf-8",
		ContentDisposition: `attachment; filename="balancer_report.md"`,
		Body:               body,
	}, nil
}
