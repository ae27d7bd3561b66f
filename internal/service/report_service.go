package service

import (
	"context"

	"github.com/Nahom8bit/Balancer/internal/report"
)

// ReportService renders the closing report of the current day.
type ReportService struct {
	ledger   *LedgerService
	currency string
}

func NewReportService(ledger *LedgerService, currency string) *ReportService {
	return &ReportService{ledger: ledger, currency: currency}
}

// Closing returns today's closing report as Markdown.
func (s *ReportService) Closing(ctx context.Context) ([]byte, error) {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, err
	}
	return report.Bytes(report.Closing{
		Day:      balance.Day,
		Entries:  balance.Entries,
		Balance:  balance.Report,
		Currency: s.currency,
	})
}
