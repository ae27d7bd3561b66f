package service

import (
	"github.com/Nahom8bit/Balancer/internal/session"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Ledger *LedgerService
	Report *ReportService
}

// NewService creates a new Service over an opened storage and the operator
// that serializes its writes.
func NewService(store *storage.Storage, processor ActionProcessor, window session.Window, currency string) *Service {
	ledgerService := NewLedgerService(store, processor, window)
	return &Service{
		Ledger: ledgerService,
		Report: NewReportService(ledgerService, currency),
	}
}
