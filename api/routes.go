package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/Nahom8bit/Balancer/internal/handlers/v1/balance"
	"github.com/Nahom8bit/Balancer/internal/handlers/v1/entry"
	"github.com/Nahom8bit/Balancer/internal/handlers/v1/report"
	"github.com/Nahom8bit/Balancer/internal/handlers/v1/session"
	"github.com/Nahom8bit/Balancer/internal/handlers/v1/status"
	"github.com/Nahom8bit/Balancer/internal/logging"
	"github.com/Nahom8bit/Balancer/internal/service"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Storage *storage.Storage
	Service *service.Service
}

// Handler builds the router with every endpoint registered.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Balancer", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	ledgerService := r.Service.Ledger
	entry.NewInsertEntryHandler(ledgerService).Register(api)
	entry.NewListEntriesHandler(ledgerService).Register(api)
	entry.NewUpdateEntryHandler(ledgerService).Register(api)
	entry.NewDeleteEntryHandler(ledgerService).Register(api)
	balance.NewGetBalanceHandler(ledgerService).Register(api)
	session.NewGetSessionHandler(ledgerService).Register(api)
	report.NewGetReportHandler(r.Service.Report).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains open requests.
func (r *Rest) Serve(ctx context.Context) {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
