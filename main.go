package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Nahom8bit/Balancer/api"
	"github.com/Nahom8bit/Balancer/internal/config"
	"github.com/Nahom8bit/Balancer/internal/logging"
	"github.com/Nahom8bit/Balancer/internal/operator"
	"github.com/Nahom8bit/Balancer/internal/service"
	"github.com/Nahom8bit/Balancer/internal/session"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Getenv("BALANCER_CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	logger := logging.SetupLogging(cfg.Log.Level)
	logrus.Info("balancer starting")

	location, err := cfg.Location()
	if err != nil {
		logrus.WithError(err).Fatal("config.Location")
		return
	}

	dbStorage, err := storage.NewStorage(cfg.Database.Path, location)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer func() {
		if err := dbStorage.Close(); err != nil {
			logrus.WithError(err).Error("storage.Close")
		}
	}()

	delegator := operator.NewOperatorDelegator(dbStorage, 1)
	delegator.Start()
	defer delegator.Stop()

	window := session.Window{
		StartHour: cfg.Session.WindowStartHour,
		EndHour:   cfg.Session.WindowEndHour,
		Location:  location,
	}
	svc := service.NewService(dbStorage, delegator, window, cfg.Report.Currency)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:  logger,
		Port:    cfg.Server.Port,
		Storage: dbStorage,
		Service: svc,
	}
	httpRest.Serve(ctx)
}
