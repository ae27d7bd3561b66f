package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	server_config "github.com/Nahom8bit/Balancer/internal/config"
	"github.com/Nahom8bit/Balancer/internal/logging"
	"github.com/Nahom8bit/Balancer/internal/storage"
)

func main() {
	cfg, err := server_config.Load(os.Getenv("BALANCER_CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}
	logging.SetupLogging(cfg.Log.Level)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		logrus.WithError(err).Fatal("os.MkdirAll")
		return
	}

	db, err := storage.Open(cfg.Database.Path)
	if err != nil {
		logrus.WithError(err).Fatal("storage.Open")
		return
	}
	defer db.Close()

	if _, _, err := storage.Migrate(db); err != nil {
		logrus.WithError(err).Fatal("storage.Migrate")
		return
	}
}

