package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/alertwatch/alertwatch/internal/config"
	"github.com/alertwatch/alertwatch/internal/httpapi"
	"github.com/alertwatch/alertwatch/internal/logging"
	"github.com/alertwatch/alertwatch/internal/repo"
	"github.com/alertwatch/alertwatch/internal/repo/memory"
	"github.com/alertwatch/alertwatch/internal/repo/postgres"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var store repo.AlertStore
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		store = pg
		logger.Info("store", zap.String("kind", "postgres"))
	} else {
		store = memory.New()
		logger.Info("store", zap.String("kind", "memory"))
	}

	api := httpapi.NewServer(logger, store)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router(cfg.AllowedOrigins, cfg.RateLimitRPM, cfg.RateLimitBurst)); err != nil {
		log.Fatal(err)
	}
}
