package main

import (
	"context"
	"log"

	"github.com/campusnotes/notes-client/internal/gateway"
	"github.com/campusnotes/notes-client/pkg/config"
	"github.com/campusnotes/notes-client/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	srv := gateway.New(cfg, logr)
	if err := srv.Run(context.Background()); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
