// Package main is the entry point for the Telegram bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lifeos-app/xp-platform/internal/bot"
	"github.com/lifeos-app/xp-platform/internal/config"
	"github.com/lifeos-app/xp-platform/internal/taskapi"
	"github.com/lifeos-app/xp-platform/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	if err := cfg.ValidateBot(); err != nil {
		log.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	api := taskapi.NewClient(cfg.TaskAPIBaseURL, log)

	b, err := bot.New(cfg, api, log)
	if err != nil {
		log.Error("failed to start bot", zap.Error(err))
		os.Exit(1)
	}

	if err := b.SetCommands(); err != nil {
		log.Warn("failed to publish command menu", zap.Error(err))
	}

	go b.Start()

	log.Info("bot started",
		zap.Int("admins", len(cfg.AdminIDs)),
		zap.String("task_api", cfg.TaskAPIBaseURL),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down bot")
	b.Stop()
	log.Info("bot stopped")
}
