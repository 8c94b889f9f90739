package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"spellcheck-app/internal/config"
)

func main() {
	// stdout は結果専用。ログはすべて stderr へ
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, config.DefaultPath()).ExecuteContext(ctx)
	stop()

	if err != nil {
		slog.Error("spellcheck failed", "error", err)
		os.Exit(1)
	}
}
