package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/yahtzee-scorekeeper/internal/api"
	"github.com/mcoot/yahtzee-scorekeeper/internal/factory"
	"github.com/mcoot/yahtzee-scorekeeper/internal/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run wires the app from the environment and serves until ctx is cancelled
func run(ctx context.Context, logger *slog.Logger) error {
	serverConfig, err := api.LoadServerConfig()
	if err != nil {
		return err
	}

	cfg, err := factory.ConfigFromEnv()
	if err != nil {
		return err
	}
	cfg.Logger = logger

	app, err := factory.New(cfg)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("storage close failed", slog.String("error", err.Error()))
		}
	}()
	logger.Info("storage ready", slog.String("type", cfg.StorageType))

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
	}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:            logger,
		SessionController: app.SessionController,
		ScoringService:    app.ScoringService,
		StaticDir:         findStaticDir(),
	}))

	server := api.NewServer(mux, serverConfig, logger)
	if err := server.Listen(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	if err := server.Shutdown(context.Background()); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// findStaticDir returns the static assets directory if one is present
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
