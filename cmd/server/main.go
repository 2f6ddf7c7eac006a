package main

import (
	"context"
	"ctchen222/solo-tic-tac-toe/internal/config"
	"ctchen222/solo-tic-tac-toe/internal/hub"
	"ctchen222/solo-tic-tac-toe/internal/logger"
	"ctchen222/solo-tic-tac-toe/internal/server"
	"ctchen222/solo-tic-tac-toe/internal/session"
	"ctchen222/solo-tic-tac-toe/internal/telemetry"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
)

func main() {
	cfg := config.MustLoad()
	level, _ := cfg.SlogLevel()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry before the logger so the otelslog bridge picks up
	// the real logger provider.
	shutdown, err := telemetry.InitOtel(ctx, cfg.Otel)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(level, cfg.Otel.Enabled)

	metrics, err := telemetry.NewGameMetrics(otel.GetMeterProvider())
	if err != nil {
		slog.Error("failed to create game metrics", "error", err)
		os.Exit(1)
	}

	// Create hub
	h := hub.NewHub(ctx, session.Options{
		Smart:    cfg.Game.Smart,
		DelayMin: cfg.Game.DelayMin,
		DelayMax: cfg.Game.DelayMax,
		Recorder: metrics,
	})

	if level != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := server.NewServer(h)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		slog.Error("ListenAndServe failed", "error", err)
	}
	stop()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exiting")
}
