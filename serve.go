package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seo-optimizer/aiready/api"
	"github.com/seo-optimizer/aiready/logging"
	"github.com/seo-optimizer/aiready/middleware"
)

const (
	shutdownTimeout = 10 * time.Second
	retainMonths    = 12
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()

	gin.SetMode(a.cfg.Server.GinMode)
	a.storage.Cleanup(retainMonths)

	statistics := logging.NewStatistics(a.cfg.Server.DataDir, a.cfg.Server.DevMode, a.logger)
	defer func() {
		if err := statistics.Save(); err != nil {
			a.logger.Warn("Failed to save statistics", zap.Error(err))
		}
	}()

	store := middleware.NewMemoryStore()
	limiter := middleware.NewRateLimiter(store, a.cfg.RateLimit.Limit, a.cfg.RateLimit.Window)
	go pruneWindows(ctx, store, a.cfg.RateLimit.Window)

	server := &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           api.New(a.analyzer, statistics, limiter, a.logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server starting", zap.String("addr", "http://localhost:"+a.cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// pruneWindows drops expired rate limit windows until ctx is done
func pruneWindows(ctx context.Context, store *middleware.MemoryStore, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			store.Prune()
		case <-ctx.Done():
			return
		}
	}
}
