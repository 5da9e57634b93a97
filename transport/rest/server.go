package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

func NewRouter(handler PingHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", handler.PingHandler)
	mux.HandleFunc("GET /healthz", handler.HealthHandler)

	return mux
}

// Start - serves the REST endpoints until ctx is done.
func Start(ctx context.Context, logger *slog.Logger, port string, check HealthCheck) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(NewPingHandler(logger, check)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
