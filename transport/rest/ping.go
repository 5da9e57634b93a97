package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck - reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type PingHandler interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	HealthHandler(w http.ResponseWriter, r *http.Request)
}

type pingHandler struct {
	logger *slog.Logger
	check  HealthCheck
}

func NewPingHandler(logger *slog.Logger, check HealthCheck) PingHandler {
	return &pingHandler{
		logger: logger,
		check:  check,
	}
}

func (that *pingHandler) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *pingHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := that.check(ctx); err != nil {
		that.logger.Warn("health check failed", "error", err)
		http.Error(w, "storage unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
