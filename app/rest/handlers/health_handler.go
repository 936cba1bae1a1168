package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger is the slice of the database driver health checks need
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db     Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Uptime    string                  `json:"uptime"`
	Checks    map[string]HealthStatus `json:"checks"`
}

// HealthStatus is one dependency's state within a health response
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// HealthCheck reports service liveness and database connectivity
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	checks := make(map[string]HealthStatus)
	healthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.db.HealthCheck(ctx); err != nil {
		h.logger.Error("database health check failed", "error", err)
		checks["database"] = HealthStatus{Status: "unhealthy", Message: "ping failed"}
		healthy = false
	} else {
		checks["database"] = HealthStatus{
			Status:  "healthy",
			Message: "connected",
			Latency: time.Since(start).String(),
		}
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "chronicle-service",
		Uptime:    time.Since(startTime).String(),
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// startTime is set when the service starts
var startTime = time.Now()
