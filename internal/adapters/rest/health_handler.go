package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/philly/spacetraveling/internal/posts/ports"
)

// Health status values
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusUp        = "up"
	StatusDown      = "down"
)

// HealthStatus is the body of both probes
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// Version is the build version reported by the health endpoints
type Version string

type HealthHandler struct {
	*BaseHandler
	version string
	cms     ports.HealthChecker
}

func NewHealthHandler(base *BaseHandler, version Version, cms ports.HealthChecker) *HealthHandler {
	return &HealthHandler{
		BaseHandler: base,
		version:     string(version),
		cms:         cms,
	}
}

// GetLiveness implements the liveness probe endpoint
// This is a lightweight check with no external dependencies
func (h *HealthHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	h.WriteJSONResponse(w, r, HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Version:   h.version,
	}, http.StatusOK)
}

// GetReadiness implements the readiness probe endpoint
// The site is only useful while the CMS answers
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	status := StatusHealthy
	httpStatus := http.StatusOK
	checks := map[string]string{"cms": StatusUp}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cms.Ping(ctx); err != nil {
		h.logger.Warn(r.Context(), "readiness check failed", "check", "cms", "error", err)
		checks["cms"] = StatusDown
		status = StatusUnhealthy
		httpStatus = http.StatusServiceUnavailable
	}

	h.WriteJSONResponse(w, r, HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Checks:    checks,
	}, httpStatus)
}
