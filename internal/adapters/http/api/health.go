package api

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/giftmatch/pkg/metrics"
)

// HealthDependencies reports store liveness.
type HealthDependencies interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	deps    HealthDependencies
	metrics http.Handler
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{
		deps:    deps,
		metrics: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	Assessments int    `json:"assessments"`
}

// HandleHealth handles GET /healthz requests. It answers 503 when the store
// cannot be read.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	n, err := h.deps.Count(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Assessments: n})
}

// HandleMetrics serves the custom Prometheus registry.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.metrics.ServeHTTP(w, r)
}
