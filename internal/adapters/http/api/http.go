// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/okian/giftmatch/internal/adapters/repository"
	service "github.com/okian/giftmatch/internal/app"
	"github.com/okian/giftmatch/internal/domain/catalog"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/pkg/logger"
)

// maxBodyBytes bounds a submission body.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Submit(ctx context.Context, sub model.Submission) (model.Assessment, error)
	Result(ctx context.Context, id string) (model.Summary, error)
	Detail(ctx context.Context, id string) (model.Assessment, error)
	List(ctx context.Context, f model.ListFilter) ([]model.Assessment, error)
	Export(ctx context.Context, w io.Writer) error
	Count(ctx context.Context) (int, error)
	Catalog() *catalog.Catalog
}

// Server wires HTTP routes for the business API.
type Server struct {
	health      *HealthHandler
	assessments *AssessmentsHandler
	admin       *AdminHandler
	catalog     *CatalogHandler
}

// Option applies a configuration option to the Server.
type Option func(*serverSettings)

type serverSettings struct {
	logger logger.Logger
	now    func() time.Time
}

// WithLogger sets the logger used for server side failures.
func WithLogger(l logger.Logger) Option {
	return func(s *serverSettings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock replaces the time source used for export filenames.
func WithClock(now func() time.Time) Option {
	return func(s *serverSettings) {
		if now != nil {
			s.now = now
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...Option) *Server {
	cfg := serverSettings{logger: logger.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Server{
		health:      NewHealthHandler(deps),
		assessments: NewAssessmentsHandler(deps, cfg.logger),
		admin:       NewAdminHandler(deps, cfg.logger, cfg.now),
		catalog:     NewCatalogHandler(deps.Catalog()),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.health.HandleHealth, "healthz"))
	mux.HandleFunc("GET /metrics", s.health.HandleMetrics)
	mux.HandleFunc("GET /catalog", MetricsMiddleware(s.catalog.HandleCatalog, "catalog"))
	mux.HandleFunc("POST /assessments", MetricsMiddleware(s.assessments.HandleSubmit, "assessments"))
	mux.HandleFunc("GET /results/{id}", MetricsMiddleware(s.assessments.HandleResult, "results"))
	mux.HandleFunc("GET /admin/assessments", MetricsMiddleware(s.admin.HandleList, "admin_list"))
	mux.HandleFunc("GET /admin/assessments/{id}", MetricsMiddleware(s.admin.HandleDetail, "admin_detail"))
	mux.HandleFunc("GET /admin/export", MetricsMiddleware(s.admin.HandleExport, "admin_export"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service error kinds to status codes. Internal
// failures are logged and reported without detail.
func writeServiceError(ctx context.Context, w http.ResponseWriter, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidSubmission), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", errors.New("assessment not found"))
	case errors.Is(err, service.ErrInProgress):
		writeError(w, http.StatusConflict, "in_progress", err)
	default:
		log.Error(ctx, "request failed", logger.String("op", op), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
