package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/giftmatch/internal/adapters/export"
	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/types"
	"github.com/okian/giftmatch/pkg/logger"
)

// AdminDependencies defines the operations behind the admin routes.
type AdminDependencies interface {
	Detail(ctx context.Context, id string) (model.Assessment, error)
	List(ctx context.Context, f model.ListFilter) ([]model.Assessment, error)
	Export(ctx context.Context, w io.Writer) error
}

// AdminHandler handles the staff-facing listing, detail and export routes.
type AdminHandler struct {
	deps   AdminDependencies
	logger logger.Logger
	now    func() time.Time
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(deps AdminDependencies, log logger.Logger, now func() time.Time) *AdminHandler {
	return &AdminHandler{deps: deps, logger: log, now: now}
}

// HandleList handles GET /admin/assessments with the optional search,
// topGift, startDate, endDate and limit query parameters.
func (h *AdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_assessments"
	f, err := parseListFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, err))
		return
	}
	as, err := h.deps.List(r.Context(), f)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	if as == nil {
		as = []model.Assessment{}
	}
	writeJSON(w, http.StatusOK, as)
}

func parseListFilter(q url.Values) (model.ListFilter, error) {
	f := model.ListFilter{Search: q.Get("search")}
	if v := q.Get("topGift"); v != "" {
		g, err := types.ParseGift(v)
		if err != nil {
			return f, err
		}
		f.TopGift = g
	}
	if v := q.Get("startDate"); v != "" {
		d, err := model.StartOfDay(v)
		if err != nil {
			return f, errors.New("startDate must be YYYY-MM-DD")
		}
		f.Start = d
	}
	if v := q.Get("endDate"); v != "" {
		d, err := model.EndOfDay(v)
		if err != nil {
			return f, errors.New("endDate must be YYYY-MM-DD")
		}
		f.End = d
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return f, errors.New("limit must be a positive integer")
		}
		f.Limit = n
	}
	return f, nil
}

// HandleDetail handles GET /admin/assessments/{id} requests.
func (h *AdminHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_assessment"
	a, err := h.deps.Detail(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// HandleExport handles GET /admin/export. The body is rendered in full
// before the first byte is sent so that a failed export is still a 500.
func (h *AdminHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_assessments"
	var buf bytes.Buffer
	if err := h.deps.Export(r.Context(), &buf); err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(h.now())))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
