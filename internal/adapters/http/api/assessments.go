package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/pkg/logger"
)

// AssessmentDependencies defines the operations behind the public routes.
type AssessmentDependencies interface {
	Submit(ctx context.Context, sub model.Submission) (model.Assessment, error)
	Result(ctx context.Context, id string) (model.Summary, error)
}

// AssessmentsHandler handles submissions and result lookups.
type AssessmentsHandler struct {
	deps   AssessmentDependencies
	logger logger.Logger
}

// NewAssessmentsHandler creates a new assessments handler.
func NewAssessmentsHandler(deps AssessmentDependencies, log logger.Logger) *AssessmentsHandler {
	return &AssessmentsHandler{deps: deps, logger: log}
}

// HandleSubmit handles POST /assessments requests.
func (h *AssessmentsHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.submit_assessment"
	var sub model.Submission
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, err))
		return
	}

	a, err := h.deps.Submit(r.Context(), sub)
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, a.Summary())
}

// HandleResult handles GET /results/{id} requests.
func (h *AssessmentsHandler) HandleResult(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_result"
	sum, err := h.deps.Result(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), w, h.logger, op, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}
