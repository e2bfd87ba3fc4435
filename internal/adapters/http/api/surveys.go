package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/venusmail/clubmatch/internal/domain/model"
)

// SurveyDependencies defines the interface for survey intake.
type SurveyDependencies interface {
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)
	Enqueue(ctx context.Context, s model.SurveySubmission) bool
}

// SurveysHandler handles survey submission requests.
type SurveysHandler struct {
	deps SurveyDependencies
}

// NewSurveysHandler creates a new surveys handler.
func NewSurveysHandler(deps SurveyDependencies) *SurveysHandler {
	return &SurveysHandler{deps: deps}
}

// HandlePostSurvey handles POST /surveys requests.
func (h *SurveysHandler) HandlePostSurvey(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_survey"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req surveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), req.SubmissionID) {
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true})
		return
	}

	if ok := h.deps.Enqueue(r.Context(), req.toSubmission()); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), req.SubmissionID)
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false})
}
