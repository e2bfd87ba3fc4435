package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/venusmail/clubmatch/internal/domain/model"
	"github.com/venusmail/clubmatch/internal/domain/types"
)

// PreviewDependencies defines the interface for synchronous scoring.
type PreviewDependencies interface {
	Preview(ctx context.Context, answers []model.SurveyAnswer, n int) []types.ScoredClub
}

// PreviewHandler scores answers synchronously without persisting them.
type PreviewHandler struct {
	deps     PreviewDependencies
	maxLimit int
}

// NewPreviewHandler creates a new preview handler.
func NewPreviewHandler(deps PreviewDependencies, maxLimit int) *PreviewHandler {
	return &PreviewHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// previewRequest mirrors the wire schema for POST /matches/preview.
type previewRequest struct {
	Answers map[string]answerValue `json:"answers"`
}

// HandlePreview handles POST /matches/preview?limit=N requests.
func (h *PreviewHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	const op = "api.preview_matches"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing answers")))
		return
	}

	n := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if parsed > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}

	scored := h.deps.Preview(r.Context(), surveyRequest{Answers: req.Answers}.toSubmission().Answers, n)
	writeJSON(w, http.StatusOK, scored)
}
