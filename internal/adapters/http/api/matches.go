package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/venusmail/clubmatch/internal/adapters/repository"
	"github.com/venusmail/clubmatch/internal/domain/types"
)

// MatchDependencies defines the interface for match lookups.
type MatchDependencies interface {
	LatestMatch(ctx context.Context, userID string) (types.Match, error)
}

// MatchesHandler handles match lookup requests.
type MatchesHandler struct {
	deps MatchDependencies
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchDependencies) *MatchesHandler {
	return &MatchesHandler{deps: deps}
}

// HandleGetMatches handles GET /matches/{user_id} requests.
func (h *MatchesHandler) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_matches"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	userID := strings.TrimPrefix(r.URL.Path, "/matches/")
	if userID == "" || strings.Contains(userID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	match, err := h.deps.LatestMatch(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoMatch) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}
