package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/venusmail/clubmatch/internal/domain/types"
)

// ClubDependencies defines the interface for catalog reads.
type ClubDependencies interface {
	Clubs(ctx context.Context, filter types.ClubFilter) []types.Club
	Club(ctx context.Context, id string) (types.Club, bool)
}

// ClubsHandler handles catalog listing and lookup requests.
type ClubsHandler struct {
	deps ClubDependencies
}

// NewClubsHandler creates a new clubs handler.
func NewClubsHandler(deps ClubDependencies) *ClubsHandler {
	return &ClubsHandler{deps: deps}
}

// HandleListClubs handles GET /clubs?category=C&tag=T&q=Q requests.
func (h *ClubsHandler) HandleListClubs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	filter := types.ClubFilter{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Query:    q.Get("q"),
	}
	writeJSON(w, http.StatusOK, h.deps.Clubs(r.Context(), filter))
}

// HandleGetClub handles GET /clubs/{id} requests.
func (h *ClubsHandler) HandleGetClub(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_club"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/clubs/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	club, ok := h.deps.Club(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	writeJSON(w, http.StatusOK, club)
}
