// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/venusmail/clubmatch/internal/domain/model"
	"github.com/venusmail/clubmatch/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Idempotency tracking for survey submissions.
	SeenAndRecord(ctx context.Context, id string) bool
	Unrecord(ctx context.Context, id string)

	// Enqueue pushes a submission for async scoring. Returns false on
	// backpressure.
	Enqueue(ctx context.Context, s model.SurveySubmission) bool

	// Read operations.
	LatestMatch(ctx context.Context, userID string) (types.Match, error)
	Preview(ctx context.Context, answers []model.SurveyAnswer, n int) []types.ScoredClub
	Clubs(ctx context.Context, filter types.ClubFilter) []types.Club
	Club(ctx context.Context, id string) (types.Club, bool)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	surveysHandler *SurveysHandler
	matchesHandler *MatchesHandler
	previewHandler *PreviewHandler
	clubsHandler   *ClubsHandler
}

// NewServer creates a new API server with all handlers. maxPreviewLimit
// caps the limit parameter accepted by the preview endpoint.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxPreviewLimit int) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		surveysHandler: NewSurveysHandler(deps),
		matchesHandler: NewMatchesHandler(deps),
		previewHandler: NewPreviewHandler(deps, maxPreviewLimit),
		clubsHandler:   NewClubsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/surveys", MetricsMiddleware(s.surveysHandler.HandlePostSurvey, "surveys"))
	mux.HandleFunc("/matches/preview", MetricsMiddleware(s.previewHandler.HandlePreview, "preview"))
	mux.HandleFunc("/matches/", MetricsMiddleware(s.matchesHandler.HandleGetMatches, "matches"))
	mux.HandleFunc("/clubs", MetricsMiddleware(s.clubsHandler.HandleListClubs, "clubs"))
	mux.HandleFunc("/clubs/", MetricsMiddleware(s.clubsHandler.HandleGetClub, "club"))
}

// answerValue accepts either a JSON string or an array of strings, the
// two shapes a questionnaire answer can take.
type answerValue struct {
	value  string
	values []string
}

func (a *answerValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		a.value = s
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		a.values = list
		return nil
	}
	return errors.New("answer must be a string or an array of strings")
}

// surveyRequest mirrors the wire schema for POST /surveys.
type surveyRequest struct {
	SubmissionID string                 `json:"submission_id"`
	UserID       string                 `json:"user_id"`
	Answers      map[string]answerValue `json:"answers"`
	TS           string                 `json:"ts"`
}

func (s surveyRequest) validate() error {
	switch {
	case strings.TrimSpace(s.SubmissionID) == "":
		return errors.New("missing submission_id")
	case strings.TrimSpace(s.UserID) == "":
		return errors.New("missing user_id")
	case len(s.Answers) == 0:
		return errors.New("missing answers")
	}
	if s.TS != "" {
		if _, err := time.Parse(time.RFC3339, s.TS); err != nil {
			return errors.New("invalid ts; must be RFC3339")
		}
	}
	return nil
}

// toSubmission converts the wire request into the domain submission.
// Answers are ordered by question id so the stored form is stable.
func (s surveyRequest) toSubmission() model.SurveySubmission {
	keys := make([]string, 0, len(s.Answers))
	for k := range s.Answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	answers := make([]model.SurveyAnswer, 0, len(keys))
	for _, k := range keys {
		v := s.Answers[k]
		answers = append(answers, model.SurveyAnswer{
			QuestionID: k,
			Value:      v.value,
			Values:     v.values,
		})
	}

	ts := time.Now().UTC()
	if s.TS != "" {
		if parsed, err := time.Parse(time.RFC3339, s.TS); err == nil {
			ts = parsed
		}
	}

	return model.SurveySubmission{
		SubmissionID: s.SubmissionID,
		UserID:       s.UserID,
		Answers:      answers,
		TS:           ts,
	}
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
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

// NewKind tags a sentinel error with the operation that raised it.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags a sentinel error with the operation and underlying cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
