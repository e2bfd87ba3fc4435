package repository

import (
	"context"
	"sync"

	"github.com/venusmail/clubmatch/internal/domain/model"
)

// MemoryStore keeps surveys and match records in process memory. It is
// safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	surveys map[string][]model.SurveySubmission
	matches map[string][]model.MatchRecord
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		surveys: make(map[string][]model.SurveySubmission),
		matches: make(map[string][]model.MatchRecord),
	}
}

// SaveSurvey appends a submission to the user's history.
func (m *MemoryStore) SaveSurvey(_ context.Context, s model.SurveySubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.surveys[s.UserID] = append(m.surveys[s.UserID], s)
	return nil
}

// LatestSurvey returns the user's submission with the greatest
// timestamp, or ErrNoSurvey.
func (m *MemoryStore) LatestSurvey(_ context.Context, userID string) (model.SurveySubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.surveys[userID]
	if len(history) == 0 {
		return model.SurveySubmission{}, ErrNoSurvey
	}
	latest := history[0]
	for _, s := range history[1:] {
		if !s.TS.Before(latest.TS) {
			latest = s
		}
	}
	return latest, nil
}

// SaveMatch appends a match record to the user's history.
func (m *MemoryStore) SaveMatch(_ context.Context, rec model.MatchRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[rec.UserID] = append(m.matches[rec.UserID], rec)
	return nil
}

// LatestMatch returns the user's match record with the greatest
// timestamp, or ErrNoMatch.
func (m *MemoryStore) LatestMatch(_ context.Context, userID string) (model.MatchRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.matches[userID]
	if len(history) == 0 {
		return model.MatchRecord{}, ErrNoMatch
	}
	latest := history[0]
	for _, rec := range history[1:] {
		if !rec.Timestamp.Before(latest.Timestamp) {
			latest = rec
		}
	}
	return latest, nil
}

// SurveyCount returns the total number of stored surveys.
func (m *MemoryStore) SurveyCount(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, history := range m.surveys {
		total += len(history)
	}
	return total
}

// MatchCount returns the total number of stored match records.
func (m *MemoryStore) MatchCount(_ context.Context) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, history := range m.matches {
		total += len(history)
	}
	return total
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error { return nil }
