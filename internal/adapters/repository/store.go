// Package repository persists survey submissions and generated match
// records. Two implementations are provided: an in-memory store for
// tests and single-process deployments, and a SQLite store for
// durability across restarts.
package repository

import (
	"context"

	"github.com/venusmail/clubmatch/internal/domain/model"
)

// Store provides read/write access to surveys and match records.
//
// A user may have any number of surveys and match records; Latest*
// methods return the one with the greatest timestamp.
type Store interface {
	// SaveSurvey persists a survey submission.
	SaveSurvey(ctx context.Context, s model.SurveySubmission) error
	// LatestSurvey returns the most recent submission for a user.
	// Returns ErrNoSurvey if the user has never submitted.
	LatestSurvey(ctx context.Context, userID string) (model.SurveySubmission, error)

	// SaveMatch persists a generated match record.
	SaveMatch(ctx context.Context, m model.MatchRecord) error
	// LatestMatch returns the most recent match record for a user.
	// Returns ErrNoMatch if the user has no matches.
	LatestMatch(ctx context.Context, userID string) (model.MatchRecord, error)

	// SurveyCount returns the total number of stored surveys.
	SurveyCount(ctx context.Context) int
	// MatchCount returns the total number of stored match records.
	MatchCount(ctx context.Context) int

	// Close releases any resources held by the store.
	Close() error
}
