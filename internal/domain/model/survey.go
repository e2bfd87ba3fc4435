// Package model contains domain models passed between layers.
package model

import "time"

// SurveyAnswer is one response to a questionnaire item. Single-choice
// questions populate Value; multiple-choice questions populate Values.
// Exactly one of the two is expected to be set.
type SurveyAnswer struct {
	QuestionID string   // question identifier, e.g. "major", "interests"
	Value      string   // single-choice selection
	Values     []string // multiple-choice selections
}

// SurveySubmission represents one completed preference survey for a user.
// Fields mirror the document shape stored in the surveys collection.
type SurveySubmission struct {
	SubmissionID string         // unique id for idempotency
	UserID       string         // subject/user identifier
	Answers      []SurveyAnswer // one entry per answered question
	TS           time.Time      // submission timestamp
}

// MatchRecord captures the outcome of one scoring run: the top clubs for
// a user, score-descending. Records are append-only; a later submission
// supersedes an earlier one at read time by timestamp.
type MatchRecord struct {
	ID        string    // record id
	UserID    string    // subject/user identifier
	Clubs     []string  // club ids, highest score first
	Timestamp time.Time // when the matches were generated
}
