package repository

import "errors"

// Sentinel kinds for store lookups.
var (
	ErrNoSurvey = errors.New("no survey for user")
	ErrNoMatch  = errors.New("no match record for user")
)
