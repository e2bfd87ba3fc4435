package catalog

import "errors"

// Sentinel kinds for catalog validation errors.
var (
	ErrMissingID       = errors.New("club entry missing id")
	ErrMissingCategory = errors.New("club entry missing category")
	ErrDuplicateID     = errors.New("duplicate club id")
)
