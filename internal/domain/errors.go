package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgPersonNotFound    = "person not found"
	ErrMsgAdventureNotFound = "adventure not found"
	ErrMsgDatasetInvalid    = "invalid dataset"
	ErrMsgInvalidVoteField  = "invalid vote field"
	ErrMsgDatabaseError     = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the
// application. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for
// additional context.
var (
	ErrPersonNotFound    = errors.New(ErrMsgPersonNotFound)
	ErrAdventureNotFound = errors.New(ErrMsgAdventureNotFound)
	ErrDatasetInvalid    = errors.New(ErrMsgDatasetInvalid)
	ErrInvalidVoteField  = errors.New(ErrMsgInvalidVoteField)
)
