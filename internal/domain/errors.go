package domain

import "errors"

// Failure taxonomy shared by the lifecycle manager, chat relay and the HTTP
// layer. Services wrap these with context; handlers match with errors.Is.
var (
	// ErrNotFound means a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthorized means the caller lacks the role or assignment the
	// action requires.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrAlreadyAssigned means the caller lost the approval race: another
	// responder updated the request first.
	ErrAlreadyAssigned = errors.New("request already assigned")

	// ErrInvalidState means the action is not legal from the request's
	// current status.
	ErrInvalidState = errors.New("invalid request state")

	// ErrValidation means the input payload was malformed.
	ErrValidation = errors.New("validation failed")
)
