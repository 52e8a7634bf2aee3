package intake

import "errors"

var (
	// ErrMissingFields: required form field absent. No writes performed.
	ErrMissingFields = errors.New("missing required fields")
	// ErrAccountCreation: identity provisioning failed for a reason other
	// than the address already being registered.
	ErrAccountCreation = errors.New("failed to create account")
	// ErrPersistence: a required borrower/loan write failed.
	ErrPersistence = errors.New("persistence failed")
)
