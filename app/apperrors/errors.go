// Package apperrors holds the error kinds shared by every layer of the board.
// Lower layers wrap one of these sentinels with fmt.Errorf("...: %w", ...) and
// the HTTP controllers translate them into statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrValidation reports missing or malformed required fields.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound reports that a referenced entity is absent.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden reports an authenticated caller acting on a resource it does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized reports a missing, invalid or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict reports a uniqueness violation such as a taken username.
	ErrConflict = errors.New("conflict")
	// ErrBadCredential reports a password that does not match the stored digest.
	ErrBadCredential = errors.New("bad credential")
	// ErrInternal reports a store or hashing failure.
	ErrInternal = errors.New("internal error")
)
