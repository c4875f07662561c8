package service

import "errors"

var (
	// ErrValidation rejects a payload before anything reaches storage.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound covers both a missing row and a path/body id mismatch on
	// update, which the API reports the same way.
	ErrNotFound = errors.New("not found")
	// ErrStaleWrite reports that the row changed between the caller's read and
	// this write. The caller must re-fetch and retry, nothing is merged.
	ErrStaleWrite = errors.New("row was already updated")
	// ErrInvalidCredentials never distinguishes a bad username from a bad
	// password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
