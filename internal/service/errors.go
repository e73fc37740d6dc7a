package service

import "github.com/rotisserie/eris"

var (
	// ErrInvalidInput marks requests the caller must fix.
	ErrInvalidInput = eris.New("invalid input")
	// ErrNotFound marks lookups with no result.
	ErrNotFound = eris.New("not found")
)
