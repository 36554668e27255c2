package services

import "errors"

// ErrInvalidInput marks failures caused by the caller's input rather than the
// store. Handlers answer it with a 400; everything else stays a logged,
// generic 500.
var ErrInvalidInput = errors.New("invalid input")
