package icd

import "errors"

// Common errors for the service layer.
var (
	// ErrInputIsDirectory indicates that an input path points to a directory.
	ErrInputIsDirectory = errors.New("input path is a directory")
	// ErrInputTooLarge indicates that an input file exceeds the configured size limit.
	ErrInputTooLarge = errors.New("input file is too large")
)
