package anim

import "errors"

var (
	// ErrOutput wraps any failure writing or flushing the terminal.
	ErrOutput = errors.New("anim: terminal output failed")

	// ErrNotInitialized is returned by Tick and Step before Init.
	ErrNotInitialized = errors.New("anim: loop not initialized")
)
