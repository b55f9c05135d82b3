package core

import (
	"errors"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNotInitialized  = errors.New("engine not initialized")
	ErrAlreadyRunning  = errors.New("engine already running")
	ErrUnknown         = errors.New("unknown")
)
