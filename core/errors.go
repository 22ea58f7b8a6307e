package core

import (
	"errors"
)

var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnknownDepthRange = errors.New("unknown depth range")
	ErrInvalidTolerance  = errors.New("normalize tolerance must not be negative")
	ErrUnknownLogLevel   = errors.New("unknown log level")
)
