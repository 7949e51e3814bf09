package models

import "errors"

// ErrOutOfRange indicates an index, row or column outside valid bounds.
var ErrOutOfRange = errors.New("out of range")

// ErrIllegalState indicates an operation that is meaningless for the current structure.
var ErrIllegalState = errors.New("illegal state")

// ErrUnknownMargin indicates an unrecognized margin kind.
var ErrUnknownMargin = errors.New("unknown margin")
