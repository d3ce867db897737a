package ir

import "errors"

var (
	ErrDuplicateField = errors.New("duplicate field")
	ErrEmptyName      = errors.New("empty element name")
)

var ErrBadPath = errors.New("bad path")
