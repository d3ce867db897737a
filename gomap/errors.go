package gomap

import (
	"errors"
	"fmt"

	"github.com/signadot/troupe/parse"
)

var (
	// ErrMalformedDocument is returned when input is not a parseable document.
	ErrMalformedDocument = parse.ErrMalformedDocument
	// ErrAbstractTypeUnresolved is returned when an interface slot has no
	// discriminator.
	ErrAbstractTypeUnresolved = errors.New("abstract type unresolved")
	// ErrUnknownType is returned when a discriminator names no registered
	// type, or a type not usable in its slot.
	ErrUnknownType = errors.New("unknown type")
	// ErrParse is returned when leaf text does not fit the target type.
	ErrParse = errors.New("parse error")
	// ErrGraphTooDeep is returned when nesting exceeds the maximum depth.
	ErrGraphTooDeep = errors.New("object graph too deep")
	// ErrUnsupportedType is returned for Go kinds with no document form.
	ErrUnsupportedType = errors.New("unsupported type")
)

// MarshalError represents an error during marshaling
type MarshalError struct {
	FieldPath string // Field path (e.g., "items[0].filmography[1].performance")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = joinMsg(msg, e.Err)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("marshal error: %s", msg)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during unmarshaling
type UnmarshalError struct {
	FieldPath string // Document path (e.g., "$.actor[0].birthYear")
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = joinMsg(msg, e.Err)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("unmarshal error: %s", msg)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// SchemaError represents an error describing a Go type
type SchemaError struct {
	TypeName string
	Message  string
	Err      error
}

func (e *SchemaError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = joinMsg(msg, e.Err)
	}
	if e.TypeName != "" {
		return fmt.Sprintf("schema error for %s: %s", e.TypeName, msg)
	}
	return fmt.Sprintf("schema error: %s", msg)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// TypeError represents a type mismatch error
type TypeError struct {
	FieldPath string
	Expected  string
	Actual    string
	Message   string
	Err       error
}

func (e *TypeError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("expected %s, got %s", e.Expected, e.Actual)
	}
	if e.Err != nil {
		msg = joinMsg(msg, e.Err)
	}
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: %s", e.FieldPath, msg)
	}
	return fmt.Sprintf("type error: %s", msg)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

func joinMsg(msg string, err error) string {
	if msg == "" {
		return err.Error()
	}
	return msg + ": " + err.Error()
}
