package uuidv1

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates that the UUID string format is invalid
	ErrParse = errors.New("uuidv1: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidv1: invalid UUID length (expected 16 bytes)")

	// ErrVersionMismatch indicates that the UUID is not a version 1 UUID
	ErrVersionMismatch = errors.New("uuidv1: not a version 1 UUID")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("uuidv1: invalid UUID variant (expected RFC 4122)")

	// ErrFormat indicates that a timestamp string does not match the accepted layout
	ErrFormat = errors.New("uuidv1: invalid timestamp format")

	// ErrRange indicates that a timestamp cannot be represented in 60 bits of 100ns ticks
	ErrRange = errors.New("uuidv1: timestamp outside the UUIDv1 range")
)

// Kind discriminates the failures returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindVersionMismatch
	KindFormat
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindVersionMismatch:
		return "version mismatch"
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindParse:
		return ErrParse
	case KindVersionMismatch:
		return ErrVersionMismatch
	case KindFormat:
		return ErrFormat
	case KindRange:
		return ErrRange
	default:
		return nil
	}
}

// Error is the failure type of every codec operation. It matches the
// package sentinel of its Kind under errors.Is.
type Error struct {
	Kind   Kind
	Input  string // offending input as text, may be empty
	Detail string
	Err    error // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := "uuidv1: error"
	if s := e.Kind.sentinel(); s != nil {
		msg = s.Error()
	}
	if e.Input != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Input)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or KindUnknown if err was not
// produced by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, input, detail string) *Error {
	return &Error{Kind: kind, Input: input, Detail: detail}
}
