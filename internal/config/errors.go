package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a loading failure.
type ErrorKind int

const (
	KindSourceNotFound ErrorKind = iota + 1
	KindUnsupportedFormat
	KindDecode
	KindValidation
	KindManualEntry
)

// Sentinels matched by errors.Is against any *Error of the same kind.
var (
	ErrSourceNotFound    = errors.New("source not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode error")
	ErrValidation        = errors.New("validation error")
	ErrManualEntry       = errors.New("manual entry aborted")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindSourceNotFound:
		return ErrSourceNotFound
	case KindUnsupportedFormat:
		return ErrUnsupportedFormat
	case KindDecode:
		return ErrDecode
	case KindValidation:
		return ErrValidation
	case KindManualEntry:
		return ErrManualEntry
	}
	return nil
}

func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return "unknown error"
}

// Error is the single failure type produced by the loading pipeline.
type Error struct {
	Kind   ErrorKind
	Path   string
	Format Format
	Field  string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		fmt.Fprintf(&b, " in %q", e.Path)
	}
	if e.Format != FormatUnknown {
		fmt.Fprintf(&b, " (%s)", e.Format)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " for field %q", e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// NewDecodeError wraps a format-specific syntax failure.
func NewDecodeError(f Format, err error) error {
	return &Error{Kind: KindDecode, Format: f, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
