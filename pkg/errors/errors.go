// Package errors provides structured error handling for the speeddial library.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid configuration value, reported at
	// construction time.
	KindConfig
	// KindMisuse indicates an API contract violation that can only be a
	// caller bug. Misuse errors are raised as panics.
	KindMisuse
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindMisuse:
		return "misuse"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the speeddial library.
type Error struct {
	// Op is the operation that failed (e.g. "speeddial.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Config returns a configuration error for the given operation.
func Config(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindConfig, Err: fmt.Errorf(format, args...)}
}

// Misuse returns a misuse error for the given operation. Callers are
// expected to panic with the result.
func Misuse(op, format string, args ...any) *Error {
	return &Error{Op: op, Kind: KindMisuse, Err: fmt.Errorf(format, args...)}
}
