package region

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a region error
type ErrorKind int

const (
	// KindInvalidSize: a requested capacity is outside [0, max length]
	KindInvalidSize ErrorKind = iota + 1
	// KindOverflow: growth would pass the max length
	KindOverflow
	// KindInvalidConfig: a construction option is unusable
	KindInvalidConfig
	// KindType: input of the wrong kind, or an unknown charset
	KindType
	// KindRange: an offset or explicit range is out of bounds
	KindRange
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidSize:
		return "invalid size"
	case KindOverflow:
		return "overflow"
	case KindInvalidConfig:
		return "invalid config"
	case KindType:
		return "type error"
	case KindRange:
		return "range error"
	default:
		return "unknown"
	}
}

// Error is returned by every failing region operation.
// The region is left exactly as it was before the call.
type Error struct {
	Kind    ErrorKind
	Op      string // operation that failed
	Message string
	Cause   error // optional
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("region: %s: %s: %s", e.Op, e.Kind, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the cause to errors.Is / errors.As
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind ErrorKind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, op string, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func isKind(err error, kind ErrorKind) bool {
	var regionErr *Error
	return errors.As(err, &regionErr) && regionErr.Kind == kind
}

// IsInvalidSizeError reports whether err is a capacity outside [0, max length]
func IsInvalidSizeError(err error) bool { return isKind(err, KindInvalidSize) }

// IsOverflowError reports whether err is a growth past the max length
func IsOverflowError(err error) bool { return isKind(err, KindOverflow) }

// IsInvalidConfigError reports whether err is an unusable construction option
func IsInvalidConfigError(err error) bool { return isKind(err, KindInvalidConfig) }

// IsTypeError reports whether err is a wrong-kind input or unknown charset
func IsTypeError(err error) bool { return isKind(err, KindType) }

// IsRangeError reports whether err is an out-of-bounds offset or range
func IsRangeError(err error) bool { return isKind(err, KindRange) }
