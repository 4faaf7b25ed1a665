package errs

import (
	"errors"
	"fmt"
)

// Kind tags an extraction failure.
type Kind int

const (
	Unknown Kind = iota
	UnsupportedFormat
	InputNotFound
	IOFailure
	ExternalServiceFailure
	MissingOutputTarget
	OutputWriteFailure
)

func (k Kind) String() string {
	switch k {
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case InputNotFound:
		return "InputNotFound"
	case IOFailure:
		return "IOFailure"
	case ExternalServiceFailure:
		return "ExternalServiceFailure"
	case MissingOutputTarget:
		return "MissingOutputTarget"
	case OutputWriteFailure:
		return "OutputWriteFailure"
	default:
		return "Unknown"
	}
}

// Error is a failure tagged with its Kind. Op names the step that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New tags err with kind.
func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf tags a formatted message with kind.
func Newf(kind Kind, op string, format string, args ...interface{}) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
