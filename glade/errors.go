package glade

import "fmt"

// Kind identifies a class of fatal field error, independent of its message.
type Kind string

const (
	ErrBadCell                Kind = "BadCell"
	ErrDuplicateTargetIdx     Kind = "DuplicateTargetIdx"
	ErrMissingTargetIdx       Kind = "MissingTargetIdx"
	ErrDuplicateMoneyExponent Kind = "DuplicateMoneyExponent"
	ErrMultipleSpawns         Kind = "MultipleSpawns"
	ErrMissingSpawn           Kind = "MissingSpawn"
	ErrBadDirection           Kind = "BadDirection"
	ErrBadDimensions          Kind = "BadDimensions"
	ErrOutOfBounds            Kind = "OutOfBounds"
	ErrDetonation             Kind = "Detonation"
)

// FieldError is a FATAL condition raised by the field model. It always
// carries a Kind so callers can classify it without string matching.
type FieldError struct {
	kind Kind
	msg  string
}

func (e *FieldError) Error() string { return e.msg }

// Kind reports the error's classification.
func (e *FieldError) Kind() string { return string(e.kind) }

func newFieldError(kind Kind, format string, args ...any) *FieldError {
	return &FieldError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
