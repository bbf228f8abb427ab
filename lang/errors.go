package lang

import "fmt"

// Kind identifies a class of fatal parse error that is purely syntactic
// (i.e. not already owned by runtime.Kind, which covers the errors the
// parser raises by way of the shared Context: UndeclaredVar,
// SensorNotEnabled).
type Kind string

const (
	ErrSyntaxError Kind = "SyntaxError"
	ErrStrayBrace  Kind = "StrayBrace"
	ErrHangingOp   Kind = "HangingOp"
)

// ParseError is raised by every purely syntactic failure of the parser.
type ParseError struct {
	kind Kind
	line int
	msg  string
}

func (e *ParseError) Error() string { return e.msg }

// Kind reports the error's classification.
func (e *ParseError) Kind() string { return string(e.kind) }

// Line reports the offending source line, 1-indexed.
func (e *ParseError) Line() int { return e.line }

func newParseError(kind Kind, line int, format string, args ...any) *ParseError {
	return &ParseError{kind: kind, line: line, msg: fmt.Sprintf("line %d: %s", line, fmt.Sprintf(format, args...))}
}
