package runtime

import "fmt"

// Kind identifies a class of fatal runtime error.
type Kind string

const (
	ErrBudgetExceeded Kind = "BudgetExceeded"
	ErrLedgerUnderflow Kind = "LedgerUnderflow"
	ErrUndeclaredVar   Kind = "UndeclaredVar"
	ErrUnassignedVar   Kind = "UnassignedVar"
	ErrSensorNotEnabled Kind = "SensorNotEnabled"
	ErrDivByZero       Kind = "DivByZero"
)

// LedgerError is raised by Ledger.Charge.
type LedgerError struct {
	kind Kind
	msg  string
}

func (e *LedgerError) Error() string { return e.msg }

// Kind reports the error's classification.
func (e *LedgerError) Kind() string { return string(e.kind) }

// VarError is raised by variable environment lookups/assignments.
type VarError struct {
	kind Kind
	msg  string
}

func (e *VarError) Error() string { return e.msg }

// Kind reports the error's classification.
func (e *VarError) Kind() string { return string(e.kind) }

func newVarError(kind Kind, msg string) *VarError {
	return &VarError{kind: kind, msg: msg}
}

// NewVarError lets other packages in this module (the parser, at the
// points where it validates a variable/sensor reference against the
// Context) raise the same typed errors the interpreter raises.
func NewVarError(kind Kind, format string, args ...any) *VarError {
	return &VarError{kind: kind, msg: fmt.Sprintf(format, args...)}
}
