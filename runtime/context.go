package runtime

import "github.com/kvande/gladewalker/glade"

// Context is the single mutable evaluation container threading the cost
// budget, the variable environment, the enabled hardware set, and the
// live field through both the parser and the interpreter (§2 component 8).
//
// The parser is the exclusive writer of the variable/hardware declarations;
// the interpreter is the exclusive writer of the field and variable
// values. The two never run concurrently (§5), so Context carries no
// synchronization of its own.
type Context struct {
	Ledger    Ledger
	Variables *Variables
	Hardware  *Hardware
	Field     *glade.Field
}

// NewContext wires a fresh ledger and variable/hardware sets around an
// already-loaded field.
func NewContext(field *glade.Field) *Context {
	return &Context{
		Variables: NewVariables(),
		Hardware:  NewHardware(),
		Field:     field,
	}
}

// Charge is a thin convenience so callers don't reach into ctx.Ledger
// directly; it keeps the "charge before the side effect it justifies"
// ordering (§5) visible at every call site.
func (c *Context) Charge(n int) error {
	return c.Ledger.Charge(n)
}
