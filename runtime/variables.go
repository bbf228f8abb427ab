package runtime

import "fmt"

// Variables is the environment of single-letter scalar variables. A
// declared-but-unassigned variable maps to a nil pointer; reading one is
// FATAL, matching §3's Option<i32> semantics.
type Variables struct {
	slots map[byte]*int
}

// NewVariables returns an empty variable environment.
func NewVariables() *Variables {
	return &Variables{slots: make(map[byte]*int)}
}

// Declare inserts name as unassigned. Re-declaring an existing name is a
// no-op that preserves whatever value it already holds (§4.4: "duplicate
// declarations are silently merged").
func (v *Variables) Declare(name byte) {
	if _, ok := v.slots[name]; ok {
		return
	}
	v.slots[name] = nil
}

// Declared reports whether name has been declared (assigned or not).
func (v *Variables) Declared(name byte) bool {
	_, ok := v.slots[name]
	return ok
}

// Get returns the value stored for name. FATAL if name was never declared
// or was declared but never assigned.
func (v *Variables) Get(name byte) (int, error) {
	p, ok := v.slots[name]
	if !ok {
		return 0, newVarError(ErrUndeclaredVar, fmt.Sprintf("variable %q is not declared", string(name)))
	}
	if p == nil {
		return 0, newVarError(ErrUnassignedVar, fmt.Sprintf("variable %q has no value yet", string(name)))
	}
	return *p, nil
}

// Set stores value for name. FATAL if name was never declared.
func (v *Variables) Set(name byte, value int) error {
	if _, ok := v.slots[name]; !ok {
		return newVarError(ErrUndeclaredVar, fmt.Sprintf("cannot assign to undeclared variable %q", string(name)))
	}
	v.slots[name] = &value
	return nil
}
