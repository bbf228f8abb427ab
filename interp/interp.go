// Package interp walks the Statement Tree produced by lang.Parse,
// mutating a runtime.Context (Ledger, variable environment, and Field)
// in the order §4.5/§4.6 specify.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/kvande/gladewalker/lang"
	"github.com/kvande/gladewalker/runtime"
)

// Interpreter is the recursive tree walker of §2 component 7.
type Interpreter struct {
	ctx *runtime.Context
	out io.Writer
}

// New wraps ctx in an Interpreter that writes collision warnings and
// print output to stdout.
func New(ctx *runtime.Context) *Interpreter {
	return &Interpreter{ctx: ctx, out: os.Stdout}
}

// SetOutput redirects collision/print traces; tests use this to capture
// them instead of writing to stdout.
func (i *Interpreter) SetOutput(w io.Writer) { i.out = w }

// Run executes block to one of the three terminal states of §4.7.
func (i *Interpreter) Run(block lang.Block) Result {
	done, err := i.execBlock(block)
	if err != nil {
		return Result{Outcome: Fatal, Err: err}
	}
	cost := i.ctx.Ledger.Remaining()
	if done {
		return Result{Outcome: Success, Cost: cost}
	}
	return Result{Outcome: Failure, Cost: cost}
}

// execBlock runs every statement in source order. done reports that a
// Move caused the field to succeed; execution must unwind immediately
// through every enclosing if/while/block without running anything else.
func (i *Interpreter) execBlock(block lang.Block) (done bool, err error) {
	for _, stmt := range block {
		done, err = i.execStmt(stmt)
		if err != nil || done {
			return done, err
		}
	}
	return false, nil
}

func (i *Interpreter) execStmt(stmt lang.Stmt) (bool, error) {
	switch s := stmt.(type) {
	case *lang.MoveStmt:
		return i.execMove(s)
	case *lang.TurnStmt:
		return false, i.execTurn(s)
	case *lang.AssignStmt:
		return false, i.execAssign(s)
	case *lang.PrintStmt:
		return false, i.execPrint(s)
	case *lang.IfStmt:
		return i.execIf(s)
	case *lang.WhileStmt:
		return i.execWhile(s)
	}
	panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
}

func (i *Interpreter) execMove(s *lang.MoveStmt) (bool, error) {
	var payoff int
	var blocked bool
	var err error
	if s.Forward {
		payoff, blocked, err = i.ctx.Field.Forward()
	} else {
		payoff, blocked, err = i.ctx.Field.Backward()
	}
	if err != nil {
		return false, err
	}
	if blocked {
		fmt.Fprintf(i.out, "WARNING: collided at line %d\n", s.Line)
		if err := i.ctx.Charge(runtime.PushObstacle); err != nil {
			return false, err
		}
		return i.ctx.Field.Succeeded(), nil
	}
	if err := i.ctx.Charge(-payoff); err != nil {
		return false, err
	}
	return i.ctx.Field.Succeeded(), nil
}

func (i *Interpreter) execTurn(s *lang.TurnStmt) error {
	if s.Left {
		if err := i.ctx.Charge(runtime.TurnLeftUsage); err != nil {
			return err
		}
		return i.ctx.Field.TurnLeft(true)
	}
	if err := i.ctx.Charge(runtime.TurnRightUsage); err != nil {
		return err
	}
	return i.ctx.Field.TurnRight(true)
}

func (i *Interpreter) execAssign(s *lang.AssignStmt) error {
	if err := i.ctx.Charge(runtime.AssignmentUsage); err != nil {
		return err
	}
	v, err := i.evalAtom(s.Rhs)
	if err != nil {
		return err
	}
	return i.ctx.Variables.Set(s.Var, v)
}

func (i *Interpreter) execPrint(s *lang.PrintStmt) error {
	v, err := i.evalAtom(s.Value)
	if err != nil {
		return err
	}
	fmt.Fprintf(i.out, "at line %d print: %d\n", s.Line, v)
	return nil
}

func (i *Interpreter) execIf(s *lang.IfStmt) (bool, error) {
	cond, err := i.evalBool(s.Cond)
	if err != nil {
		return false, err
	}
	if cond {
		return i.execBlock(s.Then)
	}
	if s.Else != nil {
		return i.execBlock(s.Else)
	}
	return false, nil
}

func (i *Interpreter) execWhile(s *lang.WhileStmt) (bool, error) {
	for {
		cond, err := i.evalBool(s.Cond)
		if err != nil {
			return false, err
		}
		if !cond {
			return false, nil
		}
		done, err := i.execBlock(s.Body)
		if err != nil || done {
			return done, err
		}
	}
}

// evalAtom is eval_int of §4.5.
func (i *Interpreter) evalAtom(a lang.Atom) (int, error) {
	switch a.Kind {
	case lang.AtomInt:
		return a.IntValue, nil
	case lang.AtomVar:
		return i.ctx.Variables.Get(a.VarName)
	case lang.AtomSensor:
		if err := i.ctx.Charge(runtime.SensorUsageWeight(a.Sensor)); err != nil {
			return 0, err
		}
		return i.evalSensor(a.Sensor)
	case lang.AtomNested:
		return i.evalIntExpr(a.Nested)
	}
	panic("interp: unhandled atom kind")
}

func (i *Interpreter) evalSensor(s runtime.Sensor) (int, error) {
	switch s {
	case runtime.Kompas:
		return i.ctx.Field.Compass(), nil
	case runtime.ZwOog:
		return i.ctx.Field.BWEye(), nil
	case runtime.KleurOog:
		return i.ctx.Field.ColorEye(), nil
	}
	panic("interp: unhandled sensor")
}

func (i *Interpreter) evalIntExpr(e *lang.IntExpr) (int, error) {
	if err := i.ctx.Charge(runtime.OperationUsage); err != nil {
		return 0, err
	}
	left, err := i.evalAtom(e.Left)
	if err != nil {
		return 0, err
	}
	right, err := i.evalAtom(e.Right)
	if err != nil {
		return 0, err
	}
	switch e.Op {
	case lang.OpPlus:
		return left + right, nil
	case lang.OpMinus:
		return left - right, nil
	case lang.OpMul:
		return left * right, nil
	case lang.OpDiv:
		if right == 0 {
			return 0, divByZero(e.Line)
		}
		return left / right, nil
	case lang.OpMod:
		if right == 0 {
			return 0, divByZero(e.Line)
		}
		return left % right, nil
	}
	panic("interp: unhandled operator")
}

// evalBool is eval_bool of §4.5.
func (i *Interpreter) evalBool(b lang.BoolExpr) (bool, error) {
	if err := i.ctx.Charge(runtime.ComparisonUsage); err != nil {
		return false, err
	}
	left, err := i.evalAtom(b.Left)
	if err != nil {
		return false, err
	}
	right, err := i.evalAtom(b.Right)
	if err != nil {
		return false, err
	}
	switch b.Cmp {
	case lang.CmpEq:
		return left == right, nil
	case lang.CmpNeq:
		return left != right, nil
	case lang.CmpGt:
		return left > right, nil
	case lang.CmpLt:
		return left < right, nil
	}
	panic("interp: unhandled comparator")
}

func divByZero(line int) error {
	return runtime.NewVarError(runtime.ErrDivByZero, "line %d: division by zero", line)
}
