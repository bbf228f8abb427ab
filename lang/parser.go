// Package lang implements the Lexical Patterns, the Expression Tree, the
// Statement Tree, and the two-pass Parser over the script's line-oriented
// source text.
package lang

import (
	"strconv"
	"strings"

	"github.com/kvande/gladewalker/runtime"
)

// Parse runs both passes of §4.4 over source: a declaration pass that
// populates ctx's variable/hardware sets and charges the Ledger for every
// gebruik line, followed by a body pass that produces the top-level Block.
func Parse(source string, ctx *runtime.Context) (Block, error) {
	lines := splitLines(source)

	if err := declarePass(lines, ctx); err != nil {
		return nil, err
	}
	return parseBlock(lines, 1, ctx)
}

func splitLines(source string) []string {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}

func declarePass(lines []string, ctx *runtime.Context) error {
	for _, line := range lines {
		m := reInstantiator.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		if runtime.IsSensorName(name) {
			s := runtime.Sensor(name)
			ctx.Hardware.Enable(s)
			if err := ctx.Charge(runtime.HardwareWeight(s)); err != nil {
				return err
			}
			continue
		}
		ctx.Variables.Declare(name[0])
		if err := ctx.Charge(runtime.VarHardware); err != nil {
			return err
		}
	}
	return nil
}

// parseBlock runs the body pass over lines, where lines[0] is source line
// lineNo0. It recurses into itself for every nested zolang/als body.
func parseBlock(lines []string, lineNo0 int, ctx *runtime.Context) (Block, error) {
	var block Block

	i := 0
	for i < len(lines) {
		line := lines[i]
		lineNum := lineNo0 + i
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			i++
			continue
		}
		if reInstantiator.MatchString(line) {
			i++
			continue
		}

		if err := checkLineShape(trimmed, lineNum); err != nil {
			return nil, err
		}

		switch {
		case reActionLine.MatchString(trimmed):
			block = append(block, parseAction(trimmed, lineNum))
			if err := ctx.Charge(runtime.ActionSoftware); err != nil {
				return nil, err
			}
			i++

		case reAssignment.MatchString(trimmed):
			m := reAssignment.FindStringSubmatch(trimmed)
			rhs, err := parseExpr(m[2], lineNum, ctx)
			if err != nil {
				return nil, err
			}
			if err := ctx.Charge(runtime.AssignmentSoftware); err != nil {
				return nil, err
			}
			block = append(block, &AssignStmt{Var: m[1][0], Rhs: rhs, Line: lineNum})
			i++

		case rePrint.MatchString(trimmed):
			m := rePrint.FindStringSubmatch(trimmed)
			value, err := parseExpr(m[1], lineNum, ctx)
			if err != nil {
				return nil, err
			}
			block = append(block, &PrintStmt{Value: value, Line: lineNum})
			i++

		case reZolangHeader.MatchString(trimmed):
			if err := ctx.Charge(runtime.ZolangSoftware); err != nil {
				return nil, err
			}
			m := reZolangHeader.FindStringSubmatch(trimmed)
			cond, err := parseBExpr(m[1], lineNum, ctx)
			if err != nil {
				return nil, err
			}
			body, _, _, consumed, err := extractBracedBlocks(lines, lineNo0, i, false, ctx)
			if err != nil {
				return nil, err
			}
			block = append(block, &WhileStmt{Cond: cond, Body: body, Line: lineNum})
			i += consumed

		case reAlsHeader.MatchString(trimmed):
			if err := ctx.Charge(runtime.AlsSoftware); err != nil {
				return nil, err
			}
			m := reAlsHeader.FindStringSubmatch(trimmed)
			cond, err := parseBExpr(m[1], lineNum, ctx)
			if err != nil {
				return nil, err
			}
			thenBlock, elseBlock, hasElse, consumed, err := extractBracedBlocks(lines, lineNo0, i, true, ctx)
			if err != nil {
				return nil, err
			}
			stmt := &IfStmt{Cond: cond, Then: thenBlock, Line: lineNum}
			if hasElse {
				stmt.Else = elseBlock
			}
			block = append(block, stmt)
			i += consumed

		default:
			return nil, newParseError(ErrSyntaxError, lineNum, "cannot parse line: %q", trimmed)
		}
	}

	return block, nil
}

// checkLineShape applies the two line-level syntax rules of §4.3 that
// apply regardless of which statement a line turns out to be.
func checkLineShape(trimmed string, lineNum int) error {
	if trimmed != "}" && strings.Contains(trimmed, "}") && !strings.HasSuffix(trimmed, "{") {
		return newParseError(ErrStrayBrace, lineNum, "closing brace must occupy its own line: %q", trimmed)
	}
	if reHangingOp.MatchString(trimmed) {
		return newParseError(ErrHangingOp, lineNum, "line ends with an operator and no operand: %q", trimmed)
	}
	return nil
}

func parseAction(trimmed string, lineNum int) Stmt {
	switch trimmed {
	case "draaiLinks":
		return &TurnStmt{Left: true, Line: lineNum}
	case "draaiRechts":
		return &TurnStmt{Left: false, Line: lineNum}
	case "stapVooruit":
		return &MoveStmt{Forward: true, Line: lineNum}
	case "stapAchteruit":
		return &MoveStmt{Forward: false, Line: lineNum}
	}
	panic("lang: parseAction called on a non-action line")
}

// extractBracedBlocks scans forward from lines[headerIdx] (the zolang/als
// header) tracking brace depth starting at 1, exactly as §4.4 describes:
// a line containing '}' decrements depth first, then a line containing
// '{' increments it; the block ends the instant depth returns to 0. When
// allowElse is set, a line whose trim is exactly "} anders {" at depth 1
// toggles collection to the else branch without touching depth.
//
// consumed is the number of lines spanned by the header through the
// final closing brace, inclusive; the caller advances its own index by it.
func extractBracedBlocks(lines []string, lineNo0, headerIdx int, allowElse bool, ctx *runtime.Context) (thenBlock, elseBlock Block, hasElse bool, consumed int, err error) {
	depth := 1
	inElse := false
	var thenLines, elseLines []string
	thenStart := headerIdx + 1
	elseStart := -1

	i := headerIdx + 1
	for ; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if allowElse && depth == 1 && !inElse && reElseToggle.MatchString(trimmed) {
			inElse = true
			hasElse = true
			elseStart = i + 1
			continue
		}

		if strings.Contains(line, "}") {
			depth--
			if depth == 0 {
				i++
				break
			}
		}
		if strings.Contains(line, "{") {
			depth++
		}

		if inElse {
			elseLines = append(elseLines, line)
		} else {
			thenLines = append(thenLines, line)
		}
	}
	if depth != 0 {
		return nil, nil, false, 0, newParseError(ErrSyntaxError, lineNo0+headerIdx, "unterminated block")
	}
	consumed = i - headerIdx

	thenBlock, err = parseBlock(thenLines, lineNo0+thenStart, ctx)
	if err != nil {
		return nil, nil, false, 0, err
	}
	if hasElse {
		elseBlock, err = parseBlock(elseLines, lineNo0+elseStart, ctx)
		if err != nil {
			return nil, nil, false, 0, err
		}
	}
	return thenBlock, elseBlock, hasElse, consumed, nil
}

// parseBExpr parses a bexpr: a bare atom, a comparator, and a full rhs
// (which may itself be an iexpr).
func parseBExpr(text string, lineNum int, ctx *runtime.Context) (BoolExpr, error) {
	text = strings.TrimSpace(text)
	m := reBoolExpr.FindStringSubmatch(text)
	if m == nil {
		return BoolExpr{}, newParseError(ErrSyntaxError, lineNum, "cannot parse condition: %q", text)
	}
	left, err := parseExpr(m[1], lineNum, ctx)
	if err != nil {
		return BoolExpr{}, err
	}
	right, err := parseExpr(m[3], lineNum, ctx)
	if err != nil {
		return BoolExpr{}, err
	}
	cmp, err := parseComparator(m[2], lineNum)
	if err != nil {
		return BoolExpr{}, err
	}
	return BoolExpr{Left: left, Cmp: cmp, Right: right, Line: lineNum}, nil
}

// parseExpr parses an rhs/atom slot: it tries the three terminal shapes
// (integer literal, variable, sensor) and, failing those, falls through
// to iexpr (§4.4). This single function implements both "atom" and "rhs"
// from the grammar, since an atom that fails every terminal form is by
// construction an iexpr.
func parseExpr(text string, lineNum int, ctx *runtime.Context) (Atom, error) {
	text = strings.TrimSpace(text)

	if reIntLiteral.MatchString(text) {
		n, err := strconv.Atoi(text)
		if err != nil {
			return Atom{}, newParseError(ErrSyntaxError, lineNum, "malformed integer literal: %q", text)
		}
		return Atom{Kind: AtomInt, IntValue: n, Line: lineNum}, nil
	}

	if reLetter.MatchString(text) {
		letter := text[0]
		if !ctx.Variables.Declared(letter) {
			return Atom{}, runtime.NewVarError(runtime.ErrUndeclaredVar, "line %d: variable %q is not declared", lineNum, text)
		}
		return Atom{Kind: AtomVar, VarName: letter, Line: lineNum}, nil
	}

	if runtime.IsSensorName(text) {
		s := runtime.Sensor(text)
		if !ctx.Hardware.Enabled(s) {
			return Atom{}, runtime.NewVarError(runtime.ErrSensorNotEnabled, "line %d: sensor %q was never enabled with gebruik", lineNum, text)
		}
		return Atom{Kind: AtomSensor, Sensor: s, Line: lineNum}, nil
	}

	if m := reIntExpr.FindStringSubmatch(text); m != nil {
		left, err := parseExpr(m[1], lineNum, ctx)
		if err != nil {
			return Atom{}, err
		}
		right, err := parseExpr(m[3], lineNum, ctx)
		if err != nil {
			return Atom{}, err
		}
		op, err := parseOperator(m[2], lineNum)
		if err != nil {
			return Atom{}, err
		}
		return Atom{
			Kind:   AtomNested,
			Nested: &IntExpr{Left: left, Op: op, Right: right, Line: lineNum},
			Line:   lineNum,
		}, nil
	}

	return Atom{}, newParseError(ErrSyntaxError, lineNum, "cannot parse expression: %q", text)
}

func parseOperator(tok string, lineNum int) (Operator, error) {
	switch tok {
	case "+":
		return OpPlus, nil
	case "-":
		return OpMinus, nil
	case "*":
		return OpMul, nil
	case "/":
		return OpDiv, nil
	case "%":
		return OpMod, nil
	}
	return 0, newParseError(ErrSyntaxError, lineNum, "unknown operator: %q", tok)
}

func parseComparator(tok string, lineNum int) (Comparator, error) {
	switch tok {
	case "==":
		return CmpEq, nil
	case "!=":
		return CmpNeq, nil
	case ">":
		return CmpGt, nil
	case "<":
		return CmpLt, nil
	}
	return 0, newParseError(ErrSyntaxError, lineNum, "unknown comparator: %q", tok)
}
