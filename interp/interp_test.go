package interp

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/kvande/gladewalker/glade"
	"github.com/kvande/gladewalker/lang"
	"github.com/kvande/gladewalker/runtime"
)

// buildField renders a 20x20 field-file body with White everywhere except
// the given 1-based (x,y) overrides, plus exactly one spawn token.
func buildField(spawn [2]int, spawnDir int, overrides map[[2]int]string) string {
	grid := make([][]string, glade.Height)
	for y := range grid {
		grid[y] = make([]string, glade.Width)
		for x := range grid[y] {
			grid[y][x] = "w"
		}
	}
	grid[spawn[1]-1][spawn[0]-1] = fmt.Sprintf("s%d", spawnDir)
	for pos, tok := range overrides {
		grid[pos[1]-1][pos[0]-1] = tok
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(strings.Join(row, ";"))
		b.WriteByte('\n')
	}
	return b.String()
}

func run(t *testing.T, fieldText, script string) (Result, *bytes.Buffer) {
	t.Helper()
	field, err := glade.Parse(fieldText)
	if err != nil {
		t.Fatalf("field parse error: %v", err)
	}
	var trace bytes.Buffer
	field.SetOutput(&trace)

	ctx := runtime.NewContext(field)
	block, err := lang.Parse(script, ctx)
	if err != nil {
		t.Fatalf("script parse error: %v", err)
	}

	it := New(ctx)
	it.SetOutput(&trace)
	return it.Run(block), &trace
}

func TestScenarioTrivialSuccess(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, map[[2]int]string{{3, 1}: "t1"})
	result, trace := run(t, fieldText, "stapVooruit\nstapVooruit\n")

	if result.Outcome != Success {
		t.Fatalf("expected Success, got %v (err=%v)", result.Outcome, result.Err)
	}
	wantCost := runtime.Budget - 2*runtime.ActionSoftware
	if result.Cost != wantCost {
		t.Fatalf("expected cost %d, got %d", wantCost, result.Cost)
	}
	if !strings.Contains(trace.String(), "passed target 1") {
		t.Fatalf("expected target trace, got %q", trace.String())
	}
}

func TestScenarioObstacleCollision(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, map[[2]int]string{{2, 1}: "q"})
	result, trace := run(t, fieldText, "stapVooruit\n")

	if result.Outcome != Failure {
		t.Fatalf("expected Failure, got %v (err=%v)", result.Outcome, result.Err)
	}
	if !strings.Contains(trace.String(), "collided") {
		t.Fatalf("expected collision trace, got %q", trace.String())
	}
	wantCost := runtime.Budget - runtime.ActionSoftware - runtime.PushObstacle
	if result.Cost != wantCost {
		t.Fatalf("expected cost %d, got %d", wantCost, result.Cost)
	}
}

func TestScenarioMoneyRecoversCost(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, map[[2]int]string{
		{2, 1}: "m3",
		{3, 1}: "t1",
	})
	result, _ := run(t, fieldText, "stapVooruit\nstapVooruit\n")

	if result.Outcome != Success {
		t.Fatalf("expected Success, got %v (err=%v)", result.Outcome, result.Err)
	}
	baseline := runtime.Budget - 2*runtime.ActionSoftware
	wantCost := baseline + 8 // 2^3 payoff
	if result.Cost != wantCost {
		t.Fatalf("expected cost %d, got %d", wantCost, result.Cost)
	}
}

func TestScenarioBombDetonatesImmediately(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, map[[2]int]string{{2, 1}: "x0"})
	result, _ := run(t, fieldText, "stapVooruit\n")

	if result.Outcome != Fatal {
		t.Fatalf("expected Fatal, got %v", result.Outcome)
	}
	fe, ok := result.Err.(*glade.FieldError)
	if !ok || fe.Kind() != string(glade.ErrDetonation) {
		t.Fatalf("expected Detonation, got %v (%T)", result.Err, result.Err)
	}
}

func TestScenarioOrderedTargetsRequireSequence(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, map[[2]int]string{
		{2, 1}: "t2",
		{3, 1}: "t1",
	})
	result, trace := run(t, fieldText, "stapVooruit\nstapVooruit\n")

	if result.Outcome != Failure {
		t.Fatalf("expected Failure, got %v (err=%v)", result.Outcome, result.Err)
	}
	traceStr := trace.String()
	if !strings.Contains(traceStr, "passed target 2") || !strings.Contains(traceStr, "passed target 1") {
		t.Fatalf("expected both target announcements, got %q", traceStr)
	}
}

func TestScenarioBudgetExceededDuringExecution(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, nil)
	script := "gebruik a\n" +
		"a = 0\n" +
		"zolang a < 1000000 {\n" +
		"a = a + 1\n" +
		"}\n"
	result, _ := run(t, fieldText, script)

	if result.Outcome != Fatal {
		t.Fatalf("expected Fatal, got %v", result.Outcome)
	}
	le, ok := result.Err.(*runtime.LedgerError)
	if !ok || le.Kind() != string(runtime.ErrBudgetExceeded) {
		t.Fatalf("expected BudgetExceeded, got %v (%T)", result.Err, result.Err)
	}
}

func TestPrintWritesLineAndValue(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, nil)
	script := "gebruik a\na = 42\nprint a\n"
	result, trace := run(t, fieldText, script)

	if result.Outcome != Failure {
		t.Fatalf("expected Failure (no target in this field), got %v (err=%v)", result.Outcome, result.Err)
	}
	if !strings.Contains(trace.String(), "print: 42") {
		t.Fatalf("expected print trace, got %q", trace.String())
	}
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	fieldText := buildField([2]int{1, 1}, 1, nil)
	script := "gebruik a\ngebruik b\na = 1\nb = 0\na = a / b\n"
	result, _ := run(t, fieldText, script)

	if result.Outcome != Fatal {
		t.Fatalf("expected Fatal, got %v", result.Outcome)
	}
	ve, ok := result.Err.(*runtime.VarError)
	if !ok || ve.Kind() != string(runtime.ErrDivByZero) {
		t.Fatalf("expected DivByZero, got %v (%T)", result.Err, result.Err)
	}
}
