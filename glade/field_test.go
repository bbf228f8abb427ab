package glade

import "testing"

func blankField() *Field {
	f := NewField(42)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			f.setCell(x, y, Cell{Kind: KindWhite})
		}
	}
	f.X, f.Y, f.Dir = 1, 1, East
	return f
}

func TestForwardBlockedByObstacle(t *testing.T) {
	f := blankField()
	f.setCell(2, 1, Cell{Kind: KindObstacle})

	payoff, blocked, err := f.Forward()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked {
		t.Fatalf("expected blocked move")
	}
	if payoff != 0 {
		t.Fatalf("blocked move should not pay off, got %d", payoff)
	}
	if f.X != 1 || f.Y != 1 {
		t.Fatalf("pose should not change on blocked move, got (%d,%d)", f.X, f.Y)
	}
	if f.Tick != 1 {
		t.Fatalf("tick should still advance on a blocked move, got %d", f.Tick)
	}
}

func TestForwardOutOfBounds(t *testing.T) {
	f := blankField()
	f.X, f.Y, f.Dir = 19, 1, East

	_, _, err := f.Forward()
	if err == nil {
		t.Fatalf("expected out-of-bounds error")
	}
	fe, ok := err.(*FieldError)
	if !ok || fe.Kind() != string(ErrOutOfBounds) {
		t.Fatalf("expected OutOfBounds, got %v", err)
	}
}

func TestMoneyPaysOnceThenZero(t *testing.T) {
	f := blankField()
	f.setCell(2, 1, Cell{Kind: KindMoney, Exponent: 3})

	payoff, blocked, err := f.Forward()
	if err != nil || blocked {
		t.Fatalf("unexpected result: payoff=%d blocked=%v err=%v", payoff, blocked, err)
	}
	if payoff != 8 {
		t.Fatalf("expected payoff 8 (2^3), got %d", payoff)
	}

	f.X, f.Y, f.Dir = 1, 1, East
	payoff, _, _ = f.Forward()
	if payoff != 0 {
		t.Fatalf("second entry onto spent money should pay 0, got %d", payoff)
	}
}

func TestBombDetonatesImmediatelyWhenFuseZero(t *testing.T) {
	f := blankField()
	f.setCell(2, 1, Cell{Kind: KindBomb, Fuse: 0})

	_, _, err := f.Forward()
	if err == nil {
		t.Fatalf("expected detonation")
	}
	fe, ok := err.(*FieldError)
	if !ok || fe.Kind() != string(ErrDetonation) {
		t.Fatalf("expected Detonation, got %v", err)
	}
}

func TestBombArmsThenDetonatesAtFuseTick(t *testing.T) {
	f := blankField()
	f.setCell(2, 1, Cell{Kind: KindBomb, Fuse: 2})

	// Enter at tick 1: arms the bomb (armed_at = 1).
	_, blocked, err := f.Forward()
	if err != nil || blocked {
		t.Fatalf("arming entry should succeed, got blocked=%v err=%v", blocked, err)
	}
	if f.Cell(2, 1).ArmedAt != 1 {
		t.Fatalf("expected armed_at 1, got %d", f.Cell(2, 1).ArmedAt)
	}

	// Step away (tick 2) and back so the re-entry lands on tick 3
	// (armed_at+fuse). Turning in place would re-enter the bomb underneath.
	if _, _, err := f.Backward(); err != nil {
		t.Fatalf("step away: %v", err)
	}
	if f.X != 1 || f.Y != 1 {
		t.Fatalf("expected to be off the bomb at (1,1), got (%d,%d)", f.X, f.Y)
	}
	if f.Tick != 2 {
		t.Fatalf("expected tick 2 before re-entry, got %d", f.Tick)
	}

	_, _, err = f.Forward()
	if err == nil {
		t.Fatalf("expected detonation on re-entry at armed_at+fuse")
	}
	fe, ok := err.(*FieldError)
	if !ok || fe.Kind() != string(ErrDetonation) {
		t.Fatalf("expected Detonation, got %v", err)
	}
}

func TestTurnerFixedRotation(t *testing.T) {
	f := blankField()
	f.setCell(2, 1, Cell{Kind: KindTurner, TurnerN: 2})

	startDir := f.Dir
	_, _, err := f.Forward()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := startDir.Right().Right()
	if f.Dir != want {
		t.Fatalf("expected heading %s after two automatic rights, got %s", want, f.Dir)
	}
}

func TestManualTurnRetriggersCurrentCell(t *testing.T) {
	f := blankField()
	f.setCell(1, 1, Cell{Kind: KindBomb, Fuse: 0})
	f.X, f.Y = 1, 1

	if err := f.TurnLeft(true); err == nil {
		t.Fatalf("expected manual turn to re-enter the armed bomb and detonate")
	}
}

func TestAutomaticTurnDoesNotReenter(t *testing.T) {
	f := blankField()
	// A Turner sitting on its own square, so to speak: if an automatic
	// turn re-entered the cell it landed on, this would recurse forever.
	f.setCell(2, 1, Cell{Kind: KindTurner, TurnerN: 1})

	startDir := f.Dir
	if _, _, err := f.Forward(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Dir != startDir.Right() {
		t.Fatalf("expected a single automatic right turn, got %s", f.Dir)
	}
}

func TestTargetProgressionRequiresOrder(t *testing.T) {
	f := blankField()
	f.LastTarget = 1
	f.setCell(2, 1, Cell{Kind: KindTarget, TargetIdx: 1})
	f.SetOutput(discard{})

	if _, _, err := f.Forward(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Progress != -1 {
		t.Fatalf("progress should not advance when target 2 arrives before target 1, got %d", f.Progress)
	}

	f.X, f.Y, f.Dir = 1, 1, East
	f.setCell(2, 1, Cell{Kind: KindTarget, TargetIdx: 0})
	if _, _, err := f.Forward(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Progress != 0 {
		t.Fatalf("progress should advance to 0 after target 1, got %d", f.Progress)
	}
	if f.Succeeded() {
		t.Fatalf("field should not report success: last_target is 1, progress is 0")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
