package glade

import (
	"fmt"
	"io"
	"math/rand"
	"os"
)

const (
	Width  = 20
	Height = 20
)

// Field is the 20x20 grid, the walker's pose, and the two counters (tick,
// progress) that together make up the position-dispatch state machine of
// §4.2. It is the one mutable piece of world state the interpreter drives.
type Field struct {
	grid [Height][Width]Cell

	X, Y int
	Dir  Direction

	Tick       int
	Progress   int
	LastTarget int

	rng *rand.Rand
	out io.Writer
}

// NewField builds a field of zero-valued cells (every cell an Obstacle)
// with the walker facing North at the origin. Load is the normal entry
// point; NewField exists for tests that want to poke cells directly.
func NewField(seed int64) *Field {
	return &Field{
		Dir:        North,
		Progress:   -1,
		LastTarget: -1,
		rng:        newRNG(seed),
		out:        os.Stdout,
	}
}

// SetOutput redirects trace output (target crossings); tests use this to
// capture traces instead of writing to stdout.
func (f *Field) SetOutput(w io.Writer) { f.out = w }

// Seed reseeds the field's random source. Load always produces a field
// seeded with 0 (normalized to 1); the CLI reseeds from its -seed flag
// before interpretation starts, since neither the script file nor the
// field file carries a seed of its own.
func (f *Field) Seed(seed int64) { f.rng = newRNG(seed) }

// Cell returns the cell at (x,y). Callers must stay in bounds.
func (f *Field) Cell(x, y int) Cell { return f.grid[y][x] }

func (f *Field) setCell(x, y int, c Cell) { f.grid[y][x] = c }

// Succeeded reports whether every target has been reached in order.
func (f *Field) Succeeded() bool {
	return f.LastTarget >= 0 && f.Progress == f.LastTarget
}

// Compass is the kompas sensor: the walker's current heading, 0..3.
func (f *Field) Compass() int { return int(f.Dir) }

// ColorEye is the kleurOog sensor: the color value of the cell currently
// under the walker (§9 Open Questions fixes this to the current cell, not
// the cell in front).
func (f *Field) ColorEye() int {
	return f.grid[f.Y][f.X].ColorValue()
}

// BWEye is the zwOog sensor: 1 if the current cell's color value is in
// 1..8, 0 if it is 0. Any other value would mean the color palette is
// broken and is a bug, not a user-facing error.
func (f *Field) BWEye() int {
	v := f.ColorEye()
	switch {
	case v == ColorBlack:
		return 0
	case v >= ColorWhite && v <= ColorPurple:
		return 1
	default:
		panic(fmt.Sprintf("bw_eye: color value %d outside the fixed palette", v))
	}
}

// Forward moves the walker one cell along its current heading.
func (f *Field) Forward() (payoff int, blocked bool, err error) {
	return f.move(f.Dir)
}

// Backward moves the walker one cell opposite its current heading; the
// heading itself does not change.
func (f *Field) Backward() (payoff int, blocked bool, err error) {
	return f.move(f.Dir.Right().Right())
}

func (f *Field) move(dir Direction) (int, bool, error) {
	dx, dy := dir.Step()
	nx, ny := f.X+dx, f.Y+dy
	if nx < 0 || nx >= Width || ny < 0 || ny >= Height {
		return 0, false, newFieldError(ErrOutOfBounds, "step out of bounds from (%d,%d) heading %s", f.X+1, f.Y+1, f.Dir)
	}
	f.Tick++
	payoff, blocked, err := f.enter(nx, ny)
	if err != nil {
		return 0, false, err
	}
	if blocked {
		return 0, true, nil
	}
	f.X, f.Y = nx, ny
	return payoff, false, nil
}

// TurnLeft rotates the heading 90 degrees counter-clockwise. A manual
// (script-issued) turn re-enters the cell the walker is standing on so a
// bomb or turner underneath retriggers; an automatic turn (one performed
// on the walker's behalf by a Turner cell) does not, to avoid recursion.
func (f *Field) TurnLeft(manual bool) error {
	f.Dir = f.Dir.Left()
	f.Tick++
	return f.maybeReenter(manual)
}

// TurnRight is the mirror of TurnLeft.
func (f *Field) TurnRight(manual bool) error {
	f.Dir = f.Dir.Right()
	f.Tick++
	return f.maybeReenter(manual)
}

func (f *Field) maybeReenter(manual bool) error {
	if !manual {
		return nil
	}
	_, _, err := f.enter(f.X, f.Y)
	return err
}

// enter is the cell entry state machine of §4.2: a single dispatch on the
// variant occupying the target square.
func (f *Field) enter(x, y int) (payoff int, blocked bool, err error) {
	c := &f.grid[y][x]
	switch c.Kind {
	case KindObstacle:
		return 0, true, nil

	case KindBomb:
		if c.Fuse == 0 || c.ArmedAt+c.Fuse == f.Tick {
			return 0, false, newFieldError(ErrDetonation,
				"bomb detonated at (%d,%d) heading %s, tick %d", x+1, y+1, f.Dir, f.Tick)
		}
		if c.ArmedAt == 0 {
			c.ArmedAt = f.Tick
		}
		return 0, false, nil

	case KindMoney:
		if !c.Taken {
			c.Taken = true
			return 1 << uint(c.Exponent), false, nil
		}
		return 0, false, nil

	case KindTarget:
		if c.TargetIdx == f.Progress+1 {
			f.Progress = c.TargetIdx
		}
		fmt.Fprintf(f.out, "passed target %d\n", c.TargetIdx+1)
		return 0, false, nil

	case KindTurner:
		k := c.TurnerN
		if k == 0 {
			k = f.rng.Intn(4)
		}
		for i := 0; i < k; i++ {
			if err := f.TurnRight(false); err != nil {
				return 0, false, err
			}
		}
		return 0, false, nil

	default:
		return 0, false, nil
	}
}
