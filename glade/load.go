package glade

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Load reads a delimited field file: 20 rows of 20 ';'-separated cell
// tokens, row-major. Row splitting is a thin collaborator (§1 scope) —
// this is the minimal implementation, not a general CSV reader.
func Load(path string) (*Field, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading field file")
	}
	return parse(string(raw))
}

// Parse builds a Field directly from field-file text, bypassing disk I/O.
// Load is the normal entry point; Parse exists for callers (tests, or a
// caller that already has the bytes) that don't have a path.
func Parse(text string) (*Field, error) {
	return parse(text)
}

func parse(text string) (*Field, error) {
	lines := splitRows(text)
	if len(lines) != Height {
		return nil, newFieldError(ErrBadDimensions, "expected %d rows, got %d", Height, len(lines))
	}

	f := NewField(0)
	spawns := 0
	targetsSeen := map[int]bool{}
	moneySeen := map[int]bool{}
	lastTarget := -1

	for y, line := range lines {
		cols := strings.Split(line, ";")
		if len(cols) != Width {
			return nil, newFieldError(ErrBadDimensions, "row %d: expected %d columns, got %d", y+1, Width, len(cols))
		}
		for x, tok := range cols {
			cell, spawnDir, err := parseCellToken(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d col %d", y+1, x+1)
			}

			if spawnDir != nil {
				spawns++
				if spawns > 1 {
					return nil, newFieldError(ErrMultipleSpawns, "more than one spawn cell in field")
				}
				dir, err := ParseDirection(*spawnDir)
				if err != nil {
					return nil, errors.Wrapf(err, "row %d col %d", y+1, x+1)
				}
				f.X, f.Y, f.Dir = x, y, dir
				cell = Cell{Kind: KindBlack}
			}

			switch cell.Kind {
			case KindTarget:
				if targetsSeen[cell.TargetIdx] {
					return nil, newFieldError(ErrDuplicateTargetIdx, "duplicate target index %d", cell.TargetIdx)
				}
				targetsSeen[cell.TargetIdx] = true
				if cell.TargetIdx > lastTarget {
					lastTarget = cell.TargetIdx
				}
			case KindMoney:
				if moneySeen[cell.Exponent] {
					return nil, newFieldError(ErrDuplicateMoneyExponent, "duplicate money exponent %d", cell.Exponent)
				}
				moneySeen[cell.Exponent] = true
			}

			f.setCell(x, y, cell)
		}
	}

	if spawns == 0 {
		return nil, newFieldError(ErrMissingSpawn, "field has no spawn cell")
	}
	for i := 0; i <= lastTarget; i++ {
		if !targetsSeen[i] {
			return nil, newFieldError(ErrMissingTargetIdx, "target sequence missing index %d", i)
		}
	}

	f.LastTarget = lastTarget
	f.Progress = -1
	f.Tick = 0
	return f, nil
}

func splitRows(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var rows []string
	for _, r := range raw {
		if strings.TrimSpace(r) == "" {
			continue
		}
		rows = append(rows, r)
	}
	return rows
}

// parseCellToken decodes one "letter + optional digits" token. A non-nil
// spawnDir return means the token was a griever spawn; the caller installs
// it on the walker's pose and replaces the cell with Black.
func parseCellToken(tok string) (Cell, *int, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Cell{}, nil, newFieldError(ErrBadCell, "empty cell token")
	}

	letter := unicode.ToLower(rune(tok[0]))
	rest := tok[1:]

	var num int
	hasNum := false
	if rest != "" {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return Cell{}, nil, newFieldError(ErrBadCell, "bad cell token %q", tok)
		}
		num, hasNum = n, true
	}

	switch letter {
	case 'q':
		return Cell{Kind: KindObstacle}, nil, nil
	case 'x':
		fuse := 0
		if hasNum {
			fuse = num
		}
		return Cell{Kind: KindBomb, Fuse: fuse}, nil, nil
	case 'w':
		return Cell{Kind: KindWhite}, nil, nil
	case 'g':
		return Cell{Kind: KindGray}, nil, nil
	case 'r':
		return Cell{Kind: KindRed}, nil, nil
	case 'o':
		return Cell{Kind: KindOrange}, nil, nil
	case 'y':
		return Cell{Kind: KindYellow}, nil, nil
	case 'e':
		return Cell{Kind: KindGreen}, nil, nil
	case 'b':
		return Cell{Kind: KindBlue}, nil, nil
	case 'p':
		return Cell{Kind: KindPurple}, nil, nil
	case 'l':
		return Cell{Kind: KindBlack}, nil, nil
	case 't':
		if !hasNum {
			return Cell{}, nil, newFieldError(ErrBadCell, "target token %q missing index", tok)
		}
		return Cell{Kind: KindTarget, TargetIdx: num - 1}, nil, nil
	case 'm':
		if !hasNum {
			return Cell{}, nil, newFieldError(ErrBadCell, "money token %q missing exponent", tok)
		}
		return Cell{Kind: KindMoney, Exponent: num}, nil, nil
	case 'd':
		n := 0
		if hasNum {
			n = num
		}
		return Cell{Kind: KindTurner, TurnerN: n}, nil, nil
	case 's':
		if !hasNum {
			return Cell{}, nil, newFieldError(ErrBadCell, "spawn token %q missing direction", tok)
		}
		dir := num
		return Cell{}, &dir, nil
	default:
		return Cell{}, nil, newFieldError(ErrBadCell, "unknown cell letter %q in token %q", string(letter), tok)
	}
}
