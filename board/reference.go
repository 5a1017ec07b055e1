package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is the way a word is written.
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

// Across is the perpendicular direction.
func (d Direction) Across() Direction {
	if d == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// delta is the row and column step taken when moving forward.
func (d Direction) delta() (int, int) {
	if d == Horizontal {
		return 0, 1
	}
	return 1, 0
}

// A Reference is where a word starts and which way it goes. A horizontal
// reference is written row letter then column number ("H8"); a vertical one
// is column number then row letter ("8H").
type Reference struct {
	Row int
	Col int
	Dir Direction
}

func (r Reference) String() string {
	row := string(rune('A' + r.Row))
	col := strconv.Itoa(r.Col + 1)
	if r.Dir == Horizontal {
		return row + col
	}
	return col + row
}

// ParseReference reads "H8" or "8H" style text. It does not check that the
// coordinates fit on any particular board.
func ParseReference(s string) (Reference, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Reference{}, fmt.Errorf("%w: %q", ErrUnknownReference, s)
	}
	var dir Direction
	var rowPart, colPart string
	switch {
	case s[0] >= 'A' && s[0] <= 'Z':
		dir, rowPart, colPart = Horizontal, s[:1], s[1:]
	case s[len(s)-1] >= 'A' && s[len(s)-1] <= 'Z':
		dir, rowPart, colPart = Vertical, s[len(s)-1:], s[:len(s)-1]
	default:
		return Reference{}, fmt.Errorf("%w: %q", ErrUnknownReference, s)
	}
	col, err := strconv.Atoi(colPart)
	if err != nil || col < 1 {
		return Reference{}, fmt.Errorf("%w: %q", ErrUnknownReference, s)
	}
	return Reference{Row: int(rowPart[0] - 'A'), Col: col - 1, Dir: dir}, nil
}
