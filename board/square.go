package board

import (
	"fmt"
	"os"

	"github.com/tilesmith/tilesmith/alphabet"
)

var (
	ColorSupport = os.Getenv("TILESMITH_DISABLE_COLOR") != "on"
)

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3WS is a triple word score
	Bonus3WS BonusSquare = '='
	// Bonus3LS is a triple letter score
	Bonus3LS BonusSquare = '"'
	// Bonus2LS is a double letter score
	Bonus2LS BonusSquare = '\''
	// Bonus2WS is a double word score
	Bonus2WS BonusSquare = '-'
)

// Award is the scoring premium of a square.
type Award int

const (
	NoAward Award = iota
	LetterDouble
	LetterTriple
	WordDouble
	WordTriple
)

func (b BonusSquare) Award() Award {
	switch b {
	case Bonus3WS:
		return WordTriple
	case Bonus2WS:
		return WordDouble
	case Bonus3LS:
		return LetterTriple
	case Bonus2LS:
		return LetterDouble
	}
	return NoAward
}

// LetterMultiplier is what a tile newly placed on the square is multiplied by.
func (a Award) LetterMultiplier() int {
	switch a {
	case LetterDouble:
		return 2
	case LetterTriple:
		return 3
	}
	return 1
}

// WordMultiplier is what a word newly covering the square is multiplied by.
func (a Award) WordMultiplier() int {
	switch a {
	case WordDouble:
		return 2
	case WordTriple:
		return 3
	}
	return 1
}

func (a Award) String() string {
	switch a {
	case LetterDouble:
		return "double letter"
	case LetterTriple:
		return "triple letter"
	case WordDouble:
		return "double word"
	case WordTriple:
		return "triple word"
	}
	return "none"
}

// A Square is a single square in a game board. Its position and bonus never
// change; its tile is set when a move is played and cleared with the board.
type Square struct {
	row, col int
	bonus    BonusSquare
	tile     alphabet.Tile
	filled   bool
}

func (s *Square) String() string {
	return fmt.Sprintf("<%v (%v) (%s)>", s.Key(Horizontal), s.tileString(), string(s.bonus))
}

func (s *Square) tileString() string {
	if !s.filled {
		return "empty"
	}
	return s.tile.String()
}

func (s *Square) Row() int            { return s.row }
func (s *Square) Col() int            { return s.col }
func (s *Square) Bonus() BonusSquare  { return s.bonus }
func (s *Square) Award() Award        { return s.bonus.Award() }
func (s *Square) IsEmpty() bool       { return !s.filled }
func (s *Square) HasTile() bool       { return s.filled }
func (s *Square) Tile() alphabet.Tile { return s.tile }

// Key is the textual reference of a word starting here in the given
// direction: "H8" across, "8H" down.
func (s *Square) Key(dir Direction) string {
	return Reference{Row: s.row, Col: s.col, Dir: dir}.String()
}

func (s *Square) setTile(t alphabet.Tile) {
	s.tile = t
	s.filled = true
}

func (s *Square) clear() {
	s.tile = alphabet.Tile{}
	s.filled = false
}

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3WS:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2WS:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3LS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2LS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	default:
		return string(b)
	}
}

// DisplayString is what the square looks like on a text board: its tile,
// or its bonus marking, or a dot.
func (s *Square) DisplayString() string {
	if s.filled {
		return s.tile.String()
	}
	if s.bonus == NoBonus {
		return "."
	}
	return s.bonus.displayString()
}
