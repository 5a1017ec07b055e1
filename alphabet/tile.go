package alphabet

import (
	"strings"

	"github.com/samber/lo"
)

// Tile is an immutable letter/value pair. A tile's value is 0 exactly when
// it is a blank.
type Tile struct {
	letter Letter
	value  int
}

// BlankTile is an undesignated blank.
var BlankTile = Tile{letter: Blank}

// NewTile creates a tile. Blank letters always carry a value of 0.
func NewTile(l Letter, value int) Tile {
	if l.IsBlank() {
		return Tile{letter: l}
	}
	return Tile{letter: l, value: value}
}

func (t Tile) Letter() Letter { return t.letter }
func (t Tile) Value() int     { return t.value }
func (t Tile) IsBlank() bool  { return t.letter.IsBlank() }

// As designates a blank tile as the given letter. Non-blank tiles are
// returned unchanged.
func (t Tile) As(l Letter) Tile {
	if !t.IsBlank() {
		return t
	}
	return Tile{letter: BlankAs(l)}
}

// Undesignated returns the tile as it sits in a rack or bag: a designated
// blank goes back to being a plain blank.
func (t Tile) Undesignated() Tile {
	if t.IsBlank() {
		return BlankTile
	}
	return t
}

func (t Tile) Rune() rune { return t.letter.Rune() }

func (t Tile) String() string { return t.letter.String() }

// Tiles is an ordered run of tiles.
type Tiles []Tile

func (ts Tiles) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteRune(t.Rune())
	}
	return sb.String()
}

// Word returns the letters of the tiles.
func (ts Tiles) Word() Word {
	return lo.Map(ts, func(t Tile, _ int) Letter { return t.letter })
}

// Score is the face value of the tiles, with no multipliers.
func (ts Tiles) Score() int {
	return lo.SumBy(ts, func(t Tile) int { return t.value })
}

// IsVowel reports whether the letter is a vowel. Blanks are neither vowels
// nor consonants.
func (l Letter) IsVowel() bool {
	if l.IsBlank() {
		return false
	}
	switch l.Rune() {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

// IsConsonant reports whether the letter is a real, non-vowel letter.
func (l Letter) IsConsonant() bool {
	return !l.IsBlank() && !l.IsVowel()
}
