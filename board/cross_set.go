package board

import (
	"strings"

	"github.com/tilesmith/tilesmith/alphabet"
)

const (
	// TrivialCrossSet allows every possible letter. It is the cross-set of a
	// square with no perpendicular neighbours.
	TrivialCrossSet CrossSet = (1 << alphabet.NumLetters) - 1
)

// A CrossSet is a bit mask of letters that are allowed on a square. It is
// inherently directional, as it depends on which direction we are generating
// moves in. If we are generating moves HORIZONTALLY, we check the tiles
// above and below the square to see which letters make valid vertical
// words.
type CrossSet uint32

// Allowed checks a letter; designated blanks are checked as the letter they
// stand for.
func (c CrossSet) Allowed(l alphabet.Letter) bool {
	idx := l.Index()
	return idx >= 0 && c&(1<<uint(idx)) != 0
}

func (c *CrossSet) Set(l alphabet.Letter) {
	if idx := l.Index(); idx >= 0 {
		*c |= 1 << uint(idx)
	}
}

// CrossSetFromString builds a cross-set from a string of letters.
func CrossSetFromString(letters string) (CrossSet, error) {
	c := CrossSet(0)
	for _, r := range letters {
		l, err := alphabet.LetterFromRune(r)
		if err != nil {
			return 0, err
		}
		c.Set(l)
	}
	return c, nil
}

func (c *CrossSet) SetAll() {
	*c = TrivialCrossSet
}

func (c *CrossSet) Clear() {
	*c = 0
}

func (c CrossSet) String() string {
	var sb strings.Builder
	for i := 0; i < alphabet.NumLetters; i++ {
		if c&(1<<uint(i)) != 0 {
			sb.WriteRune(alphabet.FromIndex(i).Rune())
		}
	}
	return sb.String()
}
