package move

import (
	"fmt"
	"sort"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
)

// Move is a word placement: where it starts, the whole word it forms
// (letters already on the board included), the rack tiles it uses, and its
// score. Moves are not modified once created.
type Move struct {
	reference board.Reference
	word      string
	tiles     alphabet.Tiles
	score     int
}

// NewScoringMove creates a move. The tiles are copied.
func NewScoringMove(ref board.Reference, word string, tiles alphabet.Tiles, score int) *Move {
	t := make(alphabet.Tiles, len(tiles))
	copy(t, tiles)
	return &Move{reference: ref, word: word, tiles: t, score: score}
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<%p word: %v %v score: %v tp: %v tiles: %v>",
		m, m.reference, m.word, m.score, len(m.tiles), m.tiles)
}

// ShortDescription is the move as it would be written on a score sheet,
// e.g. "H8 FOO".
func (m *Move) ShortDescription() string {
	return m.reference.String() + " " + m.word
}

func (m *Move) Reference() board.Reference { return m.reference }
func (m *Move) Word() string               { return m.word }
func (m *Move) Score() int                 { return m.score }

// Tiles returns the rack tiles the move uses, in board order.
func (m *Move) Tiles() alphabet.Tiles {
	t := make(alphabet.Tiles, len(m.tiles))
	copy(t, m.tiles)
	return t
}

func (m *Move) TilesPlayed() int {
	return len(m.tiles)
}

// IsBingo is true when the move uses a whole rack.
func (m *Move) IsBingo() bool {
	return len(m.tiles) == alphabet.RackSize
}

// Equals compares everything but identity.
func (m *Move) Equals(o *Move) bool {
	if m.reference != o.reference || m.word != o.word || m.score != o.score ||
		len(m.tiles) != len(o.tiles) {
		return false
	}
	for i := range m.tiles {
		if m.tiles[i] != o.tiles[i] {
			return false
		}
	}
	return true
}

// SortAscending sorts by score, lowest first. Moves with equal scores keep
// their order.
func SortAscending(moves []*Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].score < moves[j].score
	})
}

// SortDescending sorts by score, highest first. Moves with equal scores keep
// their order.
func SortDescending(moves []*Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].score > moves[j].score
	})
}
