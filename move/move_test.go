package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
)

func mkMove(t *testing.T, key, word string, rack string, score int) *Move {
	ref, err := board.ParseReference(key)
	if err != nil {
		t.Fatal(err)
	}
	r, err := alphabet.RackFromString(rack, alphabet.EnglishLetterDistribution())
	if err != nil {
		t.Fatal(err)
	}
	return NewScoringMove(ref, word, r.Tiles(), score)
}

func TestMoveAccessors(t *testing.T) {
	is := is.New(t)
	m := mkMove(t, "8H", "FOo", "FO?", 10)
	is.Equal(m.ShortDescription(), "8H FOo")
	is.Equal(m.TilesPlayed(), 3)
	is.True(!m.IsBingo())
	is.Equal(m.Reference().Dir, board.Vertical)

	tiles := m.Tiles()
	tiles[0] = alphabet.BlankTile
	is.Equal(m.Tiles().String(), "FO?")

	bingo := mkMove(t, "H4", "RETAINS", "RETAINS", 74)
	is.True(bingo.IsBingo())
	is.True(bingo.Equals(mkMove(t, "H4", "RETAINS", "RETAINS", 74)))
	is.True(!bingo.Equals(mkMove(t, "4H", "RETAINS", "RETAINS", 74)))
}

func TestSortIsStable(t *testing.T) {
	is := is.New(t)
	moves := []*Move{
		mkMove(t, "H8", "AB", "AB", 8),
		mkMove(t, "H8", "CD", "CD", 4),
		mkMove(t, "H8", "EF", "EF", 8),
		mkMove(t, "H8", "GH", "GH", 2),
	}
	SortAscending(moves)
	words := func() []string {
		ws := []string{}
		for _, m := range moves {
			ws = append(ws, m.Word())
		}
		return ws
	}
	is.Equal(words(), []string{"GH", "CD", "AB", "EF"})
	SortDescending(moves)
	is.Equal(words(), []string{"AB", "EF", "CD", "GH"})
}
