package solver

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
	"github.com/tilesmith/tilesmith/lexicon"
	"github.com/tilesmith/tilesmith/movegen"
)

func newTestSolver(t *testing.T, opts ...movegen.Option) *Solver {
	d, err := lexicon.FromWords("test", []string{
		"FOOD", "FOE", "FOES", "DOE", "DOES", "ODE", "ODES", "AD", "ADO", "ADS",
		"DA", "DE", "ED", "OD", "ODA", "OE", "OES", "FA", "FAD", "FADE",
	})
	require.NoError(t, err)
	return NewSolver(alphabet.EnglishLetterDistribution(), d, opts...)
}

func TestPlayWordAndReplay(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	is.Equal(s.Bag().Len(), 100)

	is.NoErr(s.Change("FOOD?AE"))
	is.Equal(s.Bag().Len(), 93)

	m, err := s.PlayWord("H8", "FOOD")
	is.NoErr(err)
	// F O O D, the F on the centre double word
	is.Equal(m.Score(), 16)
	is.Equal(s.Board().TilesPlayed(), 4)
	is.Equal(s.Rack().Len(), alphabet.RackSize)
	is.Equal(s.Bag().Len(), 89)
	is.Equal(s.Sheet().Len(), 1)
	is.Equal(*s.Sheet().Entries[0], Entry{Word: "FOOD", Key: "H8", Score: 16})

	before := s.Board().Copy()
	s.Sheet().Entries[0].Score = 0
	is.NoErr(s.Replay())
	is.True(s.Board().Equals(before))
	is.Equal(s.Rack().Len(), 0)
	is.Equal(s.Bag().Len(), 96)
	is.Equal(s.Sheet().Entries[0].Score, 16)
}

func TestReplaySkipsIncompleteEntries(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	s.Sheet().Add(&Entry{Word: "FOOD", Key: "8H"})
	s.Sheet().Add(&Entry{Word: "ODE"})
	is.NoErr(s.Replay())
	is.Equal(s.Board().TilesPlayed(), 4)
	is.Equal(s.Sheet().Total(1), 16)
}

func TestReplayError(t *testing.T) {
	s := newTestSolver(t)
	s.Sheet().Add(&Entry{Word: "FOOD", Key: "H14"})
	err := s.Replay()
	assert.ErrorIs(t, err, board.ErrInvalidPlacement)
	assert.Equal(t, 100, s.Bag().Len())

	s.Sheet().Entries[0].Key = "Z99"
	assert.ErrorIs(t, s.Replay(), board.ErrUnknownReference)
}

func TestPreviewLeavesPositionAlone(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	is.NoErr(s.Change("FOOD?AE"))

	b, m, err := s.Preview("8H", "FOOd")
	is.NoErr(err)
	is.Equal(m.Tiles().String(), "FOOd")
	is.Equal(b.TilesPlayed(), 4)
	is.Equal(s.Board().TilesPlayed(), 0)
	is.Equal(s.Rack().Len(), 7)
	is.Equal(s.Rack().LetterCount('?'), 1)
}

func TestChangeKeepsRackOnFailure(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	is.NoErr(s.Change("FOOD"))
	err := s.Change("ZZ")
	is.True(errors.Is(err, alphabet.ErrTileUnavailable))
	is.Equal(s.Rack().Len(), 4)
	is.Equal(s.Bag().Len(), 96)
}

func TestSolveIsBestFirst(t *testing.T) {
	s := newTestSolver(t, movegen.WithThreads(2))
	require.NoError(t, s.Change("FOODAES"))
	sheet, err := s.Solve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, sheet.Entries)
	for i := 1; i < sheet.Len(); i++ {
		assert.GreaterOrEqual(t, sheet.Entries[i-1].Score, sheet.Entries[i].Score)
	}

	best, err := s.BestMoves(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, sheet.Entries[0].Score, best[0].Score())

	require.NoError(t, s.Commit(best[0]))
	assert.Equal(t, 1, s.Sheet().Len())
	assert.Equal(t, best[0].TilesPlayed(), s.Board().TilesPlayed())
}

func TestCommitMoveNotOnRack(t *testing.T) {
	s := newTestSolver(t)
	require.NoError(t, s.Change("FOOD"))
	m, err := s.Score("H8", "FOOD")
	require.NoError(t, err)
	require.NoError(t, s.Change("AES"))

	assert.ErrorIs(t, s.Commit(m), alphabet.ErrTileUnavailable)
	assert.Equal(t, 0, s.Board().TilesPlayed())
	assert.Equal(t, 3, s.Rack().Len())
	assert.Equal(t, 0, s.Sheet().Len())
}

func TestSaveAndLoadSheet(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	is.NoErr(s.Change("FOODAES"))
	_, err := s.PlayWord("H8", "FOOD")
	is.NoErr(err)

	var buf bytes.Buffer
	is.NoErr(s.Sheet().Save(&buf))

	sheet, err := LoadSheet(&buf)
	is.NoErr(err)
	is.Equal(sheet.Lexicon, "test")

	s2 := newTestSolver(t)
	is.NoErr(s2.LoadSheet(sheet))
	is.True(s2.Board().Equals(s.Board()))
	is.Equal(s2.Sheet().Total(0), 16)
}

func TestSetDictionaryKeepsThreads(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	s.SetThreads(4)
	d, err := lexicon.FromWords("other", []string{"QI"})
	is.NoErr(err)
	s.SetDictionary(d)
	is.Equal(s.Generator().Threads(), 4)
	is.Equal(s.Sheet().Lexicon, "other")
	is.True(s.Check("qi"))
	is.True(!s.Check("FOOD"))
}

func TestDisplayText(t *testing.T) {
	board.ColorSupport = false
	s := newTestSolver(t)
	require.NoError(t, s.Change("FOOD"))
	out := s.ToDisplayText()
	assert.Contains(t, out, "Rack: FOOD")
	assert.Contains(t, out, "Bag: (96)")
	assert.Contains(t, out, "Lexicon: test")
}

func TestWordsFormed(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	is.NoErr(s.Change("FOOD"))
	_, err := s.PlayWord("H8", "FOOD")
	is.NoErr(err)

	is.NoErr(s.Change("ADE"))
	m, err := s.Score("I7", "ADE")
	is.NoErr(err)
	is.Equal(s.WordsFormed(m), []string{"ADE", "FD", "OE"})
}

func TestAcceptAllLexicon(t *testing.T) {
	is := is.New(t)
	s := newTestSolver(t)
	is.NoErr(s.Change("DOOF"))
	m, err := s.Score("H8", "DOOF")
	is.NoErr(err)
	is.Equal(s.InvalidWords(m), []string{"DOOF"})
	is.Equal(s.Lexicon().Name(), "test")

	s.SetLexicon(lexicon.AcceptAll{})
	is.True(s.Check("DOOF"))
	is.Equal(len(s.InvalidWords(m)), 0)
	is.Equal(s.Lexicon().Name(), "AcceptAll")
	// generation still uses the dictionary
	is.Equal(s.Dictionary().Name(), "test")

	s.Reset()
	is.True(!s.Check("DOOF"))
	is.Equal(s.Lexicon().Name(), "test")
}
