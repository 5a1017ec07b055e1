// Package solver ties a board, a bag, a rack and a score sheet together
// with a move generator. It is what the shell drives.
package solver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
	"github.com/tilesmith/tilesmith/lexicon"
	"github.com/tilesmith/tilesmith/move"
	"github.com/tilesmith/tilesmith/movegen"
)

// Solver is a single-player session: tiles go from the bag to the rack, and
// from the rack to the board, and every move played is written on the
// sheet. It is not safe for concurrent use.
type Solver struct {
	letterDistribution *alphabet.LetterDistribution
	dictionary         *lexicon.Dictionary
	// lexicon checks the words a move forms. It is the dictionary unless
	// the sheet being replayed was played with a lexicon we do not have.
	lexicon lexicon.Lexicon
	genOpts            []movegen.Option

	board *board.GameBoard
	bag   *alphabet.Bag
	rack  *alphabet.Rack
	sheet *Sheet
	gen   *movegen.Generator
}

// NewSolver creates a session with an empty board, an empty rack and a full
// bag. The options are passed on to the move generator.
func NewSolver(ld *alphabet.LetterDistribution, d *lexicon.Dictionary, opts ...movegen.Option) *Solver {
	s := &Solver{
		letterDistribution: ld,
		dictionary:         d,
		lexicon:            d,
		genOpts:            opts,
		board:              board.NewBoard(),
		bag:                ld.MakeBag(),
		rack:               alphabet.NewRack(),
		sheet:              NewSheet(),
	}
	s.sheet.Lexicon = d.Name()
	s.gen = movegen.NewGenerator(s.board, d, opts...)
	return s
}

func (s *Solver) Board() *board.GameBoard                         { return s.board }
func (s *Solver) Bag() *alphabet.Bag                              { return s.bag }
func (s *Solver) Rack() *alphabet.Rack                            { return s.rack }
func (s *Solver) Sheet() *Sheet                                   { return s.sheet }
func (s *Solver) Generator() *movegen.Generator                   { return s.gen }
func (s *Solver) Dictionary() *lexicon.Dictionary                 { return s.dictionary }
func (s *Solver) Lexicon() lexicon.Lexicon                        { return s.lexicon }
func (s *Solver) LetterDistribution() *alphabet.LetterDistribution { return s.letterDistribution }

// SetDictionary switches lexicon. The position is kept as is.
func (s *Solver) SetDictionary(d *lexicon.Dictionary) {
	threads := s.gen.Threads()
	s.dictionary = d
	s.lexicon = d
	s.sheet.Lexicon = d.Name()
	s.gen = movegen.NewGenerator(s.board, d, s.genOpts...)
	s.gen.SetThreads(threads)
}

// SetLexicon changes only how words are checked; moves are still
// generated from the dictionary.
func (s *Solver) SetLexicon(lex lexicon.Lexicon) {
	s.lexicon = lex
}

// SetThreads changes how many threads move generation uses.
func (s *Solver) SetThreads(n int) {
	s.gen.SetThreads(n)
}

// Reset starts over: empty board and rack, full bag, blank sheet.
func (s *Solver) Reset() {
	s.clearPosition()
	s.sheet.Clear()
	s.lexicon = s.dictionary
	log.Debug().Msg("reset solver")
}

func (s *Solver) clearPosition() {
	s.board.Clear()
	s.rack.Clear()
	s.bag.Refill()
}

// Replay rebuilds the position from the sheet. Every complete entry is
// played from the bag, in order, and its score is recomputed. Incomplete
// entries are skipped. The rack is left empty.
func (s *Solver) Replay() error {
	s.clearPosition()
	for i, e := range s.sheet.Entries {
		if !e.IsComplete() {
			continue
		}
		m, err := s.moveFrom(e.Key, e.Word, s.bag)
		if err != nil {
			return fmt.Errorf("entry %d (%s %s): %w", i+1, e.Key, e.Word, err)
		}
		if err := s.board.Play(m.Tiles(), m.Reference()); err != nil {
			s.bag.PutBack(m.Tiles()...)
			return fmt.Errorf("entry %d (%s %s): %w", i+1, e.Key, e.Word, err)
		}
		e.Score = m.Score()
	}
	log.Debug().Int("entries", s.sheet.Len()).Int("total", s.sheet.Total(s.sheet.Len()-1)).
		Msg("replayed sheet")
	return nil
}

// LoadSheet replaces the sheet and replays it.
func (s *Solver) LoadSheet(sheet *Sheet) error {
	s.sheet = sheet
	return s.Replay()
}

func (s *Solver) moveFrom(key, word string, src alphabet.TileSource) (*move.Move, error) {
	ref, err := s.board.Reference(key)
	if err != nil {
		return nil, err
	}
	return s.gen.GetMove(ref, word, src)
}

// Preview shows what word would look like on the board when played from
// the rack. Neither the board nor the rack change; the returned board is a
// copy with the move on it.
func (s *Solver) Preview(key, word string) (*board.GameBoard, *move.Move, error) {
	m, err := s.moveFrom(key, word, s.rack)
	if err != nil {
		return nil, nil, err
	}
	s.rack.PutBack(m.Tiles()...)
	b := s.board.Copy()
	if err := b.Play(m.Tiles(), m.Reference()); err != nil {
		return nil, nil, err
	}
	return b, m, nil
}

// Change puts the rack back in the bag and takes the given letters from
// it instead. If the bag does not have them, the rack is unchanged.
func (s *Solver) Change(letters string) error {
	return s.rack.Set(letters, s.bag)
}

// Draw fills the rack from the bag.
func (s *Solver) Draw() alphabet.Tiles {
	return s.rack.Fill(s.bag)
}

// BestMoves lists the moves for the current rack, best first. A positive
// n keeps only the n best.
func (s *Solver) BestMoves(ctx context.Context, n int) ([]*move.Move, error) {
	plays, err := s.gen.GenerateContext(ctx, s.rack)
	if err != nil {
		return nil, err
	}
	move.SortDescending(plays)
	if n > 0 && len(plays) > n {
		plays = plays[:n]
	}
	return plays, nil
}

// Solve returns a sheet listing every move for the current rack, best
// first.
func (s *Solver) Solve(ctx context.Context) (*Sheet, error) {
	plays, err := s.BestMoves(ctx, 0)
	if err != nil {
		return nil, err
	}
	sheet := &Sheet{Lexicon: s.dictionary.Name()}
	for _, m := range plays {
		sheet.Add(entryFor(m))
	}
	return sheet, nil
}

func entryFor(m *move.Move) *Entry {
	return &Entry{Word: m.Word(), Key: m.Reference().String(), Score: m.Score()}
}

// Score is what word would score at key if played from the rack.
func (s *Solver) Score(key, word string) (*move.Move, error) {
	m, err := s.moveFrom(key, word, s.rack)
	if err != nil {
		return nil, err
	}
	s.rack.PutBack(m.Tiles()...)
	return m, nil
}

// PlayWord plays word at key from the rack and commits it.
func (s *Solver) PlayWord(key, word string) (*move.Move, error) {
	m, err := s.Score(key, word)
	if err != nil {
		return nil, err
	}
	return m, s.Commit(m)
}

// Commit plays a move made from the current rack: its tiles leave the
// rack for the board, it is written on the sheet, and the rack is refilled.
func (s *Solver) Commit(m *move.Move) error {
	if err := s.rack.RemoveAll(m.Tiles()); err != nil {
		return fmt.Errorf("move %v is not on rack %v: %w", m.ShortDescription(), s.rack, err)
	}
	if err := s.board.Play(m.Tiles(), m.Reference()); err != nil {
		s.rack.PutBack(m.Tiles()...)
		return err
	}
	s.sheet.Add(entryFor(m))
	drawn := s.Draw()
	log.Info().Str("move", m.ShortDescription()).Int("score", m.Score()).
		Str("drew", drawn.String()).Msg("committed")
	return nil
}

// Check looks a word up in the lexicon.
func (s *Solver) Check(word string) bool {
	return s.lexicon.HasWord(word)
}

// InvalidWords lists the words formed by m that the lexicon does not have.
func (s *Solver) InvalidWords(m *move.Move) []string {
	return lo.Reject(s.WordsFormed(m), func(w string, _ int) bool {
		return s.Check(w)
	})
}

// WordsFormed lists the main word of a move followed by every word it
// forms across, as they would read on the board.
func (s *Solver) WordsFormed(m *move.Move) []string {
	b := s.board.Copy()
	squares, err := b.PlacementSquares(m.Reference(), m.TilesPlayed())
	if err != nil {
		return nil
	}
	if err := b.Play(m.Tiles(), m.Reference()); err != nil {
		return nil
	}
	words := []string{b.Tiles(m.Reference()).String()}
	across := m.Reference().Dir.Across()
	for _, sq := range squares {
		if w := b.Tiles(b.ReferenceAt(sq, across)); len(w) > 1 {
			words = append(words, w.String())
		}
	}
	return words
}
