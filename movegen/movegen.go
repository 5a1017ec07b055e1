// Package movegen contains all the move-generating functions. It walks the
// lexicon trie outward from every anchor square, building a prefix either
// from the board or from the rack, then extending it with rack and board
// tiles while checking every word formed in the perpendicular direction.
package movegen

import (
	"context"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
	"github.com/tilesmith/tilesmith/lexicon"
	"github.com/tilesmith/tilesmith/move"
)

const (
	// BingoBonus is added to the score of a move that uses all the tiles of
	// a full rack.
	BingoBonus = 50
)

// Generator finds and scores moves on a board. It never modifies the board
// and keeps no state between calls, so several goroutines may generate on
// the same board as long as nobody plays on it meanwhile.
type Generator struct {
	board        *board.GameBoard
	dictionary   *lexicon.Dictionary
	threads      int
	playRecorder PlayRecorderFunc
}

// Option configures a Generator.
type Option func(*Generator)

// WithThreads sets how many anchor searches may run at once. Anything
// below 2 means a single-threaded search.
func WithThreads(n int) Option {
	return func(gen *Generator) {
		gen.threads = n
	}
}

// WithPlayRecorder replaces the default AllPlaysRecorder.
func WithPlayRecorder(f PlayRecorderFunc) Option {
	return func(gen *Generator) {
		gen.playRecorder = f
	}
}

func NewGenerator(b *board.GameBoard, d *lexicon.Dictionary, opts ...Option) *Generator {
	gen := &Generator{
		board:        b,
		dictionary:   d,
		threads:      1,
		playRecorder: AllPlaysRecorder,
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

func (gen *Generator) Board() *board.GameBoard        { return gen.board }
func (gen *Generator) Dictionary() *lexicon.Dictionary { return gen.dictionary }
func (gen *Generator) Threads() int                    { return gen.threads }

// SetThreads changes the number of threads used by later searches.
func (gen *Generator) SetThreads(n int) {
	gen.threads = n
}

// SetPlayRecorder changes the recorder used by later searches.
func (gen *Generator) SetPlayRecorder(f PlayRecorderFunc) {
	gen.playRecorder = f
}

// ListMoves returns every legal move for the rack, lowest score first.
// Moves with the same score keep the order they were found in.
func (gen *Generator) ListMoves(rack *alphabet.Rack) []*move.Move {
	plays, _ := gen.GenerateContext(context.Background(), rack)
	return plays
}

// GenerateContext is ListMoves with cancellation. On cancellation it
// returns the context's error and no moves.
func (gen *Generator) GenerateContext(ctx context.Context, rack *alphabet.Rack) ([]*move.Move, error) {
	cs := gen.computeCrossSets()
	tasks := gen.searchTasks()

	var plays []*move.Move
	var err error
	if gen.threads > 1 && len(tasks) > 1 {
		plays, err = gen.generateThreaded(ctx, rack, cs, tasks)
	} else {
		plays, err = gen.generate(ctx, rack, cs, tasks)
	}
	if err != nil {
		return nil, err
	}
	move.SortAscending(plays)
	log.Debug().Str("rack", rack.String()).Int("anchors", len(tasks)/2).
		Int("threads", gen.threads).Int("nplays", len(plays)).Msg("generated")
	return plays, nil
}

func (gen *Generator) generate(ctx context.Context, rack *alphabet.Rack, cs *crossSets,
	tasks []searchTask) ([]*move.Move, error) {

	sc := newSearchContext(gen, rack, cs)
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sc.genFromAnchor(t.anchor, t.dir)
	}
	return sc.plays, nil
}

// GetMove builds the move that writes word from ref. Every letter that
// lands on an empty square is picked from src; lowercase letters are
// blanks, and a blank must be given as one. Letters that land on covered
// squares must match the tile there.
// On any error, the tiles picked so far go back to src.
func (gen *Generator) GetMove(ref board.Reference, word string, src alphabet.TileSource) (*move.Move, error) {
	b := gen.board
	if ref.Row < 0 || ref.Row >= b.Dim() || ref.Col < 0 || ref.Col >= b.Dim() {
		return nil, fmt.Errorf("%w: %v is not on the board", board.ErrInvalidPlacement, ref)
	}
	var tiles alphabet.Tiles
	fail := func(err error) (*move.Move, error) {
		src.PutBack(tiles...)
		return nil, err
	}

	sq, onBoard := b.SquareAt(ref), true
	for _, r := range word {
		if !onBoard {
			return fail(fmt.Errorf("%w: %q does not fit at %v", board.ErrInvalidPlacement, word, ref))
		}
		if sq.IsEmpty() {
			if l, err := alphabet.LetterFromRune(r); err == nil && l == alphabet.Blank {
				return fail(fmt.Errorf("%w: the blank in %q needs a letter; write it in lowercase",
					board.ErrInvalidPlacement, word))
			}
			t, err := src.Pick(r)
			if err != nil {
				return fail(err)
			}
			tiles = append(tiles, t)
		} else if unicode.ToUpper(sq.Tile().Rune()) != unicode.ToUpper(r) {
			return fail(fmt.Errorf("%w: %q does not match %c at %v",
				board.ErrInvalidPlacement, word, sq.Tile().Rune(), ref))
		}
		sq, onBoard = b.Next(sq, ref.Dir)
	}
	if len(tiles) == 0 {
		return fail(fmt.Errorf("%w: %q places no tiles at %v", board.ErrInvalidPlacement, word, ref))
	}
	score := gen.score(b.SquareAt(ref), ref.Dir, tiles)
	return move.NewScoringMove(ref, word, tiles, score), nil
}

