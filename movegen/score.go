package movegen

import (
	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
)

// Score computes what placing tiles from ref would score on the current
// board, stepping over squares that are already covered. It fails with
// board.ErrInvalidPlacement if the tiles do not fit.
func (gen *Generator) Score(ref board.Reference, tiles alphabet.Tiles) (int, error) {
	if _, err := gen.board.PlacementSquares(ref, len(tiles)); err != nil {
		return 0, err
	}
	return gen.score(gen.board.SquareAt(ref), ref.Dir, tiles), nil
}

// score assumes the tiles fit. Bonus squares only count for tiles placed
// by this move; tiles already on the board count at face value.
func (gen *Generator) score(start *board.Square, dir board.Direction, tiles alphabet.Tiles) int {
	b := gen.board
	across := dir.Across()
	next := func(sq *board.Square) *board.Square {
		n, ok := b.Next(sq, dir)
		if !ok {
			return nil
		}
		return n
	}

	score := 0
	wordScore := 0
	wordMultiplier := 1
	sq := start

	for _, t := range tiles {
		for sq.HasTile() {
			wordScore += sq.Tile().Value()
			sq = next(sq)
		}
		award := sq.Award()
		letterScore := award.LetterMultiplier() * t.Value()
		wordMultiplier *= award.WordMultiplier()
		wordScore += letterScore

		prefix := b.PreviousTiles(sq, across)
		suffix := b.NextTiles(sq, across)
		if len(prefix) > 0 || len(suffix) > 0 {
			score += award.WordMultiplier() * (prefix.Score() + letterScore + suffix.Score())
		}
		sq = next(sq)
	}
	for sq != nil && sq.HasTile() {
		wordScore += sq.Tile().Value()
		sq = next(sq)
	}

	score += wordScore * wordMultiplier
	if len(tiles) == alphabet.RackSize {
		score += BingoBonus
	}
	return score
}
