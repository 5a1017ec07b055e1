package movegen

import (
	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
	"github.com/tilesmith/tilesmith/trie"
)

// crossSets caches, per direction of play, the letters that may go on each
// empty square without forming a bad word in the other direction. It is
// computed once per search from the board and only read afterwards, so the
// threads of a search share it.
type crossSets struct {
	dim  int
	sets [2][]board.CrossSet
}

func (gen *Generator) computeCrossSets() *crossSets {
	b := gen.board
	dim := b.Dim()
	cs := &crossSets{dim: dim}
	for _, dir := range []board.Direction{board.Horizontal, board.Vertical} {
		cs.sets[dir] = make([]board.CrossSet, dim*dim)
		for row := 0; row < dim; row++ {
			for col := 0; col < dim; col++ {
				cs.sets[dir][row*dim+col] = gen.crossSet(b.GetSquare(row, col), dir)
			}
		}
	}
	return cs
}

// crossSet is the set of letters that can be placed on sq when playing in
// dir. A square with no tiles on either side across dir allows anything;
// otherwise the letter must join the tiles before and after it into a word.
func (gen *Generator) crossSet(sq *board.Square, dir board.Direction) board.CrossSet {
	if sq.HasTile() {
		return 0
	}
	b := gen.board
	across := dir.Across()
	if !b.HasPreviousTile(sq, across) && !b.HasNextTile(sq, across) {
		return board.TrivialCrossSet
	}
	prefix := gen.dictionary.Root().ChildTiles(b.PreviousTiles(sq, across))
	suffix := b.NextTiles(sq, across)
	var cs board.CrossSet
	if prefix == nil {
		return cs
	}
	for idx := 0; idx < alphabet.NumLetters; idx++ {
		if completesWord(prefix.ChildAt(idx), suffix) {
			cs.Set(alphabet.FromIndex(idx))
		}
	}
	return cs
}

func completesWord(node *trie.Node, suffix alphabet.Tiles) bool {
	if node == nil {
		return false
	}
	return node.ChildTiles(suffix).IsWord()
}

func (cs *crossSets) allowed(sq *board.Square, dir board.Direction, l alphabet.Letter) bool {
	return cs.sets[dir][sq.Row()*cs.dim+sq.Col()].Allowed(l)
}
