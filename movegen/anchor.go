package movegen

import (
	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
	"github.com/tilesmith/tilesmith/move"
	"github.com/tilesmith/tilesmith/trie"
)

func (sc *searchContext) genFromAnchor(anchor *board.Square, dir board.Direction) {
	sc.anchor = anchor
	sc.dir = dir
	root := sc.gen.dictionary.Root()
	if sc.gen.board.HasPreviousTile(anchor, dir) {
		sc.prefixFromBoard(root)
	} else {
		sc.prefixFromRack(root, anchor)
	}
}

// prefixFromBoard starts the word at the first tile of the run right before
// the anchor; the whole run is the prefix.
func (sc *searchContext) prefixFromBoard(node *trie.Node) {
	b := sc.gen.board
	sq := sc.anchor
	for prev, ok := b.Previous(sq, sc.dir); ok && prev.HasTile(); prev, ok = b.Previous(prev, sc.dir) {
		sq = prev
	}
	sc.start = sq

	for sq != sc.anchor {
		t := sq.Tile()
		node = node.Child(t.Letter())
		sc.word = append(sc.word, t.Rune())
		sq, _ = b.Next(sq, sc.dir)
	}
	// A run that is no word prefix leaves nothing to extend.
	if node != nil {
		sc.suffixFromRack(node, sc.anchor)
	}
	sc.word = sc.word[:0]
}

// prefixFromRack tries the prefix built so far, which starts at sq, then
// grows it by one rack tile on the square before sq. It never grows onto a
// covered square or another anchor.
func (sc *searchContext) prefixFromRack(node *trie.Node, sq *board.Square) {
	sc.start = sq
	sc.suffixFromRack(node, sc.anchor)

	b := sc.gen.board
	prev, ok := b.Previous(sq, sc.dir)
	if !ok || prev.HasTile() || b.IsAnchor(prev) {
		return
	}
	for idx, child := range node.Children() {
		if child == nil {
			continue
		}
		if sc.counts[idx] > 0 {
			sc.prefixTile(child, prev, sc.samples[idx], idx)
		}
		if sc.counts[alphabet.BlankIndex] > 0 {
			sc.prefixTile(child, prev, alphabet.BlankTile.As(alphabet.FromIndex(idx)), alphabet.BlankIndex)
		}
	}
}

func (sc *searchContext) prefixTile(node *trie.Node, sq *board.Square, t alphabet.Tile, countIdx int) {
	sc.pushTile(t, countIdx)
	sc.prefixFromRack(node, sq)
	sc.popTile(countIdx)
}

// suffixFromRack tries every rack tile that continues the word on the empty
// square sq.
func (sc *searchContext) suffixFromRack(node *trie.Node, sq *board.Square) {
	for idx, child := range node.Children() {
		if child == nil {
			continue
		}
		if sc.counts[idx] > 0 {
			sc.suffixTile(child, sq, sc.samples[idx], idx)
		}
		if sc.counts[alphabet.BlankIndex] > 0 {
			sc.suffixTile(child, sq, alphabet.BlankTile.As(alphabet.FromIndex(idx)), alphabet.BlankIndex)
		}
	}
}

func (sc *searchContext) suffixTile(node *trie.Node, sq *board.Square, t alphabet.Tile, countIdx int) {
	if !sc.crossSets.allowed(sq, sc.dir, t.Letter()) {
		return
	}
	sc.pushTile(t, countIdx)
	sc.extend(node, sq)
	sc.popTile(countIdx)
}

// suffixFromBoard plays through the covered square sq.
func (sc *searchContext) suffixFromBoard(node *trie.Node, sq *board.Square) {
	t := sq.Tile()
	child := node.Child(t.Letter())
	if child == nil {
		return
	}
	sc.word = append(sc.word, t.Rune())
	sc.extend(child, sq)
	sc.word = sc.word[:len(sc.word)-1]
}

// extend continues past sq, which now holds the last letter of the word.
// The word can end here only if the next square is empty or off the board.
func (sc *searchContext) extend(node *trie.Node, sq *board.Square) {
	next, ok := sc.gen.board.Next(sq, sc.dir)
	switch {
	case !ok:
		sc.checkCurrentWord(node)
	case next.IsEmpty():
		sc.checkCurrentWord(node)
		sc.suffixFromRack(node, next)
	default:
		sc.suffixFromBoard(node, next)
	}
}

func (sc *searchContext) checkCurrentWord(node *trie.Node) {
	if !node.IsWord() || len(sc.tiles) == 0 {
		return
	}
	m := move.NewScoringMove(
		sc.gen.board.ReferenceAt(sc.start, sc.dir),
		string(sc.word),
		sc.tiles,
		sc.gen.score(sc.start, sc.dir, sc.tiles))
	sc.plays = sc.gen.playRecorder(sc.plays, m)
}
