package movegen

import (
	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/board"
	"github.com/tilesmith/tilesmith/move"
)

// searchTask is one independent unit of the search: all the moves that
// cover an anchor in one direction without covering an earlier anchor.
type searchTask struct {
	anchor *board.Square
	dir    board.Direction
}

// searchTasks lists anchors column by column, each horizontally then
// vertically. The order of the tasks is the order moves are discovered in.
func (gen *Generator) searchTasks() []searchTask {
	anchors := gen.board.Anchors()
	tasks := make([]searchTask, 0, 2*len(anchors))
	for _, a := range anchors {
		tasks = append(tasks,
			searchTask{anchor: a, dir: board.Horizontal},
			searchTask{anchor: a, dir: board.Vertical})
	}
	return tasks
}

// searchContext holds the scratch state of one search. Each ListMoves call,
// and each thread of a threaded call, gets its own.
type searchContext struct {
	gen       *Generator
	crossSets *crossSets

	// rack letters still available; blanks are at BlankIndex
	counts  [alphabet.NumLetters + 1]int
	samples [alphabet.NumLetters]alphabet.Tile

	// rack tiles used so far, in board order, and the word as read on the
	// board, played-through tiles included
	tiles alphabet.Tiles
	word  []rune

	dir    board.Direction
	anchor *board.Square
	start  *board.Square

	plays []*move.Move
}

func newSearchContext(gen *Generator, rack *alphabet.Rack, cs *crossSets) *searchContext {
	return &searchContext{
		gen:       gen,
		crossSets: cs,
		counts:    rack.LetterCounts(),
		samples:   rack.TileSamples(),
		tiles:     make(alphabet.Tiles, 0, alphabet.RackSize),
		word:      make([]rune, 0, gen.board.Dim()),
	}
}

func (sc *searchContext) pushTile(t alphabet.Tile, countIdx int) {
	sc.counts[countIdx]--
	sc.tiles = append(sc.tiles, t)
	sc.word = append(sc.word, t.Rune())
}

func (sc *searchContext) popTile(countIdx int) {
	sc.word = sc.word[:len(sc.word)-1]
	sc.tiles = sc.tiles[:len(sc.tiles)-1]
	sc.counts[countIdx]++
}
