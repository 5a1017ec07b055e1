package board

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tilesmith/tilesmith/alphabet"
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrUnknownReference = errors.New("unknown reference")
)

// A GameBoard is the main board structure. It holds every Square, with
// bonuses or placed tiles, and a precomputed lookup from textual reference
// to Reference for both directions at every square.
type GameBoard struct {
	squares     [][]*Square
	references  map[string]Reference
	tilesPlayed int
}

// MakeBoard creates a board from a description string.
func MakeBoard(desc []string) *GameBoard {
	// Turns an array of strings into the GameBoard structure type.
	g := &GameBoard{references: make(map[string]Reference)}
	for row, s := range desc {
		squares := []*Square{}
		for col, c := range []rune(s) {
			sq := &Square{row: row, col: col, bonus: BonusSquare(c)}
			squares = append(squares, sq)
			for _, dir := range []Direction{Horizontal, Vertical} {
				ref := Reference{Row: row, Col: col, Dir: dir}
				g.references[ref.String()] = ref
			}
		}
		g.squares = append(g.squares, squares)
	}
	return g
}

// NewBoard creates an empty standard board.
func NewBoard() *GameBoard {
	return MakeBoard(CrosswordGameBoard)
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

func (g *GameBoard) GetSquare(row, col int) *Square {
	return g.squares[row][col]
}

func (g *GameBoard) inBounds(row, col int) bool {
	return row >= 0 && row < g.Dim() && col >= 0 && col < g.Dim()
}

// Next returns the square after sq in the direction; ok is false at the
// edge of the board.
func (g *GameBoard) Next(sq *Square, dir Direction) (*Square, bool) {
	dr, dc := dir.delta()
	if !g.inBounds(sq.row+dr, sq.col+dc) {
		return nil, false
	}
	return g.squares[sq.row+dr][sq.col+dc], true
}

// Previous returns the square before sq in the direction; ok is false at
// the edge of the board.
func (g *GameBoard) Previous(sq *Square, dir Direction) (*Square, bool) {
	dr, dc := dir.delta()
	if !g.inBounds(sq.row-dr, sq.col-dc) {
		return nil, false
	}
	return g.squares[sq.row-dr][sq.col-dc], true
}

func (g *GameBoard) HasPreviousTile(sq *Square, dir Direction) bool {
	prev, ok := g.Previous(sq, dir)
	return ok && prev.HasTile()
}

func (g *GameBoard) HasNextTile(sq *Square, dir Direction) bool {
	next, ok := g.Next(sq, dir)
	return ok && next.HasTile()
}

// HasAdjacentTile is true if any of the four neighbours holds a tile.
func (g *GameBoard) HasAdjacentTile(sq *Square) bool {
	return g.HasPreviousTile(sq, Horizontal) || g.HasNextTile(sq, Horizontal) ||
		g.HasPreviousTile(sq, Vertical) || g.HasNextTile(sq, Vertical)
}

func (g *GameBoard) IsCentral(sq *Square) bool {
	c := g.Dim() / 2
	return sq.row == c && sq.col == c
}

// IsAnchor is true for an empty square that is either the centre of the
// board or next to a tile. Every new word has to cover an anchor.
func (g *GameBoard) IsAnchor(sq *Square) bool {
	return sq.IsEmpty() && (g.IsCentral(sq) || g.HasAdjacentTile(sq))
}

// Anchors lists the anchor squares column by column, top to bottom.
func (g *GameBoard) Anchors() []*Square {
	var anchors []*Square
	for col := 0; col < g.Dim(); col++ {
		for row := 0; row < g.Dim(); row++ {
			if sq := g.squares[row][col]; g.IsAnchor(sq) {
				anchors = append(anchors, sq)
			}
		}
	}
	return anchors
}

// Reference looks up a textual reference such as "H8" or "8H".
func (g *GameBoard) Reference(key string) (Reference, error) {
	ref, err := ParseReference(key)
	if err != nil {
		return Reference{}, err
	}
	ref, ok := g.references[ref.String()]
	if !ok {
		return Reference{}, fmt.Errorf("%w: %q is not on the board", ErrUnknownReference, key)
	}
	return ref, nil
}

// ReferenceAt is the reference of a word starting at sq.
func (g *GameBoard) ReferenceAt(sq *Square, dir Direction) Reference {
	return g.references[sq.Key(dir)]
}

// SquareAt is the starting square of a reference.
func (g *GameBoard) SquareAt(ref Reference) *Square {
	return g.squares[ref.Row][ref.Col]
}

// PlacementSquares returns the empty squares the tiles of a move starting
// at ref would land on, skipping squares that already hold tiles. It fails
// with ErrInvalidPlacement if the board runs out first.
func (g *GameBoard) PlacementSquares(ref Reference, n int) ([]*Square, error) {
	if !g.inBounds(ref.Row, ref.Col) {
		return nil, fmt.Errorf("%w: %v is not on the board", ErrInvalidPlacement, ref)
	}
	squares := make([]*Square, 0, n)
	sq := g.SquareAt(ref)
	for len(squares) < n {
		if sq.IsEmpty() {
			squares = append(squares, sq)
			if len(squares) == n {
				break
			}
		}
		next, ok := g.Next(sq, ref.Dir)
		if !ok {
			return nil, fmt.Errorf("%w: %d tiles do not fit at %v", ErrInvalidPlacement, n, ref)
		}
		sq = next
	}
	return squares, nil
}

// Play places the tiles starting at ref, one per empty square, stepping
// over squares that are already covered. If the tiles do not fit, the board
// is left untouched.
func (g *GameBoard) Play(tiles alphabet.Tiles, ref Reference) error {
	squares, err := g.PlacementSquares(ref, len(tiles))
	if err != nil {
		return err
	}
	for i, sq := range squares {
		sq.setTile(tiles[i])
	}
	g.tilesPlayed += len(tiles)
	log.Debug().Str("ref", ref.String()).Str("tiles", tiles.String()).Msg("played")
	return nil
}

// PreviousTiles returns the run of tiles right before sq in the direction,
// in reading order. It stops at the first empty square or the edge.
func (g *GameBoard) PreviousTiles(sq *Square, dir Direction) alphabet.Tiles {
	var tiles alphabet.Tiles
	for prev, ok := g.Previous(sq, dir); ok && prev.HasTile(); prev, ok = g.Previous(prev, dir) {
		tiles = append(tiles, prev.tile)
	}
	for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
	return tiles
}

// NextTiles returns the run of tiles right after sq in the direction, in
// reading order.
func (g *GameBoard) NextTiles(sq *Square, dir Direction) alphabet.Tiles {
	var tiles alphabet.Tiles
	for next, ok := g.Next(sq, dir); ok && next.HasTile(); next, ok = g.Next(next, dir) {
		tiles = append(tiles, next.tile)
	}
	return tiles
}

// Tiles returns the whole word through the reference square: the tiles
// before it, its own tile, and the tiles after it. It is empty if the
// square has no tile.
func (g *GameBoard) Tiles(ref Reference) alphabet.Tiles {
	sq := g.SquareAt(ref)
	if sq.IsEmpty() {
		return nil
	}
	tiles := g.PreviousTiles(sq, ref.Dir)
	tiles = append(tiles, sq.tile)
	return append(tiles, g.NextTiles(sq, ref.Dir)...)
}

// PlaceTile puts a single tile on a square. It is meant for setting up
// positions; moves go through Play.
func (g *GameBoard) PlaceTile(row, col int, t alphabet.Tile) {
	sq := g.squares[row][col]
	if sq.IsEmpty() {
		g.tilesPlayed++
	}
	sq.setTile(t)
}

// RemoveTile empties a square.
func (g *GameBoard) RemoveTile(row, col int) {
	sq := g.squares[row][col]
	if sq.HasTile() {
		g.tilesPlayed--
	}
	sq.clear()
}

// Clear removes every tile.
func (g *GameBoard) Clear() {
	for _, row := range g.squares {
		for _, sq := range row {
			sq.clear()
		}
	}
	g.tilesPlayed = 0
}

func (g *GameBoard) IsEmpty() bool {
	return g.tilesPlayed == 0
}

func (g *GameBoard) TilesPlayed() int {
	return g.tilesPlayed
}

// Copy returns a deep copy of the board.
func (g *GameBoard) Copy() *GameBoard {
	n := &GameBoard{
		squares:     make([][]*Square, len(g.squares)),
		references:  g.references,
		tilesPlayed: g.tilesPlayed,
	}
	for i, row := range g.squares {
		n.squares[i] = make([]*Square, len(row))
		for j, sq := range row {
			cp := *sq
			n.squares[i][j] = &cp
		}
	}
	return n
}
