package alphabet

import (
	"fmt"

	"lukechampine.com/frand"
)

// A Bag is the bag o'tiles! It has no capacity and draws at random.
type Bag struct {
	TileCollection
	initialTiles Tiles
}

// NewBag creates a bag holding the given tiles. Refill restores it to
// exactly these tiles.
func NewBag(tiles Tiles) *Bag {
	b := &Bag{initialTiles: make(Tiles, len(tiles))}
	copy(b.initialTiles, tiles)
	b.Refill()
	return b
}

// Refill empties the bag and puts every initial tile back.
func (b *Bag) Refill() {
	b.tiles = make([]Tile, len(b.initialTiles))
	copy(b.tiles, b.initialTiles)
}

// InitialTiles returns the tiles the bag was created with.
func (b *Bag) InitialTiles() Tiles {
	ret := make(Tiles, len(b.initialTiles))
	copy(ret, b.initialTiles)
	return ret
}

// DrawRandom removes one tile at random.
func (b *Bag) DrawRandom() (Tile, error) {
	if b.IsEmpty() {
		return Tile{}, ErrBagEmpty
	}
	return b.removeAt(frand.Intn(b.Len())), nil
}

// DrawRandomN draws at most n tiles. It can draw fewer if there are fewer
// than n tiles in the bag, and even draw no tiles at all :o
func (b *Bag) DrawRandomN(n int) Tiles {
	drawn := make(Tiles, 0, n)
	for len(drawn) < n && !b.IsEmpty() {
		t, _ := b.DrawRandom()
		drawn = append(drawn, t)
	}
	return drawn
}

// Shuffle randomizes the order of the tiles in the bag.
func (b *Bag) Shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Exchange puts the given tiles back and draws the same number of new ones.
// The bag must hold at least as many tiles as are exchanged.
func (b *Bag) Exchange(tiles Tiles) (Tiles, error) {
	if len(tiles) > b.Len() {
		return nil, fmt.Errorf("tried to exchange %v tiles, tile bag has %v",
			len(tiles), b.Len())
	}
	drawn := b.DrawRandomN(len(tiles))
	b.PutBack(tiles...)
	return drawn, nil
}
