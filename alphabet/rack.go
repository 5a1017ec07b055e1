package alphabet

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// RackSize is the number of tiles a rack holds.
const RackSize = 7

// Rack is a player's tiles. It is a TileCollection with a fixed capacity.
type Rack struct {
	TileCollection
}

// NewRack creates an empty rack.
func NewRack() *Rack {
	return &Rack{}
}

// RackFromString builds a rack from user text, taking point values from
// the distribution. '?' is a blank.
func RackFromString(rack string, ld *LetterDistribution) (*Rack, error) {
	r := NewRack()
	for _, rn := range rack {
		l, err := LetterFromRune(rn)
		if err != nil {
			return nil, err
		}
		if err := r.Add(ld.Tile(l)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add puts tiles on the rack, refusing to go past capacity.
func (r *Rack) Add(tiles ...Tile) error {
	if r.Len()+len(tiles) > RackSize {
		return fmt.Errorf("%w: cannot add %d tiles to %d", ErrRackFull, len(tiles), r.Len())
	}
	r.TileCollection.Add(tiles...)
	return nil
}

func (r *Rack) IsFull() bool {
	return r.Len() >= RackSize
}

// LetterCounts returns how many of each letter are on the rack. Blanks are
// counted at BlankIndex.
func (r *Rack) LetterCounts() [NumLetters + 1]int {
	var counts [NumLetters + 1]int
	for _, t := range r.tiles {
		if t.IsBlank() {
			counts[BlankIndex]++
		} else {
			counts[t.letter.Index()]++
		}
	}
	return counts
}

// TileSamples returns one representative tile per letter present on the
// rack, indexed by alphabet position.
func (r *Rack) TileSamples() [NumLetters]Tile {
	var samples [NumLetters]Tile
	for _, t := range r.tiles {
		if !t.IsBlank() {
			samples[t.letter.Index()] = t
		}
	}
	return samples
}

// Fill draws from the bag until the rack is full or the bag runs out. It
// returns the tiles drawn.
func (r *Rack) Fill(b *Bag) Tiles {
	drawn := b.DrawRandomN(RackSize - r.Len())
	r.TileCollection.Add(drawn...)
	log.Debug().Str("drawn", drawn.String()).Str("rack", r.String()).Msg("filled rack")
	return drawn
}

// Set replaces the rack with the given letters. The tiles currently on the
// rack go back to src first; if src cannot supply every letter the old
// rack is restored.
func (r *Rack) Set(letters string, src TileSource) error {
	if len([]rune(letters)) > RackSize {
		return fmt.Errorf("%w: %q has more than %d tiles", ErrRackFull, letters, RackSize)
	}
	old := r.DrawAll()
	src.PutBack(old...)
	picked, err := PickAll(src, letters)
	if err != nil {
		restored, rerr := PickAll(src, old.String())
		if rerr != nil {
			return fmt.Errorf("%w (and could not restore rack: %v)", err, rerr)
		}
		r.TileCollection.Add(restored...)
		return err
	}
	r.TileCollection.Add(picked...)
	return nil
}

// Copy returns a deep copy of the rack.
func (r *Rack) Copy() *Rack {
	n := NewRack()
	n.TileCollection.Add(r.tiles...)
	return n
}
