package alphabet

import (
	"fmt"
	"unicode"

	"github.com/samber/lo"
)

// TileSource is anything tiles can be picked from and put back into.
type TileSource interface {
	Pick(r rune) (Tile, error)
	PutBack(tiles ...Tile)
}

// TileCollection is an ordered multiset of tiles. Order only matters for
// deterministic iteration and for which copy of a letter gets picked.
type TileCollection struct {
	tiles []Tile
}

// Add appends tiles to the collection.
func (c *TileCollection) Add(tiles ...Tile) {
	c.tiles = append(c.tiles, tiles...)
}

// PutBack returns previously picked tiles. Designated blanks go back as
// plain blanks.
func (c *TileCollection) PutBack(tiles ...Tile) {
	for _, t := range tiles {
		c.tiles = append(c.tiles, t.Undesignated())
	}
}

func (c *TileCollection) Len() int      { return len(c.tiles) }
func (c *TileCollection) IsEmpty() bool { return len(c.tiles) == 0 }

// Tiles returns a copy of the tiles in the collection.
func (c *TileCollection) Tiles() Tiles {
	ret := make(Tiles, len(c.tiles))
	copy(ret, c.tiles)
	return ret
}

func (c *TileCollection) Clear() {
	c.tiles = c.tiles[:0]
}

// DrawAll empties the collection and returns everything that was in it.
func (c *TileCollection) DrawAll() Tiles {
	ret := c.Tiles()
	c.tiles = nil
	return ret
}

func (c *TileCollection) indexOf(pred func(Tile) bool) int {
	_, idx, ok := lo.FindIndexOf(c.tiles, pred)
	if !ok {
		return -1
	}
	return idx
}

func (c *TileCollection) removeAt(idx int) Tile {
	t := c.tiles[idx]
	c.tiles = append(c.tiles[:idx], c.tiles[idx+1:]...)
	return t
}

// Pick removes and returns a tile for the given rune. '?' or a space picks a
// blank, a lowercase letter picks a blank and designates it as that letter,
// and an uppercase letter picks the first tile with that letter.
func (c *TileCollection) Pick(r rune) (Tile, error) {
	l, err := LetterFromRune(r)
	if err != nil {
		return Tile{}, err
	}
	if l.IsBlank() {
		idx := c.indexOf(Tile.IsBlank)
		if idx == -1 {
			return Tile{}, fmt.Errorf("%w: no more blanks", ErrTileUnavailable)
		}
		t := c.removeAt(idx)
		if l.IsDesignated() {
			t = t.As(l)
		}
		return t, nil
	}
	idx := c.indexOf(func(t Tile) bool { return t.letter == l })
	if idx == -1 {
		return Tile{}, fmt.Errorf("%w: no more %c", ErrTileUnavailable, r)
	}
	return c.removeAt(idx), nil
}

// PickAll picks every letter in the string, or nothing at all.
func (c *TileCollection) PickAll(letters string) (Tiles, error) {
	return PickAll(c, letters)
}

// PickAll picks every letter in the string from src. If any letter is
// missing, the tiles picked so far are put back and the error is returned.
func PickAll(src TileSource, letters string) (Tiles, error) {
	picked := make(Tiles, 0, len(letters))
	for _, r := range letters {
		t, err := src.Pick(r)
		if err != nil {
			src.PutBack(picked...)
			return nil, err
		}
		picked = append(picked, t)
	}
	return picked, nil
}

// Remove removes one tile equal to t. Any blank tile matches a blank.
func (c *TileCollection) Remove(t Tile) error {
	var idx int
	if t.IsBlank() {
		idx = c.indexOf(Tile.IsBlank)
	} else {
		idx = c.indexOf(func(o Tile) bool { return o == t })
	}
	if idx == -1 {
		return fmt.Errorf("%w: %v", ErrTileUnavailable, t)
	}
	c.removeAt(idx)
	return nil
}

// RemoveAll removes each of the tiles, or none of them if one is missing.
func (c *TileCollection) RemoveAll(tiles Tiles) error {
	for i, t := range tiles {
		if err := c.Remove(t); err != nil {
			c.PutBack(tiles[:i]...)
			return err
		}
	}
	return nil
}

// LetterCount counts the tiles showing the given rune; '?' counts blanks.
func (c *TileCollection) LetterCount(r rune) int {
	if r == BlankRune {
		return lo.CountBy(c.tiles, Tile.IsBlank)
	}
	r = unicode.ToUpper(r)
	return lo.CountBy(c.tiles, func(t Tile) bool {
		return !t.IsBlank() && t.Rune() == r
	})
}

func (c *TileCollection) VowelCount() int {
	return lo.CountBy(c.tiles, func(t Tile) bool { return t.letter.IsVowel() })
}

func (c *TileCollection) ConsonantCount() int {
	return lo.CountBy(c.tiles, func(t Tile) bool { return t.letter.IsConsonant() })
}

func (c *TileCollection) String() string {
	return Tiles(c.tiles).String()
}
