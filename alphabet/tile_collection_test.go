package alphabet

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func collectionFromString(t *testing.T, s string) *TileCollection {
	ld := EnglishLetterDistribution()
	c := &TileCollection{}
	w, err := ToWord(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, l := range w {
		c.Add(ld.Tile(l))
	}
	return c
}

func TestPick(t *testing.T) {
	is := is.New(t)
	c := collectionFromString(t, "AB?CA")

	tile, err := c.Pick('A')
	is.NoErr(err)
	is.Equal(tile.Value(), 1)
	is.Equal(c.String(), "B?CA")

	tile, err = c.Pick('x')
	is.NoErr(err)
	is.True(tile.IsBlank())
	is.Equal(tile.Value(), 0)
	is.Equal(tile.String(), "x")
	is.Equal(c.String(), "BCA")

	_, err = c.Pick('?')
	is.True(errors.Is(err, ErrTileUnavailable))
	_, err = c.Pick('Z')
	is.True(errors.Is(err, ErrTileUnavailable))
	is.Equal(c.Len(), 3)
}

func TestPickAllRestoresOnFailure(t *testing.T) {
	is := is.New(t)
	c := collectionFromString(t, "FOO?")

	_, err := c.PickAll("FOOD")
	is.True(errors.Is(err, ErrTileUnavailable))
	is.Equal(c.Len(), 4)
	is.Equal(c.LetterCount('O'), 2)
	is.Equal(c.LetterCount('F'), 1)
	is.Equal(c.LetterCount('?'), 1)

	tiles, err := c.PickAll("FOOd")
	is.NoErr(err)
	is.Equal(tiles.String(), "FOOd")
	is.Equal(tiles.Score(), 6)
	is.True(c.IsEmpty())
}

func TestPutBackUndesignatesBlanks(t *testing.T) {
	is := is.New(t)
	c := collectionFromString(t, "?")
	tile, err := c.Pick('s')
	is.NoErr(err)
	c.PutBack(tile)
	is.Equal(c.String(), "?")
}

func TestRemove(t *testing.T) {
	is := is.New(t)
	c := collectionFromString(t, "CAT?")
	ld := EnglishLetterDistribution()
	e, _ := LetterFromRune('e')
	a, _ := LetterFromRune('A')

	is.NoErr(c.Remove(BlankTile.As(e)))
	is.NoErr(c.Remove(ld.Tile(a)))
	is.Equal(c.String(), "CT")
	is.True(errors.Is(c.Remove(ld.Tile(a)), ErrTileUnavailable))
}

func TestCounts(t *testing.T) {
	c := collectionFromString(t, "AEBCD??Y")
	assert.Equal(t, 3, c.VowelCount())
	assert.Equal(t, 3, c.ConsonantCount())
	assert.Equal(t, 2, c.LetterCount('?'))
	assert.Equal(t, 1, c.LetterCount('b'))

	drawn := c.DrawAll()
	assert.Equal(t, "AEBCD??Y", drawn.String())
	assert.True(t, c.IsEmpty())
}

func TestRemoveAllIsAllOrNothing(t *testing.T) {
	is := is.New(t)
	c := collectionFromString(t, "AB?")
	ld := EnglishLetterDistribution()

	err := c.RemoveAll(Tiles{ld.Tile(FromIndex(0)), BlankTile.As(FromIndex(4)), ld.Tile(FromIndex(25))})
	is.True(errors.Is(err, ErrTileUnavailable))
	is.Equal(c.Len(), 3)
	is.Equal(c.LetterCount('?'), 1)

	is.NoErr(c.RemoveAll(Tiles{ld.Tile(FromIndex(1)), BlankTile.As(FromIndex(4))}))
	is.Equal(c.String(), "A")
}
