package alphabet

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestBag(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	if bag.Len() != ld.NumTiles() {
		t.Error("Tile bag and letter distribution do not match.")
	}
	tileMap := make(map[rune]int)
	numTiles := 0
	for range 100 {
		tile, err := bag.DrawRandom()
		is.NoErr(err)
		numTiles++
		tileMap[tile.Rune()]++
	}
	_, err := bag.DrawRandom()
	is.True(errors.Is(err, ErrBagEmpty))
	is.Equal(numTiles, 100)
	is.Equal(tileMap['E'], 12)
	is.Equal(tileMap['?'], 2)
	is.Equal(tileMap['Z'], 1)
}

func TestDrawAtMost(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()

	is.Equal(len(bag.DrawRandomN(98)), 98)
	is.Equal(bag.Len(), 2)
	// Only 2 tiles left, cannot draw 5.
	is.Equal(len(bag.DrawRandomN(5)), 2)
	is.Equal(bag.Len(), 0)

	bag.Refill()
	is.Equal(bag.Len(), 100)
}

func TestExchange(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	picked, err := bag.PickAll("QQ")
	is.True(err != nil)
	is.True(picked == nil)

	picked, err = bag.PickAll("QZJX")
	is.NoErr(err)
	is.Equal(bag.Len(), 96)

	drawn, err := bag.Exchange(picked)
	is.NoErr(err)
	is.Equal(len(drawn), 4)
	is.Equal(bag.Len(), 96)
	is.Equal(bag.LetterCount('Q')+bag.LetterCount('Z')+bag.LetterCount('J')+bag.LetterCount('X')+
		strings.Count(drawn.String(), "Q")+strings.Count(drawn.String(), "Z")+
		strings.Count(drawn.String(), "J")+strings.Count(drawn.String(), "X"), 4)
}

func TestShuffleKeepsTiles(t *testing.T) {
	is := is.New(t)
	ld := FrenchLetterDistribution()
	bag := ld.MakeBag()
	before := bag.Tiles().Word().Alphagram()
	bag.Shuffle()
	is.Equal(bag.Tiles().Word().Alphagram(), before)
	is.Equal(bag.Len(), 102)
}
