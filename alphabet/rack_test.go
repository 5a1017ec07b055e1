package alphabet

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestRackFromString(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	rack, err := RackFromString("AENPPS?", ld)
	is.NoErr(err)

	var expected [NumLetters + 1]int
	expected[0] = 1
	expected[4] = 1
	expected[13] = 1
	expected[15] = 2
	expected[18] = 1
	expected[BlankIndex] = 1

	assert.Equal(t, expected, rack.LetterCounts())
	is.True(rack.IsFull())

	samples := rack.TileSamples()
	is.Equal(samples[15].String(), "P")
	is.Equal(samples[15].Value(), 3)
	is.Equal(samples[1], Tile{})
}

func TestRackCapacity(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	_, err := RackFromString("ABCDEFGH", ld)
	is.True(errors.Is(err, ErrRackFull))

	rack, err := RackFromString("ABCDEF", ld)
	is.NoErr(err)
	is.NoErr(rack.Add(BlankTile))
	is.True(errors.Is(rack.Add(BlankTile), ErrRackFull))
}

func TestRackFill(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	rack := NewRack()

	drawn := rack.Fill(bag)
	is.Equal(len(drawn), RackSize)
	is.Equal(rack.Len(), RackSize)
	is.Equal(bag.Len(), 93)

	// A full rack draws nothing.
	is.Equal(len(rack.Fill(bag)), 0)

	small := NewBag(ld.Tiles()[:3])
	rack = NewRack()
	rack.Fill(small)
	is.Equal(rack.Len(), 3)
	is.True(small.IsEmpty())
}

func TestRackSet(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	bag := ld.MakeBag()
	rack := NewRack()

	is.NoErr(rack.Set("QUIZ?", bag))
	is.Equal(rack.String(), "QUIZ?")
	is.Equal(bag.Len(), 95)

	// Only one Q in the bag: the old rack has to come back.
	err := rack.Set("QQ", bag)
	is.True(errors.Is(err, ErrTileUnavailable))
	is.Equal(rack.String(), "QUIZ?")
	is.Equal(bag.Len(), 95)

	is.NoErr(rack.Set("RETAINS", bag))
	is.Equal(bag.Len(), 93)
	is.Equal(bag.LetterCount('Q'), 1)
}

func TestRackCopy(t *testing.T) {
	is := is.New(t)
	ld := EnglishLetterDistribution()
	rack, _ := RackFromString("ABC", ld)
	cp := rack.Copy()
	_, err := cp.Pick('A')
	is.NoErr(err)
	is.Equal(rack.String(), "ABC")
	is.Equal(cp.String(), "BC")
}
