package alphabet

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LetterEntry is one line of a distribution: how many tiles of a letter are
// in the bag and what each is worth.
type LetterEntry struct {
	Letter string `yaml:"letter"`
	Count  int    `yaml:"count"`
	Value  int    `yaml:"value"`
}

// LetterDistribution encodes the tile distribution for the relevant game.
type LetterDistribution struct {
	Name    string        `yaml:"name"`
	Blanks  int           `yaml:"blanks"`
	Letters []LetterEntry `yaml:"letters"`

	values [NumLetters]int
	counts [NumLetters]int
}

func newDistribution(name string, blanks int, entries []LetterEntry) *LetterDistribution {
	ld := &LetterDistribution{Name: name, Blanks: blanks, Letters: entries}
	if err := ld.init(); err != nil {
		panic(err)
	}
	return ld
}

// EnglishLetterDistribution is the standard 100-tile English set.
func EnglishLetterDistribution() *LetterDistribution {
	return newDistribution("english", 2, []LetterEntry{
		{"E", 12, 1}, {"A", 9, 1}, {"I", 9, 1}, {"O", 8, 1}, {"N", 6, 1},
		{"R", 6, 1}, {"T", 6, 1}, {"L", 4, 1}, {"S", 4, 1}, {"U", 4, 1},
		{"D", 4, 2}, {"G", 3, 2},
		{"B", 2, 3}, {"C", 2, 3}, {"M", 2, 3}, {"P", 2, 3},
		{"F", 2, 4}, {"H", 2, 4}, {"V", 2, 4}, {"W", 2, 4}, {"Y", 2, 4},
		{"K", 1, 5},
		{"J", 1, 8}, {"X", 1, 8},
		{"Q", 1, 10}, {"Z", 1, 10},
	})
}

// FrenchLetterDistribution is the standard 102-tile French set.
func FrenchLetterDistribution() *LetterDistribution {
	return newDistribution("french", 2, []LetterEntry{
		{"E", 15, 1}, {"A", 9, 1}, {"I", 8, 1}, {"N", 6, 1}, {"O", 6, 1},
		{"R", 6, 1}, {"S", 6, 1}, {"T", 6, 1}, {"U", 6, 1}, {"L", 5, 1},
		{"D", 3, 2}, {"M", 3, 2}, {"G", 2, 2},
		{"B", 2, 3}, {"C", 2, 3}, {"P", 2, 3},
		{"F", 2, 4}, {"H", 2, 4}, {"V", 2, 4},
		{"J", 1, 8}, {"Q", 1, 8},
		{"K", 1, 10}, {"W", 1, 10}, {"X", 1, 10}, {"Y", 1, 10}, {"Z", 1, 10},
	})
}

// ReadLetterDistribution parses a YAML distribution such as:
//
//	name: english
//	blanks: 2
//	letters:
//	  - {letter: E, count: 12, value: 1}
func ReadLetterDistribution(r io.Reader) (*LetterDistribution, error) {
	ld := &LetterDistribution{}
	if err := yaml.NewDecoder(r).Decode(ld); err != nil {
		return nil, fmt.Errorf("decoding letter distribution: %w", err)
	}
	if err := ld.init(); err != nil {
		return nil, err
	}
	return ld, nil
}

func (ld *LetterDistribution) init() error {
	if ld.Blanks < 0 {
		return errors.New("negative blank count")
	}
	for _, e := range ld.Letters {
		rs := []rune(e.Letter)
		if len(rs) != 1 {
			return fmt.Errorf("%w: %q", ErrInvalidLetter, e.Letter)
		}
		l, err := LetterFromRune(rs[0])
		if err != nil {
			return err
		}
		if l.IsBlank() {
			return fmt.Errorf("%w: blanks are set with the blanks key", ErrInvalidLetter)
		}
		if e.Value <= 0 || e.Count < 0 {
			return fmt.Errorf("letter %v needs a positive value and a count", e.Letter)
		}
		ld.values[l.Index()] = e.Value
		ld.counts[l.Index()] = e.Count
	}
	return nil
}

// Value is the score of a letter; blanks are worth nothing.
func (ld *LetterDistribution) Value(l Letter) int {
	if l.IsBlank() {
		return 0
	}
	return ld.values[l.Index()]
}

// Tile makes a tile for the letter with this distribution's value.
func (ld *LetterDistribution) Tile(l Letter) Tile {
	return NewTile(l, ld.Value(l))
}

// NumTiles is the total number of tiles, blanks included.
func (ld *LetterDistribution) NumTiles() int {
	n := ld.Blanks
	for _, c := range ld.counts {
		n += c
	}
	return n
}

// Tiles lists every tile of the distribution: blanks first, then letters in
// the order they were declared.
func (ld *LetterDistribution) Tiles() Tiles {
	tiles := make(Tiles, 0, ld.NumTiles())
	for i := 0; i < ld.Blanks; i++ {
		tiles = append(tiles, BlankTile)
	}
	for _, e := range ld.Letters {
		l, _ := LetterFromRune([]rune(e.Letter)[0])
		for i := 0; i < e.Count; i++ {
			tiles = append(tiles, NewTile(l, e.Value))
		}
	}
	return tiles
}

// MakeBag returns a full bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	return NewBag(ld.Tiles())
}
