package solver

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestSheetEditing(t *testing.T) {
	is := is.New(t)
	s := NewSheet()
	s.Add(&Entry{Word: "FOOD", Key: "H8", Score: 16})
	s.Add(&Entry{Word: "FADE", Key: "8H", Score: 20})
	is.Equal(s.Total(1), 36)

	is.NoErr(s.Insert(1))
	is.Equal(s.Len(), 3)
	is.True(!s.Entries[1].IsComplete())
	is.Equal(s.Total(2), 36)

	is.NoErr(s.Remove(0))
	is.Equal(s.Entries[1].Word, "FADE")
	is.True(s.Remove(5) != nil)
	is.True(s.Insert(-1) != nil)

	s.Clear()
	is.Equal(s.Len(), 0)
	is.Equal(s.Total(-1), 0)
}

func TestLoadSheetYAML(t *testing.T) {
	is := is.New(t)
	sheet, err := LoadSheet(strings.NewReader(`
lexicon: CSW21
entries:
  - {word: FOOD, key: H8, score: 16}
  - {word: FADE, key: 8H}
  -
`))
	is.NoErr(err)
	is.Equal(sheet.Lexicon, "CSW21")
	is.Equal(sheet.Len(), 3)
	is.Equal(sheet.Entries[1].Score, 0)
	is.True(!sheet.Entries[2].IsComplete())
	is.True(strings.Contains(sheet.String(), "FADE"))

	_, err = LoadSheet(strings.NewReader("entries: [[["))
	is.True(err != nil)
}
