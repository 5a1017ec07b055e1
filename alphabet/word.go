package alphabet

import (
	"sort"
	"strings"
)

// Word is a sequence of letters, as laid out on the board.
type Word []Letter

// ToWord converts user text to letters. Uppercase runes are real letters,
// lowercase runes are designated blanks.
func ToWord(s string) (Word, error) {
	w := make(Word, 0, len(s))
	for _, r := range s {
		l, err := LetterFromRune(r)
		if err != nil {
			return nil, err
		}
		w = append(w, l)
	}
	return w, nil
}

func (w Word) String() string {
	var sb strings.Builder
	for _, l := range w {
		sb.WriteRune(l.Rune())
	}
	return sb.String()
}

// Alphagram returns the letters in alphabetical order, with blanks last.
func (w Word) Alphagram() string {
	letters := make(Word, len(w))
	copy(letters, w)
	sort.SliceStable(letters, func(i, j int) bool {
		bi, bj := letters[i] == Blank, letters[j] == Blank
		if bi != bj {
			return bj
		}
		return letters[i].Index() < letters[j].Index()
	})
	return letters.String()
}
