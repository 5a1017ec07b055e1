package alphabet

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestLetterFromRune(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		r          rune
		blank      bool
		designated bool
		index      int
		back       rune
	}
	cases := []testdata{
		{'A', false, false, 0, 'A'},
		{'Z', false, false, 25, 'Z'},
		{'q', true, true, 16, 'q'},
		{'?', true, false, -1, '?'},
		{' ', true, false, -1, '?'},
	}
	for _, tc := range cases {
		l, err := LetterFromRune(tc.r)
		is.NoErr(err)
		is.Equal(l.IsBlank(), tc.blank)
		is.Equal(l.IsDesignated(), tc.designated)
		is.Equal(l.Index(), tc.index)
		is.Equal(l.Rune(), tc.back)
		is.True(l.Valid())
	}
}

func TestLetterFromRuneInvalid(t *testing.T) {
	is := is.New(t)
	for _, r := range []rune{'1', 'É', '-'} {
		_, err := LetterFromRune(r)
		is.True(errors.Is(err, ErrInvalidLetter))
	}
}

func TestBlankAs(t *testing.T) {
	is := is.New(t)
	e, _ := LetterFromRune('E')
	b := BlankAs(e)
	is.True(b.IsBlank())
	is.True(b.IsDesignated())
	is.Equal(b.Unblank(), e)
	is.Equal(b.Index(), e.Index())
	is.Equal(b.String(), "e")
	is.Equal(BlankAs(b), b)
	is.Equal(Blank.Unblank(), Blank)
}

func TestVowelsAndConsonants(t *testing.T) {
	is := is.New(t)
	w, err := ToWord("AEIOUYBZ?e")
	is.NoErr(err)
	vowels, consonants := 0, 0
	for _, l := range w {
		if l.IsVowel() {
			vowels++
		}
		if l.IsConsonant() {
			consonants++
		}
	}
	is.Equal(vowels, 6)
	is.Equal(consonants, 2)
}

func TestAlphagram(t *testing.T) {
	is := is.New(t)
	w, err := ToWord("R?ETINA")
	is.NoErr(err)
	is.Equal(w.Alphagram(), "AEINRT?")
	is.Equal(w.String(), "R?ETINA")
}
