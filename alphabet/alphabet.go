package alphabet

import (
	"errors"
	"fmt"
	"unicode"
)

const (
	// NumLetters is the size of the playing alphabet, A through Z.
	NumLetters = 26
	// BlankIndex is the slot used for blanks in per-letter count arrays.
	BlankIndex = NumLetters

	// BlankRune is how an undesignated blank is written in user input
	// and display text.
	BlankRune = '?'
)

var (
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrTileUnavailable = errors.New("tile unavailable")
	ErrRackFull        = errors.New("rack is full")
	ErrBagEmpty        = errors.New("bag is empty")
)

// Letter is the face of a tile. It is one of three things:
//
//   - a real letter, A through Z (values 1 to 26)
//   - Blank, a wildcard that has not been assigned a letter (value 0)
//   - a blank designated as a letter, which is the letter with BlankMask set
//
// Keeping both "this is a wildcard" and "this wildcard means X" in one byte
// lets the generator walk the trie with the designated letter while scoring
// it as a blank.
type Letter uint8

const (
	Blank     Letter = 0
	BlankMask Letter = 0x80
)

// LetterFromRune converts a user-visible rune to a Letter. Uppercase letters
// are real tiles, lowercase letters are designated blanks, and '?' or a space
// is an undesignated blank.
func LetterFromRune(r rune) (Letter, error) {
	switch {
	case r == BlankRune || r == ' ':
		return Blank, nil
	case r >= 'A' && r <= 'Z':
		return Letter(r-'A') + 1, nil
	case r >= 'a' && r <= 'z':
		return (Letter(r-'a') + 1) | BlankMask, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
}

// FromIndex returns the real letter for a 0-based alphabet position.
func FromIndex(idx int) Letter {
	return Letter(idx + 1)
}

// BlankAs designates a blank as the given letter.
func BlankAs(l Letter) Letter {
	return l.Unblank() | BlankMask
}

// IsBlank is true for both undesignated and designated blanks.
func (l Letter) IsBlank() bool {
	return l == Blank || l&BlankMask != 0
}

// IsDesignated is true if this is a blank that stands for a letter.
func (l Letter) IsDesignated() bool {
	return l&BlankMask != 0
}

// Unblank returns the real letter this letter stands for. An undesignated
// blank stays Blank.
func (l Letter) Unblank() Letter {
	return l &^ BlankMask
}

// Index returns the 0-based alphabet position of the letter (or of the
// letter a designated blank stands for). It returns -1 for Blank.
func (l Letter) Index() int {
	if l == Blank {
		return -1
	}
	return int(l.Unblank()) - 1
}

// Valid is false for bytes that are not one of the three letter kinds.
func (l Letter) Valid() bool {
	u := l.Unblank()
	if l == Blank {
		return true
	}
	return u >= 1 && u <= NumLetters
}

// Rune returns the user-visible rune: uppercase for real letters, lowercase
// for designated blanks, and '?' for an undesignated blank.
func (l Letter) Rune() rune {
	if l == Blank {
		return BlankRune
	}
	r := rune('A' + l.Index())
	if l.IsDesignated() {
		return unicode.ToLower(r)
	}
	return r
}

func (l Letter) String() string {
	return string(l.Rune())
}
