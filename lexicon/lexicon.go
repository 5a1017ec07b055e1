package lexicon

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyLexicon = errors.New("lexicon has no words")

// Lexicon is anything that can tell whether a word is valid.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll is a lexicon that accepts every word. The solver checks words
// with it when a sheet's lexicon is not available.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}

// Encoding is the character encoding of a word list file.
type Encoding int

const (
	UTF8 Encoding = iota
	Latin1
)

// ParseEncoding reads an encoding name as it appears in the config.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "latin-1", "latin1", "iso-8859-1":
		return Latin1, nil
	}
	return UTF8, fmt.Errorf("unknown lexicon encoding %q", s)
}

func (e Encoding) String() string {
	if e == Latin1 {
		return "latin-1"
	}
	return "utf-8"
}
