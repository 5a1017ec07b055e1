package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tilesmith/tilesmith/trie"
)

var ligatures = strings.NewReplacer("Œ", "OE", "œ", "OE", "Æ", "AE", "æ", "AE")

// Dictionary owns the trie built from a word list. It is never modified
// after it is built, so any number of generators can share one.
type Dictionary struct {
	name     string
	root     *trie.Node
	words    int
	skipped  int
	checksum uint64
}

// Normalize turns a raw word list entry into the A-Z form stored in the
// trie: accents are stripped, ligatures expanded, and letters uppercased.
func Normalize(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(word))
	if err != nil {
		folded = word
	}
	return strings.ToUpper(ligatures.Replace(folded))
}

// FromWords builds a dictionary from an in-memory word list.
func FromWords(name string, words []string) (*Dictionary, error) {
	return Load(name, strings.NewReader(strings.Join(words, "\n")), UTF8)
}

// Load reads a newline-delimited word list. Blank lines and lines starting
// with '#' are ignored, and so are words with letters outside A-Z after
// normalization.
func Load(name string, r io.Reader, enc Encoding) (*Dictionary, error) {
	if enc == Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	d := &Dictionary{name: name, root: trie.New()}
	digest := xxhash.New()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Some word lists carry definitions after the word.
		if fields := strings.Fields(line); len(fields) > 1 {
			line = fields[0]
		}
		word := Normalize(line)
		if !d.root.Add(word) {
			d.skipped++
			continue
		}
		d.words++
		digest.Write([]byte(word))
		digest.Write([]byte{'\n'})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon %v: %w", name, err)
	}
	if d.words == 0 {
		return nil, fmt.Errorf("loading lexicon %v: %w", name, ErrEmptyLexicon)
	}
	d.checksum = digest.Sum64()
	log.Debug().Str("lexicon", name).Int("words", d.words).Int("skipped", d.skipped).
		Uint64("checksum", d.checksum).Msg("loaded lexicon")
	return d, nil
}

// LoadFile loads a word list from disk.
func LoadFile(name, path string, enc Encoding) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading lexicon %v: %w", name, err)
	}
	defer f.Close()
	return Load(name, f, enc)
}

func (d *Dictionary) Name() string { return d.name }

// Root is the root of the trie.
func (d *Dictionary) Root() *trie.Node { return d.root }

// WordCount is the number of words accepted into the trie.
func (d *Dictionary) WordCount() int { return d.words }

// Skipped is the number of entries rejected because they were not made of
// A-Z letters.
func (d *Dictionary) Skipped() int { return d.skipped }

// Checksum fingerprints the normalized word list, in file order.
func (d *Dictionary) Checksum() uint64 { return d.checksum }

// HasWord reports whether the word is in the dictionary. Case and accents
// are ignored.
func (d *Dictionary) HasWord(word string) bool {
	return d.root.Contains(Normalize(word))
}
