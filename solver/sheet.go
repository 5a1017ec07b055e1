package solver

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one line of a score sheet: a word, where it was played, and
// what it scored. The score is filled in when the sheet is replayed.
type Entry struct {
	Word  string `yaml:"word"`
	Key   string `yaml:"key"`
	Score int    `yaml:"score"`
}

// IsComplete is true when the entry names both a word and a reference.
func (e *Entry) IsComplete() bool {
	return e.Word != "" && e.Key != ""
}

// Sheet is the list of moves played so far.
type Sheet struct {
	Lexicon string   `yaml:"lexicon,omitempty"`
	Entries []*Entry `yaml:"entries"`
}

func NewSheet() *Sheet {
	return &Sheet{}
}

func (s *Sheet) Len() int {
	return len(s.Entries)
}

func (s *Sheet) Add(e *Entry) {
	s.Entries = append(s.Entries, e)
}

// Insert puts an empty entry at idx.
func (s *Sheet) Insert(idx int) error {
	if idx < 0 || idx > len(s.Entries) {
		return fmt.Errorf("no entry %d in a sheet of %d", idx+1, len(s.Entries))
	}
	s.Entries = append(s.Entries[:idx], append([]*Entry{{}}, s.Entries[idx:]...)...)
	return nil
}

func (s *Sheet) Remove(idx int) error {
	if idx < 0 || idx >= len(s.Entries) {
		return fmt.Errorf("no entry %d in a sheet of %d", idx+1, len(s.Entries))
	}
	s.Entries = append(s.Entries[:idx], s.Entries[idx+1:]...)
	return nil
}

func (s *Sheet) Clear() {
	s.Entries = nil
}

// Total is the sum of the scores up to and including entry idx.
func (s *Sheet) Total(idx int) int {
	total := 0
	for i := 0; i <= idx && i < len(s.Entries); i++ {
		total += s.Entries[i].Score
	}
	return total
}

// String renders the sheet as a table with a running total.
func (s *Sheet) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s %-15s %-4s %5s %6s\n", "#", "Word", "Ref", "Score", "Total")
	for i, e := range s.Entries {
		fmt.Fprintf(&sb, "%-4d %-15s %-4s %5d %6d\n", i+1, e.Word, e.Key, e.Score, s.Total(i))
	}
	return sb.String()
}

// Save writes the sheet as YAML.
func (s *Sheet) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// LoadSheet reads a sheet written by Save.
func LoadSheet(r io.Reader) (*Sheet, error) {
	s := &Sheet{}
	if err := yaml.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	for i, e := range s.Entries {
		if e == nil {
			s.Entries[i] = &Entry{}
		}
	}
	return s, nil
}
