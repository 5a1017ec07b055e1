package solver

import (
	"fmt"
	"sort"
	"strings"
)

func splitSubN(s string, n int) []string {
	var subs []string
	runes := []rune(s)
	for len(runes) > n {
		subs = append(subs, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		subs = append(subs, string(runes))
	}
	return subs
}

func addText(lines []string, row int, hpad int, text string) int {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		if row >= len(lines) {
			break
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
	return row
}

// ToDisplayText draws the board with the rack, the bag and the score next
// to it.
func (s *Solver) ToDisplayText() string {
	bts := strings.Split(s.board.ToDisplayText(), "\n")
	hpadding := 3
	row := 3

	row = addText(bts, row, hpadding, fmt.Sprintf("Lexicon: %s", s.dictionary.Name()))
	row = addText(bts, row, hpadding, fmt.Sprintf("Rack: %s", s.rack))
	row = addText(bts, row, hpadding, fmt.Sprintf("Moves: %d  Score: %d",
		s.sheet.Len(), s.sheet.Total(s.sheet.Len()-1)))
	row++

	inbag := []rune(s.bag.String())
	sort.Slice(inbag, func(i, j int) bool { return inbag[i] < inbag[j] })
	row = addText(bts, row, hpadding, fmt.Sprintf("Bag: (%d)", len(inbag)))
	addText(bts, row, hpadding, string(inbag))

	return strings.Join(bts, "\n")
}
