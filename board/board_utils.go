package board

import (
	"fmt"
	"strings"

	"github.com/tilesmith/tilesmith/alphabet"
)

// ToDisplayText draws the board, with column numbers across the top and row
// letters down the side.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString("\n  ")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%3d", i+1)
	}
	sb.WriteString("\n   " + strings.Repeat("-", n*3+1) + "\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, " %c|", 'A'+i)
		for j := 0; j < n; j++ {
			sb.WriteString("  " + g.squares[i][j].DisplayString())
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("   " + strings.Repeat("-", n*3+1) + "\n")
	return sb.String()
}

// SetRow sets the row to the passed in letters, clearing whatever was
// there. Spaces are empty squares and lowercase letters are blanks. It
// returns the tiles placed.
func (g *GameBoard) SetRow(row int, letters string, ld *alphabet.LetterDistribution) (alphabet.Tiles, error) {
	for col := 0; col < g.Dim(); col++ {
		g.RemoveTile(row, col)
	}
	placed := alphabet.Tiles{}
	for col, r := range []rune(letters) {
		if r == ' ' {
			continue
		}
		if col >= g.Dim() {
			return nil, fmt.Errorf("%w: row %c is too long", ErrInvalidPlacement, 'A'+row)
		}
		l, err := alphabet.LetterFromRune(r)
		if err != nil {
			return nil, err
		}
		t := ld.Tile(l)
		g.PlaceTile(row, col, t)
		placed = append(placed, t)
	}
	return placed, nil
}

// Equals checks the boards for equality: same layout and same tiles.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() || g.tilesPlayed != g2.tilesPlayed {
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			s1, s2 := g.squares[row][col], g2.squares[row][col]
			if s1.bonus != s2.bonus || s1.filled != s2.filled || s1.tile != s2.tile {
				return false
			}
		}
	}
	return true
}
