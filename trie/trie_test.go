package trie

import (
	"testing"

	"github.com/matryer/is"

	"github.com/tilesmith/tilesmith/alphabet"
)

func buildTrie(words ...string) *Node {
	root := New()
	for _, w := range words {
		root.Add(w)
	}
	return root
}

func TestAddAndContains(t *testing.T) {
	is := is.New(t)
	root := buildTrie("foo", "FOOD", "bar", "b4d", "")

	is.True(root.Contains("FOO"))
	is.True(root.Contains("food"))
	is.True(root.Contains("BAR"))
	is.True(!root.Contains("FO"))
	is.True(!root.Contains("BA"))
	is.True(!root.Contains("B4D"))
	is.True(!root.Contains(""))
	is.True(!root.Contains("FOODS"))
}

func TestChildPrunes(t *testing.T) {
	is := is.New(t)
	root := buildTrie("CAT")
	x, _ := alphabet.LetterFromRune('X')
	c, _ := alphabet.LetterFromRune('C')

	is.Equal(root.Child(x), nil)
	is.True(root.Child(c) != nil)
	// Chaining off a nil node stays nil.
	is.Equal(root.Child(x).Child(c), nil)
	is.True(!root.Child(x).IsWord())
	is.Equal(root.Child(alphabet.Blank), nil)
	is.Equal(root.ChildRune('1'), nil)
}

func TestChildTilesUsesDesignatedLetter(t *testing.T) {
	is := is.New(t)
	root := buildTrie("CAT")
	ld := alphabet.EnglishLetterDistribution()
	c, _ := alphabet.LetterFromRune('C')
	a, _ := alphabet.LetterFromRune('a')
	tt, _ := alphabet.LetterFromRune('T')

	tiles := alphabet.Tiles{ld.Tile(c), ld.Tile(a), ld.Tile(tt)}
	is.True(root.ChildTiles(tiles).IsWord())
	is.True(root.ChildTiles(tiles[:2]) == root.ChildString("CA"))
	is.True(!root.ChildTiles(tiles[:2]).IsWord())
}

func TestChildren(t *testing.T) {
	is := is.New(t)
	root := buildTrie("AB", "AD", "Z")
	kids := root.Children()
	n := 0
	for _, k := range kids {
		if k != nil {
			n++
		}
	}
	is.Equal(n, 2)
	is.True(kids[25].IsWord())
	is.Equal(len(root.ChildString("A").Children()), 26)
}
