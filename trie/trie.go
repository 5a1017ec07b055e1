// Package trie implements the 26-ary prefix tree the move generator walks.
// A nil child means no word continues with that letter, so every step of
// the search can prune in constant time.
package trie

import (
	"unicode"

	"github.com/tilesmith/tilesmith/alphabet"
)

// Node is a node in the trie. The root represents the empty prefix.
type Node struct {
	children [alphabet.NumLetters]*Node
	word     bool
}

// New returns an empty root node.
func New() *Node {
	return &Node{}
}

// Add inserts a word. Letters are uppercased; the word is dropped if it
// contains anything outside A-Z.
func (n *Node) Add(word string) bool {
	idxs := make([]int, 0, len(word))
	for _, r := range word {
		r = unicode.ToUpper(r)
		if r < 'A' || r > 'Z' {
			return false
		}
		idxs = append(idxs, int(r-'A'))
	}
	if len(idxs) == 0 {
		return false
	}
	cur := n
	for _, idx := range idxs {
		if cur.children[idx] == nil {
			cur.children[idx] = &Node{}
		}
		cur = cur.children[idx]
	}
	cur.word = true
	return true
}

// IsWord is true if the prefix leading to this node is a complete word.
func (n *Node) IsWord() bool {
	return n != nil && n.word
}

// Child follows one letter. Designated blanks follow the letter they stand
// for. It returns nil when there is no such prefix; calling it on a nil node
// also returns nil, so lookups can be chained.
func (n *Node) Child(l alphabet.Letter) *Node {
	if n == nil {
		return nil
	}
	idx := l.Index()
	if idx < 0 || idx >= alphabet.NumLetters {
		return nil
	}
	return n.children[idx]
}

// ChildAt follows the letter at a 0-based alphabet position.
func (n *Node) ChildAt(idx int) *Node {
	if n == nil {
		return nil
	}
	return n.children[idx]
}

// ChildRune follows one rune, case-insensitively.
func (n *Node) ChildRune(r rune) *Node {
	r = unicode.ToUpper(r)
	if r < 'A' || r > 'Z' {
		return nil
	}
	return n.ChildAt(int(r - 'A'))
}

// ChildString follows every rune of a prefix.
func (n *Node) ChildString(prefix string) *Node {
	cur := n
	for _, r := range prefix {
		cur = cur.ChildRune(r)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ChildTiles follows the letters shown on a run of tiles.
func (n *Node) ChildTiles(tiles alphabet.Tiles) *Node {
	cur := n
	for _, t := range tiles {
		cur = cur.Child(t.Letter())
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Children returns the child array; missing letters are nil.
func (n *Node) Children() *[alphabet.NumLetters]*Node {
	return &n.children
}

// Contains reports whether word is in the trie rooted at n.
func (n *Node) Contains(word string) bool {
	return n.ChildString(word).IsWord()
}
