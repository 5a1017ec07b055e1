package movegen

import (
	"github.com/tilesmith/tilesmith/move"
)

// PlayRecorderFunc decides what happens to a move the search just found.
// It gets the moves recorded so far and returns the new list.
type PlayRecorderFunc func(plays []*move.Move, m *move.Move) []*move.Move

// AllPlaysRecorder keeps every move.
func AllPlaysRecorder(plays []*move.Move, m *move.Move) []*move.Move {
	return append(plays, m)
}

// TopPlayOnlyRecorder only keeps the highest scoring move. Among moves with
// the same score the first one found wins.
func TopPlayOnlyRecorder(plays []*move.Move, m *move.Move) []*move.Move {
	if len(plays) == 0 {
		return append(plays, m)
	}
	if m.Score() > plays[0].Score() {
		plays[0] = m
	}
	return plays[:1]
}

// NullPlayRecorder keeps nothing. It is handy for timing the search itself.
func NullPlayRecorder(plays []*move.Move, m *move.Move) []*move.Move {
	return plays
}
