// Package moveset holds the ordered list of move names a session is played with.
package moveset

import (
	"errors"
	"fmt"
	"strings"
)

// MinMoves is the smallest playable set
const MinMoves = 3

// ErrInvalidMoveSet is returned when the supplied names cannot form a playable set
var ErrInvalidMoveSet = errors.New("invalid move set")

// MoveSet is an ordered, duplicate-free list of move names. The order defines
// circular adjacency, so it is significant. A MoveSet is immutable once built.
type MoveSet struct {
	names []string
	index map[string]int
}

// New validates names and returns a MoveSet. The count must be odd and at least
// MinMoves, and names must be pairwise distinct (case-sensitive).
func New(names []string) (MoveSet, error) {
	if len(names) < MinMoves {
		return MoveSet{}, fmt.Errorf("%w: need at least %d moves, got %d", ErrInvalidMoveSet, MinMoves, len(names))
	}
	if len(names)%2 == 0 {
		return MoveSet{}, fmt.Errorf("%w: number of moves must be odd, got %d", ErrInvalidMoveSet, len(names))
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		if prev, ok := index[name]; ok {
			return MoveSet{}, fmt.Errorf("%w: duplicate move %q at positions %d and %d", ErrInvalidMoveSet, name, prev+1, i+1)
		}
		index[name] = i
	}

	return MoveSet{
		names: append([]string(nil), names...),
		index: index,
	}, nil
}

// MustNew is like New but panics on error. Intended for tests and fixed sets.
func MustNew(names ...string) MoveSet {
	ms, err := New(names)
	if err != nil {
		panic(err)
	}
	return ms
}

// Len returns the number of moves
func (m MoveSet) Len() int { return len(m.names) }

// Name returns the move at position i
func (m MoveSet) Name(i int) string { return m.names[i] }

// Index returns the position of name in the set
func (m MoveSet) Index(name string) (int, bool) {
	i, ok := m.index[name]
	return i, ok
}

// Names returns a copy of the move names in order
func (m MoveSet) Names() []string {
	return append([]string(nil), m.names...)
}

func (m MoveSet) String() string {
	return strings.Join(m.names, ", ")
}
