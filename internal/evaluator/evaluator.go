// Package evaluator decides every pairing of a generalized rock-paper-scissors
// move set.
//
// Moves sit on a circle in the order they were given. Each move beats the next
// N/2 moves clockwise and loses to the N/2 moves before it, which for
// [Rock Paper Scissors] means Rock beats Paper, Paper beats Scissors and
// Scissors beats Rock.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/fairplay/internal/moveset"
)

// ErrUnknownMove is returned when a queried name is not part of the move set
var ErrUnknownMove = errors.New("unknown move")

// DefaultCorner labels the top-left cell of the help grid
const DefaultCorner = `v You \ PC >`

// Evaluator answers outcome queries from a table precomputed at construction.
// It is never mutated afterwards, so it is safe to share.
type Evaluator struct {
	moves moveset.MoveSet
	table [][]Outcome
}

// New builds the outcome table for moves. Validation of the set itself is the
// caller's job (see moveset.New).
func New(moves moveset.MoveSet) *Evaluator {
	return &Evaluator{
		moves: moves,
		table: buildTable(moves.Len()),
	}
}

func buildTable(n int) [][]Outcome {
	half := n / 2
	table := make([][]Outcome, n)
	for i := range table {
		row := make([]Outcome, n)
		for j := range row {
			if i == j {
				row[j] = Draw
				continue
			}
			if (j-i+n)%n <= half {
				row[j] = Win
			} else {
				row[j] = Lose
			}
		}
		table[i] = row
	}
	return table
}

// Moves returns the move set the table was built for
func (e *Evaluator) Moves() moveset.MoveSet { return e.moves }

// Outcome returns the result for the move at index i against the move at index j
func (e *Evaluator) Outcome(i, j int) Outcome {
	return e.table[i][j]
}

// Resolve returns the outcome of moveA played against moveB, from moveA's side:
// Win means moveA beats moveB.
func (e *Evaluator) Resolve(moveA, moveB string) (Outcome, error) {
	i, ok := e.moves.Index(moveA)
	if !ok {
		return Draw, fmt.Errorf("%w: %q", ErrUnknownMove, moveA)
	}
	j, ok := e.moves.Index(moveB)
	if !ok {
		return Draw, fmt.Errorf("%w: %q", ErrUnknownMove, moveB)
	}
	return e.table[i][j], nil
}

// Table returns a copy of the full outcome table
func (e *Evaluator) Table() [][]Outcome {
	out := make([][]Outcome, len(e.table))
	for i, row := range e.table {
		out[i] = append([]Outcome(nil), row...)
	}
	return out
}

// Beats lists the moves that name defeats, in circular order
func (e *Evaluator) Beats(name string) ([]string, error) {
	i, ok := e.moves.Index(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	n := e.moves.Len()
	var out []string
	for k := 1; k < n; k++ {
		j := (i + k) % n
		if e.table[i][j] == Win {
			out = append(out, e.moves.Name(j))
		}
	}
	return out, nil
}

// HelpGrid projects the table into rows of display strings. The first row holds
// corner followed by the move names; each further row starts with a move name
// and lists that move's outcome against every column.
func (e *Evaluator) HelpGrid(corner string) [][]string {
	n := e.moves.Len()
	grid := make([][]string, 0, n+1)

	header := make([]string, 0, n+1)
	header = append(header, corner)
	header = append(header, e.moves.Names()...)
	grid = append(grid, header)

	for i, row := range e.table {
		cells := make([]string, 0, n+1)
		cells = append(cells, e.moves.Name(i))
		for _, o := range row {
			cells = append(cells, o.String())
		}
		grid = append(grid, cells)
	}
	return grid
}
