package evaluator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/moveset"
)

func movesOfSize(n int) moveset.MoveSet {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("m%d", i)
	}
	return moveset.MustNew(names...)
}

func TestTableProperties(t *testing.T) {
	for n := 3; n <= 15; n += 2 {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			e := New(movesOfSize(n))

			for i := 0; i < n; i++ {
				assert.Equal(t, Draw, e.Outcome(i, i), "diagonal must be Draw at %d", i)

				wins, losses := 0, 0
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					switch e.Outcome(i, j) {
					case Win:
						wins++
						assert.Equal(t, Lose, e.Outcome(j, i), "antisymmetry broken at (%d,%d)", i, j)
					case Lose:
						losses++
						assert.Equal(t, Win, e.Outcome(j, i), "antisymmetry broken at (%d,%d)", i, j)
					default:
						t.Errorf("off-diagonal Draw at (%d,%d)", i, j)
					}
				}
				assert.Equal(t, n/2, wins, "row %d wins", i)
				assert.Equal(t, n/2, losses, "row %d losses", i)
			}
		})
	}
}

func TestClassicMapping(t *testing.T) {
	e := New(moveset.MustNew("Rock", "Paper", "Scissors"))

	tests := []struct {
		a, b string
		want Outcome
	}{
		{"Rock", "Paper", Win},
		{"Paper", "Scissors", Win},
		{"Scissors", "Rock", Win},
		{"Paper", "Rock", Lose},
		{"Scissors", "Paper", Lose},
		{"Rock", "Scissors", Lose},
		{"Rock", "Rock", Draw},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			got, err := e.Resolve(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFiveMoveDistances(t *testing.T) {
	e := New(moveset.MustNew("A", "B", "C", "D", "E"))

	got, err := e.Resolve("A", "C")
	require.NoError(t, err)
	assert.Equal(t, Win, got, "distance 2 is within half the circle")

	got, err = e.Resolve("A", "D")
	require.NoError(t, err)
	assert.Equal(t, Lose, got, "distance 3 is beyond half the circle")

	beats, err := e.Beats("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"E", "A"}, beats)
}

func TestResolveMatchesTable(t *testing.T) {
	ms := movesOfSize(7)
	e := New(ms)
	table := e.Table()

	for i := 0; i < ms.Len(); i++ {
		for j := 0; j < ms.Len(); j++ {
			got, err := e.Resolve(ms.Name(i), ms.Name(j))
			require.NoError(t, err)
			assert.Equal(t, table[i][j], got, "(%d,%d)", i, j)
		}
	}
}

func TestResolveUnknownMove(t *testing.T) {
	e := New(moveset.MustNew("Rock", "Paper", "Scissors"))

	_, err := e.Resolve("Rock", "Lizard")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMove))

	_, err = e.Resolve("rock", "Paper")
	assert.True(t, errors.Is(err, ErrUnknownMove), "names are case-sensitive")

	_, err = e.Beats("Spock")
	assert.True(t, errors.Is(err, ErrUnknownMove))
}

func TestTableReturnsCopy(t *testing.T) {
	e := New(moveset.MustNew("Rock", "Paper", "Scissors"))

	table := e.Table()
	table[0][1] = Lose

	assert.Equal(t, Win, e.Outcome(0, 1))
}

func TestHelpGrid(t *testing.T) {
	e := New(moveset.MustNew("Rock", "Paper", "Scissors"))
	before := e.Table()

	grid := e.HelpGrid(DefaultCorner)

	want := [][]string{
		{DefaultCorner, "Rock", "Paper", "Scissors"},
		{"Rock", "Draw", "Win", "Lose"},
		{"Paper", "Lose", "Draw", "Win"},
		{"Scissors", "Win", "Lose", "Draw"},
	}
	assert.Equal(t, want, grid)

	grid[1][1] = "Win"
	assert.Equal(t, before, e.Table(), "rendering must not touch the table")
	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, e.Moves().Names())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "Win", Win.String())
	assert.Equal(t, "Lose", Lose.String())
	assert.Equal(t, "Draw", Draw.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}
