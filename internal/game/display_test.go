package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/fairplay/internal/commitment"
	"github.com/lox/fairplay/internal/evaluator"
	"github.com/lox/fairplay/internal/moveset"
)

func TestFormatHelpContainsEveryCell(t *testing.T) {
	e := evaluator.New(moveset.MustNew("Rock", "Paper", "Scissors", "Lizard", "Spock"))
	styles := NewDisplayStyles(&bytes.Buffer{}, false)
	grid := e.HelpGrid(evaluator.DefaultCorner)

	text := styles.FormatHelp(grid)

	assert.Contains(t, text, evaluator.DefaultCorner)
	lines := strings.Split(text, "\n")
	for _, row := range grid[1:] {
		found := false
		for _, line := range lines {
			if strings.Contains(line, " "+row[0]+" ") && strings.Count(line, "Draw") == 1 {
				found = true
				assert.Equal(t, 2, strings.Count(line, "Win"), "row %s", row[0])
				assert.Equal(t, 2, strings.Count(line, "Lose"), "row %s", row[0])
			}
		}
		assert.True(t, found, "row for %s not rendered", row[0])
	}
}

func TestFormatHelpEmpty(t *testing.T) {
	styles := NewDisplayStyles(&bytes.Buffer{}, false)
	assert.Equal(t, "", styles.FormatHelp(nil))
}

func TestFormatResultPlain(t *testing.T) {
	styles := NewDisplayStyles(&bytes.Buffer{}, false)
	key := commitment.Key("abcd")
	text := styles.FormatResult(Result{
		HumanMove:    "Rock",
		ComputerMove: "Paper",
		Outcome:      evaluator.Win,
		Key:          key,
		HMAC:         commitment.Commit(key, "Paper"),
	})

	assert.Equal(t, "Your move: Rock\nComputer's move: Paper\nResult: Win\nHMAC key: abcd\nCheck: HMAC matches Paper", text)
}

func TestFormatResultMismatch(t *testing.T) {
	styles := NewDisplayStyles(&bytes.Buffer{}, false)
	key := commitment.Key("abcd")
	text := styles.FormatResult(Result{
		HumanMove:    "Rock",
		ComputerMove: "Paper",
		Outcome:      evaluator.Win,
		Key:          key,
		HMAC:         commitment.Commit(key, "Rock"),
	})

	assert.True(t, strings.HasSuffix(text, "Check: HMAC MISMATCH"), text)
}

func TestFormatBeats(t *testing.T) {
	styles := NewDisplayStyles(&bytes.Buffer{}, false)
	e := evaluator.New(moveset.MustNew("A", "B", "C", "D", "E"))

	text, err := styles.FormatBeats(e)
	require.NoError(t, err)

	want := []string{
		"A beats: B, C",
		"B beats: C, D",
		"C beats: D, E",
		"D beats: E, A",
		"E beats: A, B",
	}
	assert.Equal(t, strings.Join(want, "\n"), text)
}
