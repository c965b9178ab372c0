package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned for menu input that is neither a command nor a
// move number in range. The session recovers by prompting again.
var ErrInvalidInput = errors.New("invalid input")

// ChoiceKind identifies what a line of menu input asked for
type ChoiceKind int

const (
	ChoiceMove ChoiceKind = iota
	ChoiceExit
	ChoiceHelp
)

// Menu keys other than move numbers
const (
	ExitKey = "0"
	HelpKey = "?"
)

// Choice is a parsed line of menu input. Index is the 0-based move index and
// only meaningful for ChoiceMove.
type Choice struct {
	Kind  ChoiceKind
	Index int
}

// ParseChoice interprets a line against a menu of n moves numbered from 1
func ParseChoice(line string, n int) (Choice, error) {
	line = strings.TrimSpace(line)
	switch line {
	case ExitKey:
		return Choice{Kind: ChoiceExit}, nil
	case HelpKey:
		return Choice{Kind: ChoiceHelp}, nil
	case "":
		return Choice{}, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}

	num, err := strconv.Atoi(line)
	if err != nil {
		return Choice{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, line)
	}
	if num < 1 || num > n {
		return Choice{}, fmt.Errorf("%w: choose a move between 1 and %d", ErrInvalidInput, n)
	}
	return Choice{Kind: ChoiceMove, Index: num - 1}, nil
}
