package evaluator

import "fmt"

// Outcome is the result of one move played against another, always stated
// from the perspective of the first move.
type Outcome uint8

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the display name of the outcome
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}
