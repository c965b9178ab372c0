package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/fairplay/internal/evaluator"
	"github.com/lox/fairplay/internal/moveset"
)

// DisplayStyles contains styling for session output
type DisplayStyles struct {
	renderer *lipgloss.Renderer

	Header  lipgloss.Style
	Label   lipgloss.Style
	Info    lipgloss.Style
	Error   lipgloss.Style
	Key     lipgloss.Style
	Move    lipgloss.Style
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Draw    lipgloss.Style
	Border  lipgloss.Style
	Prompt  lipgloss.Style
	Goodbye lipgloss.Style
}

// NewDisplayStyles creates styles bound to w. Color is dropped when w is not a
// terminal or color is false.
func NewDisplayStyles(w io.Writer, color bool) *DisplayStyles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &DisplayStyles{
		renderer: r,
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Key: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Move: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lose: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")),
		Border: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Goodbye: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
	}
}

func (s *DisplayStyles) outcome(o string) lipgloss.Style {
	switch o {
	case evaluator.Win.String():
		return s.Win
	case evaluator.Lose.String():
		return s.Lose
	default:
		return s.Draw
	}
}

// FormatCommitment renders the published HMAC line
func (s *DisplayStyles) FormatCommitment(digest string) string {
	return fmt.Sprintf("%s %s", s.Label.Render("HMAC:"), s.Key.Render(digest))
}

// FormatMenu renders the numbered move list plus the exit and help entries
func (s *DisplayStyles) FormatMenu(moves moveset.MoveSet) string {
	var b strings.Builder
	b.WriteString(s.Label.Render("Available moves:"))
	b.WriteString("\n")
	for i, name := range moves.Names() {
		fmt.Fprintf(&b, "%d - %s\n", i+1, s.Move.Render(name))
	}
	fmt.Fprintf(&b, "%s - %s\n", ExitKey, s.Info.Render("Exit"))
	fmt.Fprintf(&b, "%s - %s", HelpKey, s.Info.Render("Help"))
	return b.String()
}

// FormatResult renders the revealed round
func (s *DisplayStyles) FormatResult(res Result) string {
	lines := []string{
		fmt.Sprintf("%s %s", s.Label.Render("Your move:"), s.Move.Render(res.HumanMove)),
		fmt.Sprintf("%s %s", s.Label.Render("Computer's move:"), s.Move.Render(res.ComputerMove)),
		fmt.Sprintf("%s %s", s.Label.Render("Result:"), s.outcome(res.Outcome.String()).Render(res.Outcome.String())),
		fmt.Sprintf("%s %s", s.Label.Render("HMAC key:"), s.Key.Render(res.Key.String())),
		s.formatCheck(res),
	}
	return strings.Join(lines, "\n")
}

// formatCheck recomputes the published HMAC from the revealed key so the
// player sees the commitment hold without leaving the game.
func (s *DisplayStyles) formatCheck(res Result) string {
	if res.Verify() {
		return fmt.Sprintf("%s %s", s.Label.Render("Check:"), s.Win.Render("HMAC matches "+res.ComputerMove))
	}
	return fmt.Sprintf("%s %s", s.Label.Render("Check:"), s.Error.Render("HMAC MISMATCH"))
}

// FormatBeats lists, for every move in order, the moves it defeats
func (s *DisplayStyles) FormatBeats(e *evaluator.Evaluator) (string, error) {
	names := e.Moves().Names()
	lines := make([]string, 0, len(names))
	for _, name := range names {
		beaten, err := e.Beats(name)
		if err != nil {
			return "", err
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			s.Move.Render(name), s.Info.Render("beats:"), strings.Join(beaten, ", ")))
	}
	return strings.Join(lines, "\n"), nil
}

// FormatHelp renders a grid from evaluator.HelpGrid as a bordered table. The
// first row is the header and the first column holds row labels.
func (s *DisplayStyles) FormatHelp(grid [][]string) string {
	if len(grid) == 0 {
		return ""
	}

	cell := s.renderer.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cell.Inherit(s.Label)
			case col == 0:
				return cell.Inherit(s.Move)
			}
			if row+1 < len(grid) && col < len(grid[row+1]) {
				return cell.Inherit(s.outcome(grid[row+1][col]))
			}
			return cell
		}).
		Headers(grid[0]...).
		Rows(grid[1:]...)

	return t.String()
}
