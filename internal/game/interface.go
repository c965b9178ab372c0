package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineReader reads one line of human input per call. *readline.Instance
// satisfies it directly.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// ErrInterrupt is returned by terminal readers when the user presses Ctrl-C
var ErrInterrupt = readline.ErrInterrupt

// ReaderConfig controls how human input is read
type ReaderConfig struct {
	Prompt      string
	HistoryFile string
	MoveCount   int
}

// NewLineReader returns a readline-backed reader when in is a terminal and a
// plain line reader otherwise, so piped input still works.
func NewLineReader(in *os.File, out io.Writer, cfg ReaderConfig) (LineReader, error) {
	if !isatty.IsTerminal(in.Fd()) && !isatty.IsCygwinTerminal(in.Fd()) {
		return NewPlainReader(in, out, cfg.Prompt), nil
	}
	rl, err := NewTerminalReader(in, out, cfg)
	if err != nil {
		return nil, err
	}
	return rl, nil
}

// NewTerminalReader sets up readline with completion for the menu keys
func NewTerminalReader(in io.ReadCloser, out io.Writer, cfg ReaderConfig) (*readline.Instance, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem(ExitKey),
		readline.PcItem(HelpKey),
	)
	for i := 1; i <= cfg.MoveCount; i++ {
		completer.Children = append(completer.Children, readline.PcItem(strconv.Itoa(i)))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdin:           in,
		Stdout:          out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up line editing: %w", err)
	}
	return rl, nil
}

// PlainReader reads newline-terminated input without line editing. Lines of
// any length are accepted; a final line without a newline is still returned.
type PlainReader struct {
	r      *bufio.Reader
	out    io.Writer
	prompt string
}

// NewPlainReader reads lines from r, writing prompt to out before each read
func NewPlainReader(r io.Reader, out io.Writer, prompt string) *PlainReader {
	return &PlainReader{
		r:      bufio.NewReader(r),
		out:    out,
		prompt: prompt,
	}
}

func (p *PlainReader) Readline() (string, error) {
	if p.prompt != "" && p.out != nil {
		fmt.Fprint(p.out, p.prompt)
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *PlainReader) SetPrompt(prompt string) { p.prompt = prompt }

func (p *PlainReader) Close() error { return nil }
