package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// Prompter reads one line of input after showing a prompt. At end of
// input it returns "" and io.EOF.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Close() error
}

// linePrompter reads plain lines from any reader.
type linePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a Prompter that writes prompts to out and reads
// newline-terminated answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) Prompter {
	return &linePrompter{r: bufio.NewReader(in), out: out}
}

func (p *linePrompter) Prompt(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)

	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) Close() error {
	return nil
}

// linerPrompter gives readline-style editing on the process terminal. The
// liner state is opened on first use so non-interactive runs never touch
// the terminal mode.
type linerPrompter struct {
	state *liner.State
}

// NewTerminalPrompter returns a Prompter bound to the process's stdin and
// stdout. Input redirected from a pipe or file is read line by line.
func NewTerminalPrompter() Prompter {
	return &linerPrompter{}
}

func (p *linerPrompter) Prompt(prompt string) (string, error) {
	if p.state == nil {
		p.state = liner.NewLiner()
		p.state.SetCtrlCAborts(true)
	}

	line, err := p.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	p.state.AppendHistory(line)
	return line, nil
}

func (p *linerPrompter) Close() error {
	if p.state == nil {
		return nil
	}
	return p.state.Close()
}
