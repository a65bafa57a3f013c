// Package prompt reads interactive input line by line.
package prompt

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.Prompter = (*Prompter)(nil)

// Prompter implements ports.Prompter on top of a reader and a writer.
type Prompter struct {
	mu          sync.Mutex
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

// New creates a Prompter reading from in and writing prompts to out.
// Prompts are only written when in is a terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
	}
	return &Prompter{
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
	}
}

// WithInteractive forces prompts on or off.
func (p *Prompter) WithInteractive(interactive bool) *Prompter {
	p.interactive = interactive
	return p
}

// ReadLine writes prompt and returns the next line without its line ending.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.interactive && prompt != "" {
		if _, err := io.WriteString(p.out, prompt); err != nil {
			return "", zerr.Wrap(err, "failed to write prompt")
		}
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", zerr.Wrap(err, "failed to read input")
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), nil
}

// Interactive reports whether input comes from a terminal.
func (p *Prompter) Interactive() bool {
	return p.interactive
}
