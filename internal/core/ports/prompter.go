package ports

import "context"

// Prompter reads lines of user input.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// ReadLine writes prompt and returns the next input line without its line ending.
	// It returns io.EOF when the input is exhausted.
	ReadLine(ctx context.Context, prompt string) (string, error)
	// Interactive reports whether input comes from a terminal.
	Interactive() bool
}
