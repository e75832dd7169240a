// Package repl implements the interactive read-evaluate-print loop.
package repl

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/shibukawa/truthtable"
	"github.com/shibukawa/truthtable/evaluator"
	"github.com/shibukawa/truthtable/formatter"
)

// ExitCommand ends the session when it is the whole (trimmed) input line
const ExitCommand = "exit"

// Banner is printed when a session starts
const Banner = "for exits write: " + ExitCommand

// DefaultPrompt is shown before each input line
const DefaultPrompt = ">>> "

// Session evaluates one expression per line
type Session struct {
	formatter    formatter.Formatter
	prompt       string
	maxVariables int
	verify       bool
	logger       *slog.Logger
	errColor     *color.Color
}

// Option configures a Session
type Option func(*Session)

// WithPrompt sets the prompt string
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithMaxVariables rejects expressions with more than n variables; 0 means the table maximum
func WithMaxVariables(n int) Option {
	return func(s *Session) {
		s.maxVariables = n
	}
}

// WithVerify cross-checks every table with CEL before printing it
func WithVerify(verify bool) Option {
	return func(s *Session) {
		s.verify = verify
	}
}

// WithLogger sets the logger for evaluation events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithColor forces error coloring on or off instead of following the terminal
func WithColor(enabled bool) Option {
	return func(s *Session) {
		if enabled {
			s.errColor.EnableColor()
		} else {
			s.errColor.DisableColor()
		}
	}
}

// NewSession creates a session that renders tables with f
func NewSession(f formatter.Formatter, opts ...Option) *Session {
	s := &Session{
		formatter: f,
		prompt:    DefaultPrompt,
		logger:    slog.Default(),
		errColor:  color.New(color.FgRed),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Evaluate handles a single input line. Blank lines produce no output; the exit
// command sets quit. Any lexer, parser, limit or verification error is returned
// for the caller to display.
func (s *Session) Evaluate(line string) (output string, quit bool, err error) {
	text := strings.TrimSpace(line)

	switch text {
	case "":
		return "", false, nil
	case ExitCommand:
		return "", true, nil
	}

	start := time.Now()

	table, err := truthtable.ComputeWithLimit(text, s.maxVariables)
	if err != nil {
		s.logger.Debug("expression rejected", "expression", text, "error", err)
		return "", false, err
	}

	if s.verify {
		if err := evaluator.Verify(table); err != nil {
			s.logger.Error("table verification failed", "expression", text, "error", err)
			return "", false, err
		}
	}

	var buf bytes.Buffer
	if err := s.formatter.Format(&buf, table); err != nil {
		return "", false, fmt.Errorf("failed to render table: %w", err)
	}

	s.logger.Debug("expression evaluated",
		"expression", text,
		"variables", len(table.Variables),
		"columns", table.ColumnCount(),
		"rows", len(table.Rows),
		"duration", time.Since(start))

	return buf.String(), false, nil
}

// Run reads lines from r and writes prompts, tables and errors to w until the
// exit command, end of input, or cancellation of ctx.
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, Banner)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(w)
		fmt.Fprint(w, s.prompt)

		if !scanner.Scan() {
			fmt.Fprintln(w)

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			return nil
		}

		output, quit, err := s.Evaluate(scanner.Text())
		if quit {
			fmt.Fprintln(w)
			return nil
		}

		if err != nil {
			s.errColor.Fprintln(w, err.Error())
			continue
		}

		io.WriteString(w, output)
	}
}
