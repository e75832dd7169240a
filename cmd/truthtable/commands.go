package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/shibukawa/truthtable"
	"github.com/shibukawa/truthtable/evaluator"
	"github.com/shibukawa/truthtable/formatter"
	"github.com/shibukawa/truthtable/repl"
)

// TableFlags are the table options shared by eval and repl. Zero values fall
// back to the configuration file.
type TableFlags struct {
	Format       string `short:"f" help:"Output format (text, markdown, csv, json, yaml, xml)"`
	Brief        bool   `short:"b" help:"Print only the final result column"`
	Verify       bool   `help:"Cross-check every table with CEL"`
	MaxVariables int    `help:"Reject expressions with more variables (0: table maximum of 24)" default:"-1"`
}

// settings is the effective table configuration of one command run
type settings struct {
	format       string
	brief        bool
	verify       bool
	maxVariables int
	color        bool
}

func (f TableFlags) resolve(ctx *Context) settings {
	s := settings{
		format:       ctx.Config.Format,
		brief:        ctx.Config.Brief || f.Brief,
		verify:       ctx.Config.Verify || f.Verify,
		maxVariables: ctx.Config.VariableLimit(),
		color:        useColor(ctx.Config.Color, ctx.Stdout),
	}

	if f.Format != "" {
		s.format = f.Format
	}

	if f.MaxVariables >= 0 {
		s.maxVariables = f.MaxVariables
	}

	return s
}

func (s settings) newFormatter() (formatter.Formatter, error) {
	return formatter.New(s.format, formatter.Options{Brief: s.brief, Color: s.color})
}

// EvalCmd represents the eval command
type EvalCmd struct {
	Expressions []string `arg:"" optional:"" help:"Expressions to evaluate (default: one per line from stdin)"`
	TableFlags  `embed:""`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
	s := cmd.resolve(ctx)

	f, err := s.newFormatter()
	if err != nil {
		return err
	}

	expressions := cmd.Expressions
	if len(expressions) == 0 {
		expressions, err = readExpressions(ctx.Stdin)
		if err != nil {
			return err
		}
	}

	if len(expressions) == 0 {
		return ErrNoExpressions
	}

	for i, text := range expressions {
		table, err := compute(text, s)
		if err != nil {
			return err
		}

		ctx.Logger.Debug("expression evaluated",
			"expression", text,
			"variables", len(table.Variables),
			"rows", len(table.Rows))

		if i > 0 && separated(s.format) {
			fmt.Fprintln(ctx.Stdout)
		}

		if err := f.Format(ctx.Stdout, table); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}

	return nil
}

// CheckCmd represents the check command
type CheckCmd struct {
	Expressions  []string `arg:"" help:"Expressions to check"`
	MaxVariables int      `help:"Reject expressions with more variables (0: table maximum of 24)" default:"-1"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	s := TableFlags{MaxVariables: cmd.MaxVariables, Verify: true}.resolve(ctx)

	label := color.New(color.FgGreen, color.Bold)
	if !s.color {
		label.DisableColor()
	}

	for _, text := range cmd.Expressions {
		table, err := compute(text, s)
		if err != nil {
			return err
		}

		label.Fprintf(ctx.Stdout, "%-13s", table.Classify())
		fmt.Fprintf(ctx.Stdout, " %s (%d variables, %d columns)\n",
			text, len(table.Variables), table.ColumnCount())
	}

	return nil
}

// ReplCmd represents the interactive session command
type ReplCmd struct {
	Plain      bool `help:"Read plain lines even on a terminal"`
	TableFlags `embed:""`
}

// Run executes the repl command
func (cmd *ReplCmd) Run(ctx *Context) error {
	s := cmd.resolve(ctx)

	f, err := s.newFormatter()
	if err != nil {
		return err
	}

	session := repl.NewSession(f,
		repl.WithPrompt(ctx.Config.Prompt),
		repl.WithMaxVariables(s.maxVariables),
		repl.WithVerify(s.verify),
		repl.WithLogger(ctx.Logger),
		repl.WithColor(useColor(ctx.Config.Color, ctx.Stderr)),
	)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !cmd.Plain && isTerminal(ctx.Stdin) && isTerminal(ctx.Stdout) {
		ctx.Logger.Debug("starting terminal session")
		return session.RunTUI(runCtx)
	}

	ctx.Logger.Debug("starting line session")

	return session.Run(runCtx, ctx.Stdin, ctx.Stdout)
}

func compute(text string, s settings) (*evaluator.Table, error) {
	table, err := truthtable.ComputeWithLimit(text, s.maxVariables)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, err)
	}

	if s.verify {
		if err := evaluator.Verify(table); err != nil {
			return nil, fmt.Errorf("%q: %w", text, err)
		}
	}

	return table, nil
}

// readExpressions returns the non-blank lines of r
func readExpressions(r io.Reader) ([]string, error) {
	var expressions []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			expressions = append(expressions, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expressions: %w", err)
	}

	return expressions, nil
}

// separated reports whether consecutive tables need a blank line between them
func separated(format string) bool {
	return format == "text" || format == "markdown"
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case truthtable.ColorAlways:
		return true
	case truthtable.ColorNever:
		return false
	}

	return !color.NoColor && isTerminal(w)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
