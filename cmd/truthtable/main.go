package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/truthtable"
)

// Context represents the global context for commands
type Context struct {
	Config  *truthtable.Config
	Verbose bool
	Quiet   bool
	Logger  *slog.Logger
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config  string     `help:"Configuration file path" default:"truthtable.yaml"`
	Verbose bool       `help:"Enable verbose output" short:"v"`
	Quiet   bool       `help:"Suppress log output" short:"q"`
	Eval    EvalCmd    `cmd:"" help:"Print the truth table of each expression"`
	Repl    ReplCmd    `cmd:"" default:"withargs" help:"Evaluate expressions interactively (default)"`
	Check   CheckCmd   `cmd:"" help:"Verify expressions with CEL and classify them"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "truthtable v0.1.0")
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, loads configuration and executes the selected command.
// It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name("truthtable"),
		kong.Description("Print truth tables of boolean expressions over | ^ & ! and parentheses."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	config, err := truthtable.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	appCtx := &Context{
		Config:  config,
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		Logger:  newLogger(stderr, cli.Verbose, cli.Quiet),
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	appCtx.Logger.Debug("configuration loaded",
		"path", cli.Config,
		"format", config.Format,
		"max_variables", config.VariableLimit(),
		"command", kctx.Command())

	if err := kctx.Run(appCtx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// newLogger writes text logs to w: debug with --verbose, errors only with --quiet.
func newLogger(w io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn

	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
