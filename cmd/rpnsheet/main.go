package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/rpnsheet"
)

// Context represents the global context for commands
type Context struct {
	Config  *rpnsheet.Config
	Logger  *slog.Logger
	Verbose bool
	Quiet   bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config    string `help:"Configuration file path" default:"rpnsheet.yaml"`
	Verbose   bool   `help:"Enable verbose output" short:"v"`
	Quiet     bool   `help:"Suppress output" short:"q"`
	LogLevel  string `help:"Log level (debug, info, warn, error)"`
	LogFormat string `help:"Log format (text, json)"`

	Eval     EvalCmd     `cmd:"" default:"withargs" help:"Evaluate a grid of postfix cells"`
	Validate ValidateCmd `cmd:"" help:"Check cell syntax and references without evaluating"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	fmt.Fprintln(ctx.Stdout, "rpnsheet v0.1.0")
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, builds the command context and executes the selected
// command. It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("rpnsheet"),
		kong.Description("Evaluate grids of reverse-Polish cell expressions"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	config, err := loadConfig(&cli)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	appCtx := &Context{
		Config:  config,
		Logger:  newLogger(config.Log.Level, config.Log.Format, stderr),
		Verbose: cli.Verbose,
		Quiet:   cli.Quiet,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	err = kctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
