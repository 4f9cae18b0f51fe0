package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/shibukawa/rpnsheet/gridio"
	"github.com/shibukawa/rpnsheet/sheet"
)

// EvalCmd represents the eval command
type EvalCmd struct {
	Input           string `arg:"" optional:"" help:"Input file (reads stdin when omitted)" type:"path"`
	Output          string `short:"o" help:"Output file (writes stdout when omitted)" type:"path"`
	Format          string `help:"Output format (text, json, yaml)"`
	MaxDereferences int    `help:"Maximum reference lookups per cell"`
	MaxDepth        int    `help:"Maximum reference nesting depth"`
}

// Run executes the eval command
func (cmd *EvalCmd) Run(ctx *Context) error {
	config := ctx.Config

	format := config.Output.Format
	if cmd.Format != "" {
		format = cmd.Format
	}

	options := sheet.Options{
		MaxDereferences: config.Evaluation.MaxDereferences,
		MaxDepth:        config.Evaluation.MaxDepth,
		Logger:          ctx.Logger,
	}
	if cmd.MaxDereferences > 0 {
		options.MaxDereferences = cmd.MaxDereferences
	}

	if cmd.MaxDepth > 0 {
		options.MaxDepth = cmd.MaxDepth
	}

	grid, err := readInput(cmd.Input, ctx.Stdin, config.Input.Delimiter)
	if err != nil {
		return err
	}

	out := ctx.Stdout
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		out = f
	}

	writer, err := gridio.NewRowWriter(out, format, config.Output.Separator)
	if err != nil {
		return err
	}

	s := sheet.New(grid, options)

	err = s.Evaluate(func(_ int, row []string) error {
		return writer.WriteRow(row)
	})
	if err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if ctx.Verbose && !ctx.Quiet {
		printSummary(ctx.Stderr, len(grid), s.Failures())
	}

	return nil
}

// readInput reads the grid from path, or from stdin when path is empty
func readInput(path string, stdin io.Reader, delimiter string) ([][]string, error) {
	if path == "" {
		return gridio.ReadGrid(stdin, delimiter)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return gridio.ReadGrid(f, delimiter)
}

func printSummary(w io.Writer, rows int, failures []sheet.Failure) {
	if len(failures) == 0 {
		color.New(color.FgGreen).Fprintf(w, "Evaluated %d rows, all cells resolved\n", rows)
		return
	}

	color.New(color.FgYellow).Fprintf(w, "Evaluated %d rows, %d cells failed\n", rows, len(failures))

	for _, failure := range failures {
		fmt.Fprintf(w, "  %s\n", failure)
	}
}
