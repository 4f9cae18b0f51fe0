package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/rpnsheet/sheet"
)

// ErrValidationFailed is returned when at least one cell has a problem
var ErrValidationFailed = errors.New("validation failed")

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Input string `arg:"" optional:"" help:"Input file (reads stdin when omitted)" type:"path"`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
	grid, err := readInput(cmd.Input, ctx.Stdin, ctx.Config.Input.Delimiter)
	if err != nil {
		return err
	}

	diagnostics := sheet.New(grid).Validate()

	if !ctx.Quiet {
		for _, d := range diagnostics {
			color.New(color.FgRed).Fprint(ctx.Stdout, "✗ ")
			fmt.Fprintln(ctx.Stdout, d)
		}

		if len(diagnostics) == 0 {
			color.New(color.FgGreen).Fprintf(ctx.Stdout, "✓ %d rows OK\n", len(grid))
		}
	}

	if len(diagnostics) > 0 {
		return fmt.Errorf("%w: %d cells with problems", ErrValidationFailed, len(diagnostics))
	}

	return nil
}
