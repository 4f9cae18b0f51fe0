// Package sheet owns a grid of cells and resolves every cell to its final
// value, memoizing results in place.
package sheet

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shibukawa/rpnsheet"
	"github.com/shibukawa/rpnsheet/cellref"
	"github.com/shibukawa/rpnsheet/postfix"
	tok "github.com/shibukawa/rpnsheet/tokenizer"
)

// Grid is an ordered list of rows of cell text. Rows may differ in length.
type Grid [][]string

// Options are the limits and logger used by a Sheet
type Options struct {
	// MaxDereferences caps reference lookups per top-level cell
	MaxDereferences int
	// MaxDepth caps how deeply reference resolution may nest
	MaxDepth int
	Logger   *slog.Logger
}

// Failure records why one top-level cell rendered as the sentinel.
type Failure struct {
	Cell cellref.Coordinate
	Err  error
}

func (f Failure) String() string {
	return f.Cell.String() + ": " + f.Err.Error()
}

// Sheet is the resolution context: the grid plus the dereference budget and
// depth of the top-level cell currently being resolved.
type Sheet struct {
	grid    Grid
	options Options
	logger  *slog.Logger

	derefs int
	depth  int

	failures []Failure
}

var _ postfix.Resolver = (*Sheet)(nil)

// New creates a Sheet over grid. The grid is mutated in place by Evaluate
// and Resolve.
func New(grid Grid, options ...Options) *Sheet {
	opts := Options{
		MaxDereferences: rpnsheet.DefaultMaxDereferences,
		MaxDepth:        rpnsheet.DefaultMaxDepth,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	if opts.MaxDereferences <= 0 {
		opts.MaxDereferences = rpnsheet.DefaultMaxDereferences
	}

	if opts.MaxDepth <= 0 {
		opts.MaxDepth = rpnsheet.DefaultMaxDepth
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Sheet{
		grid:    grid,
		options: opts,
		logger:  logger,
	}
}

// Grid returns the underlying grid, including any values resolved so far.
func (s *Sheet) Grid() Grid {
	return s.grid
}

// Failures returns the failed top-level cells of the last Evaluate pass.
func (s *Sheet) Failures() []Failure {
	return s.failures
}

// Render converts a resolution result to cell text.
func Render(value string, err error) string {
	if err != nil {
		return rpnsheet.Sentinel
	}

	return value
}

// Evaluate resolves every cell row by row, left to right, replacing each
// cell's text with its value or the sentinel. The budget is reset before
// each cell. emit, if non-nil, is called once per row after the row is
// resolved; an emit error stops the pass and is returned.
func (s *Sheet) Evaluate(emit func(rowIndex int, row []string) error) error {
	s.failures = nil

	for r, row := range s.grid {
		for c := range row {
			value, err := s.ResolveCell(r, c)
			if err != nil {
				cell := cellref.Coordinate{Row: r, Col: c}
				s.failures = append(s.failures, Failure{Cell: cell, Err: err})
				s.logger.Debug("cell failed", slog.String("cell", cell.String()), slog.String("reason", err.Error()))
			}

			row[c] = Render(value, err)
		}

		if emit != nil {
			if err := emit(r, row); err != nil {
				return err
			}
		}
	}

	s.logger.Info("sheet evaluated", slog.Int("rows", len(s.grid)), slog.Int("failures", len(s.failures)))

	return nil
}

// ResolveCell resolves the top-level cell at (row, col) with a fresh budget.
// It does not write the result back; Evaluate does.
func (s *Sheet) ResolveCell(row, col int) (string, error) {
	text, err := s.lookup(cellref.Coordinate{Row: row, Col: col})
	if err != nil {
		return "", err
	}

	s.derefs = 0
	s.depth = 0

	return s.ResolveText(text)
}

// Resolve dereferences ref for the postfix evaluator. Each call counts
// against the budget of the current top-level cell. The target cell is
// resolved and its rendered value written back into the grid.
func (s *Sheet) Resolve(ref string) (string, error) {
	s.derefs++
	if s.derefs > s.options.MaxDereferences {
		return "", fmt.Errorf("%w: more than %d lookups resolving %s", rpnsheet.ErrBudgetExceeded, s.options.MaxDereferences, ref)
	}

	if s.depth >= s.options.MaxDepth {
		return "", fmt.Errorf("%w: %s nested deeper than %d", rpnsheet.ErrDepthExceeded, ref, s.options.MaxDepth)
	}

	coord, err := cellref.Parse(ref)
	if err != nil {
		return "", err
	}

	text, err := s.lookup(coord)
	if err != nil {
		return "", err
	}

	s.depth++
	value, err := s.ResolveText(text)
	s.depth--

	s.grid[coord.Row][coord.Col] = Render(value, err)

	return value, err
}

// ResolveText resolves one cell's text: numeric literals are returned
// trimmed, everything else is evaluated as a postfix expression.
func (s *Sheet) ResolveText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)

	if tok.IsNumeric(trimmed) {
		return trimmed, nil
	}

	if trimmed == rpnsheet.Sentinel {
		return "", rpnsheet.ErrErrorValue
	}

	return postfix.Evaluate(tok.Tokenize(trimmed), s)
}

func (s *Sheet) lookup(coord cellref.Coordinate) (string, error) {
	if coord.Row < 0 || coord.Row >= len(s.grid) || coord.Col < 0 || coord.Col >= len(s.grid[coord.Row]) {
		return "", fmt.Errorf("%w: %s", rpnsheet.ErrOutOfRange, coord)
	}

	return s.grid[coord.Row][coord.Col], nil
}
