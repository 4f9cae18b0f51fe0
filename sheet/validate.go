package sheet

import (
	"fmt"
	"strings"

	"github.com/shibukawa/rpnsheet"
	"github.com/shibukawa/rpnsheet/cellref"
	"github.com/shibukawa/rpnsheet/postfix"
	tok "github.com/shibukawa/rpnsheet/tokenizer"
)

// Diagnostic is a problem found in one cell without evaluating the grid.
type Diagnostic struct {
	Cell cellref.Coordinate
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %q: %v", d.Cell, d.Text, d.Err)
}

// Validate checks every cell's syntax and reports references that point
// outside the grid. It does not resolve references or modify the grid, so
// problems that only appear at evaluation time (reference chains that
// exceed the budget, references to failing cells) are not reported.
func (s *Sheet) Validate() []Diagnostic {
	var diagnostics []Diagnostic

	for r, row := range s.grid {
		for c, text := range row {
			trimmed := strings.TrimSpace(text)
			if tok.IsNumeric(trimmed) {
				continue
			}

			cell := cellref.Coordinate{Row: r, Col: c}
			tokens := tok.Tokenize(trimmed)

			if err := postfix.Check(tokens); err != nil {
				diagnostics = append(diagnostics, Diagnostic{Cell: cell, Text: text, Err: err})
				continue
			}

			for _, token := range tokens {
				if token.Type != tok.REFERENCE {
					continue
				}

				if err := s.checkReference(token); err != nil {
					diagnostics = append(diagnostics, Diagnostic{Cell: cell, Text: text, Err: err})
					break
				}
			}
		}
	}

	return diagnostics
}

func (s *Sheet) checkReference(token tok.Token) error {
	coord, err := cellref.Parse(token.Value)
	if err != nil {
		return err
	}

	if _, err := s.lookup(coord); err != nil {
		return fmt.Errorf("%w: %s at %s", rpnsheet.ErrOutOfRange, token.Value, token.Position)
	}

	return nil
}
