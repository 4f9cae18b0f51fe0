package sheet

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/rpnsheet"
	"github.com/shibukawa/rpnsheet/cellref"
	"github.com/shibukawa/rpnsheet/testhelper"
)

func TestValidate(t *testing.T) {
	grid := testhelper.Grid(t, `
		1,a1 b1 +,1 2 3
		+ 1,c9,a1 oops *
		a2,b2 a1 -
	`)
	s := New(grid)

	diagnostics := s.Validate()

	assert.Equal(t, 4, len(diagnostics))

	assert.Equal(t, cellref.Coordinate{Row: 0, Col: 2}, diagnostics[0].Cell)
	assert.IsError(t, diagnostics[0].Err, rpnsheet.ErrLeftoverOperands)

	assert.Equal(t, cellref.Coordinate{Row: 1, Col: 0}, diagnostics[1].Cell)
	assert.IsError(t, diagnostics[1].Err, rpnsheet.ErrMissingOperands)

	assert.Equal(t, cellref.Coordinate{Row: 1, Col: 1}, diagnostics[2].Cell)
	assert.IsError(t, diagnostics[2].Err, rpnsheet.ErrOutOfRange)

	assert.Equal(t, cellref.Coordinate{Row: 1, Col: 2}, diagnostics[3].Cell)
	assert.IsError(t, diagnostics[3].Err, rpnsheet.ErrMalformedToken)
	assert.Contains(t, diagnostics[3].String(), `C2 "a1 oops *"`)

	// Validate never touches the grid
	assert.Equal(t, "a1 b1 +", s.Grid()[0][1])
}

func TestValidate_Clean(t *testing.T) {
	s := New(Grid{{"1", "a1 2 *"}, {"A1 B1 /"}})
	assert.Equal(t, 0, len(s.Validate()))
}
