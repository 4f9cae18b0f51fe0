// Package cellref translates textual cell references such as "a1" or "bc12"
// into zero-based grid coordinates and back.
package cellref

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shibukawa/rpnsheet"
)

// Coordinate is a zero-based (row, column) pair.
type Coordinate struct {
	Row int
	Col int
}

// String renders the coordinate in spreadsheet notation, e.g. "A1".
func (c Coordinate) String() string {
	if c.Row < 0 || c.Col < 0 {
		return fmt.Sprintf("R%dC%d", c.Row+1, c.Col+1)
	}

	return ColumnName(c.Col) + strconv.Itoa(c.Row+1)
}

// Parse converts a lowercase reference into a coordinate. Letters are read
// as bijective base 26 (a=1 ... z=26, aa=27) and both parts are shifted to
// zero-based indices. Parse does not check grid bounds; a row number of 0
// yields Row -1.
func Parse(ref string) (Coordinate, error) {
	letterEnd := 0
	for letterEnd < len(ref) && ref[letterEnd] >= 'a' && ref[letterEnd] <= 'z' {
		letterEnd++
	}

	if letterEnd == 0 || letterEnd == len(ref) {
		return Coordinate{}, fmt.Errorf("%w: %q", rpnsheet.ErrInvalidReference, ref)
	}

	// column (a=1, ..., z=26, aa=27, ...), most significant letter first
	col := 0
	for i := range letterEnd {
		if col > (math.MaxInt-26)/26 {
			return Coordinate{}, fmt.Errorf("%w: column of %q overflows", rpnsheet.ErrInvalidReference, ref)
		}
		col = col*26 + int(ref[i]-'a'+1)
	}

	digits := ref[letterEnd:]
	if strings.Trim(digits, "0123456789") != "" {
		return Coordinate{}, fmt.Errorf("%w: %q", rpnsheet.ErrInvalidReference, ref)
	}

	row, err := strconv.Atoi(digits)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: row of %q: %w", rpnsheet.ErrInvalidReference, ref, err)
	}

	return Coordinate{Row: row - 1, Col: col - 1}, nil
}

// ColumnName returns the upper-case letters for a zero-based column index.
func ColumnName(col int) string {
	var b []byte

	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('A'+(n-1)%26))
	}

	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}
