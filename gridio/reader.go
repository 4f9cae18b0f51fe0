// Package gridio reads grids from line-oriented text and writes resolved
// rows as text, JSON or YAML.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadGrid reads one row per line and splits each line on delimiter.
// There is no quoting, escaping or trimming; empty input yields an empty grid.
func ReadGrid(r io.Reader, delimiter string) ([][]string, error) {
	var grid [][]string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		grid = append(grid, strings.Split(scanner.Text(), delimiter))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}

	return grid, nil
}
