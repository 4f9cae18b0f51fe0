package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var (
	whiteSpaces = regexp.MustCompile(`(\s+)`)
	leadingTabs = regexp.MustCompile(`^(\t+)`)
)

func replaceTab(match string) string {
	return strings.Repeat("    ", strings.Count(match, "\t"))
}

// TrimIndent removes the first line and the indentation of the second line
// from every line of a raw string literal.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")

	var indent string
	if len(lines) > 1 {
		indent = whiteSpaces.FindString(lines[1])
	}

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, replaceTab)
	}

	return strings.Join(lines[1:], "\n")
}

// Grid builds a grid from an indented raw string: one row per line, cells
// separated by commas. A trailing empty line is dropped.
func Grid(t *testing.T, src string) [][]string {
	t.Helper()

	text := strings.TrimRight(TrimIndent(t, src), "\n ")
	if text == "" {
		return nil
	}

	var grid [][]string
	for _, line := range strings.Split(text, "\n") {
		grid = append(grid, strings.Split(line, ","))
	}

	return grid
}
