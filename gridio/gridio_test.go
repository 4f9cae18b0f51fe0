package gridio

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGrid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		delimiter string
		expected  [][]string
	}{
		{
			name:      "two rows",
			input:     "1,2\na1 a2 +,10\n",
			delimiter: ",",
			expected:  [][]string{{"1", "2"}, {"a1 a2 +", "10"}},
		},
		{
			name:      "no trailing newline and CRLF",
			input:     "1,2\r\n3",
			delimiter: ",",
			expected:  [][]string{{"1", "2"}, {"3"}},
		},
		{
			name:      "cells are not trimmed and empties are kept",
			input:     " 1 ,,\n",
			delimiter: ",",
			expected:  [][]string{{" 1 ", "", ""}},
		},
		{
			name:      "blank line is a single empty cell",
			input:     "1\n\n2\n",
			delimiter: ",",
			expected:  [][]string{{"1"}, {""}, {"2"}},
		},
		{
			name:      "custom delimiter",
			input:     "1;a1 2 *\n",
			delimiter: ";",
			expected:  [][]string{{"1", "a1 2 *"}},
		},
		{
			name:      "empty input",
			input:     "",
			delimiter: ",",
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := ReadGrid(strings.NewReader(tt.input), tt.delimiter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, grid)
		})
	}
}

func TestReadGrid_ReaderError(t *testing.T) {
	boom := errors.New("boom")

	_, err := ReadGrid(iotest.ErrReader(boom), ",")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, ", ")

	require.NoError(t, w.WriteRow([]string{"1", "2"}))
	assert.Equal(t, "1, 2\n", buf.String(), "rows are written immediately")

	require.NoError(t, w.WriteRow([]string{"3", "#ERR"}))
	require.NoError(t, w.Flush())

	assert.Equal(t, "1, 2\n3, #ERR\n", buf.String())
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewRowWriter(&buf, "json", ", ")
	require.NoError(t, err)

	row := []string{"1", "2"}
	require.NoError(t, w.WriteRow(row))
	row[0] = "changed"
	require.NoError(t, w.WriteRow([]string{"#ERR"}))
	assert.Empty(t, buf.String())

	require.NoError(t, w.Flush())

	var got [][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, [][]string{{"1", "2"}, {"#ERR"}}, got)
}

func TestJSONWriter_Empty(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewRowWriter(&buf, "json", "")
	require.NoError(t, err)
	require.NoError(t, w.Flush())

	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewRowWriter(&buf, "yaml", ", ")
	require.NoError(t, err)

	require.NoError(t, w.WriteRow([]string{"1", "0.5"}))
	require.NoError(t, w.WriteRow([]string{"#ERR", "Infinity"}))
	require.NoError(t, w.Flush())

	var got [][]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, [][]string{{"1", "0.5"}, {"#ERR", "Infinity"}}, got)
}

func TestNewRowWriter(t *testing.T) {
	w, err := NewRowWriter(&bytes.Buffer{}, "", ", ")
	require.NoError(t, err)
	assert.IsType(t, &TextWriter{}, w)

	_, err = NewRowWriter(&bytes.Buffer{}, "xml", ", ")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
