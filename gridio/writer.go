package gridio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrUnknownFormat is returned by NewRowWriter for an unsupported format.
var ErrUnknownFormat = errors.New("unknown output format")

// RowWriter receives resolved rows in order.
type RowWriter interface {
	WriteRow(row []string) error
	// Flush writes anything buffered. It must be called once after the last row.
	Flush() error
}

// NewRowWriter returns the writer for format: "text", "json" or "yaml".
func NewRowWriter(w io.Writer, format, separator string) (RowWriter, error) {
	switch format {
	case "", "text":
		return NewTextWriter(w, separator), nil
	case "json":
		return &JSONWriter{w: w}, nil
	case "yaml":
		return &YAMLWriter{w: w}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// TextWriter writes each row as one line as soon as it is received.
type TextWriter struct {
	w         io.Writer
	separator string
}

// NewTextWriter creates a TextWriter joining cells with separator.
func NewTextWriter(w io.Writer, separator string) *TextWriter {
	return &TextWriter{w: w, separator: separator}
}

func (t *TextWriter) WriteRow(row []string) error {
	_, err := io.WriteString(t.w, strings.Join(row, t.separator)+"\n")
	return err
}

func (t *TextWriter) Flush() error {
	return nil
}

// JSONWriter buffers rows and writes them as an array of arrays on Flush.
type JSONWriter struct {
	w    io.Writer
	rows [][]string
}

func (j *JSONWriter) WriteRow(row []string) error {
	j.rows = append(j.rows, slices.Clone(row))
	return nil
}

func (j *JSONWriter) Flush() error {
	rows := j.rows
	if rows == nil {
		rows = [][]string{}
	}

	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(rows)
}

// YAMLWriter buffers rows and writes them as a YAML sequence on Flush.
type YAMLWriter struct {
	w    io.Writer
	rows [][]string
}

func (y *YAMLWriter) WriteRow(row []string) error {
	y.rows = append(y.rows, slices.Clone(row))
	return nil
}

func (y *YAMLWriter) Flush() error {
	rows := y.rows
	if rows == nil {
		rows = [][]string{}
	}

	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	_, err = y.w.Write(data)

	return err
}
