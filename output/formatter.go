// Package output renders result rows for the console.
//
// Supported formats:
//   - table: aligned ASCII table with a row count footer
//   - csv: header row followed by one record per row
//   - jsonl: one JSON object per line, keys in field path order
package output

import (
	"fmt"
	"io"

	"github.com/bawdo/gaql/results"
)

// Formatter writes a batch of rows in one format.
type Formatter interface {
	// Format writes rows; truncated reports that more rows were dropped.
	Format(rows []results.Row, truncated bool) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Names lists the supported format names.
var Names = []string{"csv", "jsonl", "table"}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	switch name {
	case "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "jsonl":
		return NewJSONFormatter(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %v)", name, Names)
}

// columnsOf returns the header shared by a batch.
func columnsOf(rows []results.Row) []string {
	if len(rows) == 0 {
		return nil
	}
	return rows[0].Columns
}
