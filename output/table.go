package output

import (
	"fmt"
	"io"

	"github.com/bawdo/gaql/results"
	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as an ASCII table.
type TableFormatter struct {
	writer io.Writer
	// ColWidth caps cell width before wrapping; 0 keeps the library default.
	ColWidth int
}

// NewTableFormatter creates a table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes rows as a table followed by a row count.
func (f *TableFormatter) Format(rows []results.Row, truncated bool) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(f.writer, "(0 rows)")
		return err
	}

	table := tablewriter.NewWriter(f.writer)
	// Field paths are shown verbatim; the default would upper-case them and
	// turn dots into spaces.
	table.SetAutoFormatHeaders(false)
	table.SetHeader(columnsOf(rows))
	if f.ColWidth > 0 {
		table.SetColWidth(f.ColWidth)
	}
	for _, r := range rows {
		table.Append(r.Values)
	}
	table.Render()

	if len(rows) == 1 {
		_, _ = fmt.Fprintln(f.writer, "(1 row)")
	} else {
		_, _ = fmt.Fprintf(f.writer, "(%d rows)\n", len(rows))
	}
	if truncated {
		_, _ = fmt.Fprintf(f.writer, "(truncated at %d rows)\n", len(rows))
	}
	return nil
}
