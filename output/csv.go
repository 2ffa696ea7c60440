package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bawdo/gaql/results"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header row and one record per row. Truncation is not
// marked, so the output stays machine readable.
func (c *CSVFormatter) Format(rows []results.Row, _ bool) error {
	csvWriter := csv.NewWriter(c.writer)

	if header := columnsOf(rows); header != nil {
		if err := csvWriter.Write(header); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if err := csvWriter.Write(r.Values); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
