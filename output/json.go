package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/bawdo/gaql/results"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one object per row. Objects are built by hand because a
// map would lose the selected field order.
func (j *JSONFormatter) Format(rows []results.Row, _ bool) error {
	var buf bytes.Buffer
	for _, r := range rows {
		buf.Reset()
		buf.WriteByte('{')
		for i, col := range r.Columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return err
			}
			var val string
			if i < len(r.Values) {
				val = r.Values[i]
			}
			value, err := json.Marshal(val)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
		buf.WriteString("}\n")
		if _, err := j.writer.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
