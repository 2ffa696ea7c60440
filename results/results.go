// Package results carries query rows from a backend to the console.
package results

import "iter"

// Row is one result row. Values[i] holds the value of Columns[i]; columns
// are GAQL field paths in the order the query selected them.
type Row struct {
	Columns []string
	Values  []string
}

// Get returns the value for a field path.
func (r Row) Get(column string) (string, bool) {
	for i, c := range r.Columns {
		if c == column && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return "", false
}

// Seq streams rows. A producer yields a zero Row with a non-nil error and
// then stops.
type Seq = iter.Seq2[Row, error]

// FromSlice streams rows from memory.
func FromSlice(rows []Row) Seq {
	return func(yield func(Row, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Fail streams a single error.
func Fail(err error) Seq {
	return func(yield func(Row, error) bool) {
		yield(Row{}, err)
	}
}

// Collect drains seq, keeping at most limit rows (0 means no limit).
// truncated reports whether rows were left unread.
func Collect(seq Seq, limit int) (rows []Row, truncated bool, err error) {
	for r, err := range seq {
		if err != nil {
			return rows, false, err
		}
		if limit > 0 && len(rows) >= limit {
			return rows, true, nil
		}
		rows = append(rows, r)
	}
	return rows, false, nil
}
