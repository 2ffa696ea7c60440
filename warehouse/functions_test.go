package warehouse

import (
	"database/sql/driver"
	"testing"

	"github.com/bawdo/gaql/internal/testutil"
)

func TestSQLiteRegexp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []driver.Value
		want driver.Value
	}{
		{"match", []driver.Value{"^Br", "Brand"}, true},
		{"no match", []driver.Value{"^Br", "Generic"}, false},
		{"blob value", []driver.Value{"and$", []byte("Brand")}, true},
		{"number value", []driver.Value{"^1", int64(12)}, true},
		{"null value", []driver.Value{"^Br", nil}, nil},
		{"null pattern", []driver.Value{nil, "Brand"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := sqliteRegexp(nil, tt.args)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestSQLiteRegexpBadPattern(t *testing.T) {
	t.Parallel()
	_, err := sqliteRegexp(nil, []driver.Value{"(", "Brand"})
	testutil.AssertError(t, err)
}
