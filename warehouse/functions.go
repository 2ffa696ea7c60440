package warehouse

import (
	"database/sql/driver"
	"fmt"
	"regexp"

	"modernc.org/sqlite"
)

// SQLite has no REGEXP implementation of its own; it calls a user function
// named regexp with the pattern first.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("regexp", 2, sqliteRegexp)
}

func sqliteRegexp(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if args[0] == nil || args[1] == nil {
		return nil, nil
	}
	re, err := regexp.Compile(asText(args[0]))
	if err != nil {
		return nil, fmt.Errorf("warehouse: REGEXP_MATCH pattern: %w", err)
	}
	return re.MatchString(asText(args[1])), nil
}

func asText(v driver.Value) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(v)
}
