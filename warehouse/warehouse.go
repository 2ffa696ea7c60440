// Package warehouse answers GAQL queries from a SQL copy of Google Ads
// reports. Each resource is a table and each field path is a column named
// with ColumnName.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/bawdo/gaql/results"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var driverName = map[string]string{
	"postgres": "pgx",
	"mysql":    "mysql",
	"sqlite":   "sqlite",
}

// Engines lists the supported database engines.
func Engines() []string {
	out := make([]string, 0, len(driverName))
	for engine := range driverName {
		out = append(out, engine)
	}
	slices.Sort(out)
	return out
}

// Warehouse runs translated GAQL against one database.
type Warehouse struct {
	db     *sql.DB
	dsn    string
	engine string
	now    func() time.Time

	resources []string
	fields    map[string][]string // resource -> field paths
}

// Open connects to dsn with the driver for engine and checks the
// connection.
func Open(ctx context.Context, engine, dsn string) (*Warehouse, error) {
	driver, ok := driverName[engine]
	if !ok {
		return nil, fmt.Errorf("warehouse: no driver for engine %q", engine)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("warehouse: open: %w", err)
	}
	if engine == "sqlite" {
		// Every connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("warehouse: ping: %w", err)
	}

	w := New(db, engine)
	w.dsn = dsn
	return w, nil
}

// New wraps an open database.
func New(db *sql.DB, engine string) *Warehouse {
	return &Warehouse{
		db:     db,
		engine: engine,
		now:    time.Now,
		fields: make(map[string][]string),
	}
}

// Close closes the database.
func (w *Warehouse) Close() error {
	return w.db.Close()
}

// Engine reports the database engine.
func (w *Warehouse) Engine() string { return w.engine }

// DSN reports the connection string with any password masked.
func (w *Warehouse) DSN() string { return sanitizeDSN(w.dsn) }

// SetClock replaces the clock used to resolve DURING date ranges.
func (w *Warehouse) SetClock(now func() time.Time) { w.now = now }

// Translate rewrites gaql for this warehouse's engine.
func (w *Warehouse) Translate(gaql string) (*Statement, error) {
	return Translate(w.engine, gaql, w.now())
}

// Query translates gaql and streams the matching rows. Columns are reported
// as GAQL field paths.
func (w *Warehouse) Query(ctx context.Context, gaql string) results.Seq {
	return func(yield func(results.Row, error) bool) {
		stmt, err := w.Translate(gaql)
		if err != nil {
			yield(results.Row{}, err)
			return
		}

		rows, err := w.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
		if err != nil {
			yield(results.Row{}, fmt.Errorf("warehouse: query: %w", err))
			return
		}
		defer func() { _ = rows.Close() }()

		columns, err := rows.Columns()
		if err != nil {
			yield(results.Row{}, fmt.Errorf("warehouse: columns: %w", err))
			return
		}
		names := stmt.Fields
		if len(names) != len(columns) {
			names = make([]string, len(columns))
			for i, c := range columns {
				names[i] = FieldPath(c)
			}
		}

		for rows.Next() {
			vals := make([]sql.NullString, len(columns))
			ptrs := make([]any, len(columns))
			for i := range vals {
				ptrs[i] = &vals[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				yield(results.Row{}, fmt.Errorf("warehouse: scan: %w", err))
				return
			}
			row := results.Row{Columns: names, Values: make([]string, len(columns))}
			for i, v := range vals {
				if v.Valid {
					row.Values[i] = v.String
				} else {
					row.Values[i] = "NULL"
				}
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(results.Row{}, fmt.Errorf("warehouse: rows: %w", err))
		}
	}
}

// Resources lists the tables of the warehouse. The list is loaded once.
func (w *Warehouse) Resources(ctx context.Context) ([]string, error) {
	if w.resources != nil {
		return w.resources, nil
	}
	var query string
	switch w.engine {
	case "postgres":
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = 'public' ORDER BY table_name"
	case "mysql":
		query = "SELECT table_name FROM information_schema.tables WHERE table_schema = DATABASE() ORDER BY table_name"
	case "sqlite":
		query = "SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name"
	default:
		return nil, fmt.Errorf("warehouse: unsupported engine: %s", w.engine)
	}
	tables, err := w.queryStringColumn(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("warehouse: list resources: %w", err)
	}
	if tables == nil {
		tables = []string{}
	}
	w.resources = tables
	return tables, nil
}

// Fields lists the field paths stored for resource.
func (w *Warehouse) Fields(ctx context.Context, resource string) ([]string, error) {
	if fields, ok := w.fields[resource]; ok {
		return fields, nil
	}
	var query string
	switch w.engine {
	case "postgres":
		query = "SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1 ORDER BY ordinal_position"
	case "mysql":
		query = "SELECT column_name FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ? ORDER BY ordinal_position"
	case "sqlite":
		query = "SELECT name FROM pragma_table_info(?)"
	default:
		return nil, fmt.Errorf("warehouse: unsupported engine: %s", w.engine)
	}
	cols, err := w.queryStringColumn(ctx, query, resource)
	if err != nil {
		return nil, fmt.Errorf("warehouse: list fields of %s: %w", resource, err)
	}
	fields := make([]string, len(cols))
	for i, c := range cols {
		fields[i] = FieldPath(c)
	}
	w.fields[resource] = fields
	return fields, nil
}

func (w *Warehouse) queryStringColumn(ctx context.Context, query string, params ...any) ([]string, error) {
	rows, err := w.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func sanitizeDSN(dsn string) string {
	// Try parsing as URL (postgres style).
	u, err := url.Parse(dsn)
	if err == nil && u.Scheme != "" && u.User != nil {
		if _, hasPass := u.User.Password(); hasPass {
			// Rebuild manually to avoid percent-encoding the mask.
			masked := u.Scheme + "://" + u.User.Username() + ":****@" + u.Host + u.Path
			if u.RawQuery != "" {
				masked += "?" + u.RawQuery
			}
			return masked
		}
		return dsn
	}

	// Try MySQL-style DSN: user:pass@tcp(host)/db
	if atIdx := strings.Index(dsn, "@"); atIdx > 0 {
		userPass := dsn[:atIdx]
		if colonIdx := strings.Index(userPass, ":"); colonIdx >= 0 {
			return userPass[:colonIdx+1] + "****" + dsn[atIdx:]
		}
	}

	return dsn
}
