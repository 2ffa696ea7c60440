package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/bawdo/gaql/ads"
	"github.com/bawdo/gaql/grammar"
	"github.com/bawdo/gaql/internal/config"
	"github.com/bawdo/gaql/output"
	"github.com/bawdo/gaql/results"
	"github.com/bawdo/gaql/warehouse"
)

const maxRows = 1000

var errNotConnected = errors.New(`not connected (use '\connect <dsn>' first)`)

var backendNames = []string{config.BackendAds, config.BackendWarehouse}

// Session holds the console state: which backend answers queries, the
// warehouse connection and how results are printed.
type Session struct {
	cfg      *config.Config
	backend  string
	ads      Backend              // created on first use from cfg
	wh       *warehouse.Warehouse // nil when disconnected
	engine   string
	lastDSN  string // remembers the previous DSN for reconnect
	format   string
	colWidth int            // table cell width, 0 for the library default
	commands []commandEntry // command registry (sorted by prefix length desc)
	out      io.Writer      // destination for console output (default os.Stdout)
}

// NewSession creates a session for cfg. No connection is opened.
func NewSession(cfg *config.Config) *Session {
	s := &Session{
		cfg:     cfg,
		backend: cfg.Backend,
		engine:  cfg.Warehouse.Engine,
		lastDSN: cfg.Warehouse.DSN,
		format:  "table",
		out:     os.Stdout,
	}
	if s.backend == "" {
		s.backend = config.BackendAds
	}
	if s.engine == "" {
		s.engine = config.DefaultEngine
	}
	s.initCommands()
	return s
}

// Close releases the warehouse connection, if any.
func (s *Session) Close() error {
	if s.wh == nil {
		return nil
	}
	err := s.wh.Close()
	s.wh = nil
	return err
}

// Execute runs a backslash command or submits a GAQL query.
func (s *Session) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if cmd, ok := strings.CutPrefix(line, `\`); ok {
		return s.dispatch(cmd)
	}
	return s.runQuery(ctx, line)
}

func (s *Session) dispatch(line string) error {
	lower := strings.ToLower(line)
	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(strings.TrimSpace(line[len(cmd.prefix):]))
			}
		} else if lower == cmd.prefix {
			return cmd.handler("")
		}
	}

	word := `\`
	if fields := strings.Fields(line); len(fields) > 0 {
		word += fields[0]
	}
	return fmt.Errorf(`unknown command: %s (type \help for commands)`, word)
}

// current returns the backend queries go to.
func (s *Session) current() (Backend, error) {
	if s.backend == config.BackendWarehouse {
		if s.wh == nil {
			return nil, errNotConnected
		}
		return s.wh, nil
	}
	if s.ads == nil {
		cfg := *s.cfg
		cfg.Backend = config.BackendAds
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		s.ads = newAdsClient(&cfg)
	}
	return s.ads, nil
}

func newAdsClient(cfg *config.Config) *ads.Client {
	return ads.NewClient(context.Background(), cfg.ClientCustomerID, cfg.DeveloperToken,
		ads.Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RefreshToken: cfg.RefreshToken,
		},
		ads.WithLoginCustomerID(cfg.LoginCustomerID),
		ads.WithVersion(cfg.APIVersion),
	)
}

// runQuery sends gaql to the current backend and prints at most maxRows
// rows. Cancelling ctx stops the stream.
func (s *Session) runQuery(ctx context.Context, gaql string) error {
	gaql = strings.TrimSpace(strings.TrimSuffix(gaql, ";"))
	b, err := s.current()
	if err != nil {
		return err
	}
	f, err := output.New(s.format, s.out)
	if err != nil {
		return err
	}
	if t, ok := f.(*output.TableFormatter); ok {
		t.ColWidth = s.colWidth
	}

	rows, truncated, err := results.Collect(b.Query(ctx, gaql), maxRows)
	if err != nil {
		return err
	}
	return f.Format(rows, truncated)
}

// --- Command handlers ---

func (s *Session) cmdBackend(args string) error {
	if args == "" {
		_, _ = fmt.Fprintf(s.out, "  Backend: %s\n", s.backend)
		return nil
	}
	name := strings.ToLower(args)
	if !slices.Contains(backendNames, name) {
		return fmt.Errorf("unknown backend %q (want one of %v)", args, backendNames)
	}
	s.backend = name
	_, _ = fmt.Fprintf(s.out, "  Backend set to %s\n", name)
	if name == config.BackendWarehouse && s.wh == nil {
		_, _ = fmt.Fprintln(s.out, `  Not connected yet, use '\connect <dsn>'`)
	}
	return nil
}

func (s *Session) cmdEngine(args string) error {
	if args == "" {
		_, _ = fmt.Fprintf(s.out, "  Engine: %s\n", s.engine)
		return nil
	}
	engine := strings.ToLower(args)
	if !slices.Contains(warehouse.Engines(), engine) {
		return fmt.Errorf("unknown engine %q (want one of %v)", args, warehouse.Engines())
	}
	if s.wh != nil && s.wh.Engine() != engine {
		return fmt.Errorf(`connected to %s (use '\disconnect' first)`, s.wh.Engine())
	}
	s.engine = engine
	_, _ = fmt.Fprintf(s.out, "  Engine set to %s\n", engine)
	return nil
}

func (s *Session) cmdConnect(dsn string) error {
	if s.wh != nil {
		return fmt.Errorf(`already connected to %s (use '\disconnect' first)`, s.wh.DSN())
	}
	if dsn == "" {
		dsn = s.lastDSN
	}
	if dsn == "" {
		return errors.New(`usage: \connect <dsn>`)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	wh, err := warehouse.Open(ctx, s.engine, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	s.wh = wh
	s.lastDSN = dsn
	s.backend = config.BackendWarehouse
	_, _ = fmt.Fprintf(s.out, "  Connected to %s (%s)\n", wh.DSN(), s.engine)
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.wh == nil {
		return errors.New("not connected")
	}
	dsn := s.wh.DSN()
	if err := s.Close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	_, _ = fmt.Fprintf(s.out, "  Disconnected from %s\n", dsn)
	return nil
}

func (s *Session) cmdFormat(args string) error {
	if args == "" {
		_, _ = fmt.Fprintf(s.out, "  Format: %s\n", s.format)
		return nil
	}
	name := strings.ToLower(args)
	if !slices.Contains(output.Names, name) {
		return fmt.Errorf("unknown format %q (want one of %v)", args, output.Names)
	}
	s.format = name
	_, _ = fmt.Fprintf(s.out, "  Format set to %s\n", name)
	return nil
}

func (s *Session) cmdTokens(gaql string) error {
	if gaql == "" {
		return errors.New(`usage: \tokens <gaql>`)
	}
	for _, tok := range grammar.Tokenize(gaql) {
		_, _ = fmt.Fprintf(s.out, "  %-18s %q\n", tok.Kind, tok.Text)
	}
	return nil
}

// cmdSQL shows the SQL a GAQL query becomes on the warehouse, with the
// parameters written in place.
func (s *Session) cmdSQL(gaql string) error {
	if gaql == "" {
		return errors.New(`usage: \sql <gaql>`)
	}
	gaql = strings.TrimSpace(strings.TrimSuffix(gaql, ";"))
	var stmt *warehouse.Statement
	var err error
	if s.wh != nil {
		stmt, err = s.wh.Translate(gaql)
	} else {
		stmt, err = warehouse.Translate(s.engine, gaql, time.Now())
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  %s;\n", stmt.Inline)
	if len(stmt.Args) > 0 {
		_, _ = fmt.Fprintf(s.out, "  Params: %v\n", stmt.Args)
	}
	return nil
}

func (s *Session) cmdResources() error {
	if s.wh == nil {
		return errNotConnected
	}
	resources, err := s.wh.Resources(context.Background())
	if err != nil {
		return err
	}
	if len(resources) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No resources")
		return nil
	}
	for _, r := range resources {
		_, _ = fmt.Fprintf(s.out, "  %s\n", r)
	}
	return nil
}

func (s *Session) cmdFields(resource string) error {
	if resource == "" {
		return errors.New(`usage: \fields <resource>`)
	}
	if s.wh == nil {
		return errNotConnected
	}
	fields, err := s.wh.Fields(context.Background(), strings.ToLower(resource))
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return fmt.Errorf("unknown resource %q", resource)
	}
	for _, f := range fields {
		_, _ = fmt.Fprintf(s.out, "  %s\n", f)
	}
	return nil
}

func (s *Session) cmdStatus() {
	_, _ = fmt.Fprintf(s.out, "  Backend:   %s\n", s.backend)
	if s.backend == config.BackendAds {
		customer, version := s.cfg.ClientCustomerID, s.cfg.APIVersion
		if c, ok := s.ads.(*ads.Client); ok {
			customer, version = c.CustomerID(), c.Version()
		}
		if version == "" {
			version = ads.DefaultVersion
		}
		_, _ = fmt.Fprintf(s.out, "  Customer:  %s\n", orNone(customer))
		_, _ = fmt.Fprintf(s.out, "  Version:   %s\n", version)
	}
	_, _ = fmt.Fprintf(s.out, "  Engine:    %s\n", s.engine)
	if s.wh != nil {
		_, _ = fmt.Fprintf(s.out, "  Warehouse: %s\n", s.wh.DSN())
	} else {
		_, _ = fmt.Fprintln(s.out, "  Warehouse: not connected")
	}
	_, _ = fmt.Fprintf(s.out, "  Format:    %s\n", s.format)
	if s.cfg.Path != "" {
		_, _ = fmt.Fprintf(s.out, "  Config:    %s\n", s.cfg.Path)
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, `
  Queries:
    <gaql>                    Run a GAQL query (a trailing ; is ignored)
    <line> \                  Continue the query on the next line

  Backends:
    \backend [ads|warehouse]  Show or switch the query backend
    \engine [name]            Show or set the warehouse engine (postgres, mysql, sqlite)
    \connect [dsn]            Connect to a warehouse (reuses the last DSN if omitted)
    \disconnect               Close the warehouse connection
    \resources                List warehouse resources
    \fields <resource>        List the fields stored for a resource

  Output:
    \format [table|csv|jsonl] Show or set the result format
    \tokens <gaql>            Show how a query is tokenized
    \sql <gaql>               Show the SQL a query runs on the warehouse
    \status                   Show the session settings

  Other:
    \help                     Show this help
    \quit                     Leave the console (or press ^D)`)
}

// schemaWords lists warehouse resources and their field paths for word
// completion. Lookups are best-effort.
func (s *Session) schemaWords() []string {
	if s.wh == nil {
		return nil
	}
	ctx := context.Background()
	resources, err := s.wh.Resources(ctx)
	if err != nil {
		return nil
	}
	words := slices.Clone(resources)
	for _, r := range resources {
		fields, err := s.wh.Fields(ctx, r)
		if err != nil {
			continue
		}
		words = append(words, fields...)
	}
	return words
}
