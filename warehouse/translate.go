package warehouse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bawdo/gaql/grammar"
	"github.com/bawdo/gaql/managers"
	"github.com/bawdo/gaql/nodes"
	"github.com/bawdo/gaql/visitors"
)

// columnSeparator replaces the dots of a field path in column names, so
// ad_group.cost_micros is stored as ad_group__cost_micros and can be mapped
// back without ambiguity.
const columnSeparator = "__"

// ColumnName maps a GAQL field path to its warehouse column.
func ColumnName(path string) string {
	return strings.ReplaceAll(strings.ToLower(path), ".", columnSeparator)
}

// FieldPath maps a warehouse column back to its GAQL field path.
func FieldPath(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), columnSeparator, ".")
}

// UnsupportedError reports GAQL the warehouse cannot express in SQL.
type UnsupportedError struct {
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("warehouse: %s is not supported", e.Construct)
}

// Statement is a translated query.
type Statement struct {
	SQL  string
	Args []any
	// Inline is SQL with the arguments written in place, for display.
	Inline string
	// Fields are the selected GAQL field paths, in order.
	Fields []string
	// Resource is the table named by FROM.
	Resource string
}

var (
	wordPattern   = regexp.MustCompile(`^[\w.]+$`)
	numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
)

// piece is a token, or a quoted string literal when literal is set.
type piece struct {
	tok     grammar.Token
	literal bool
	value   string
}

// Translate rewrites a GAQL query into SQL for engine. Field paths become
// columns of the resource table. DURING resolves against now.
func Translate(engine, gaql string, now time.Time) (*Statement, error) {
	pieces, err := split(gaql)
	if err != nil {
		return nil, err
	}
	p := &parser{pieces: pieces, now: now}
	if err := p.parse(); err != nil {
		return nil, err
	}

	v, err := visitors.New(engine, visitors.WithParams())
	if err != nil {
		return nil, err
	}
	sql, args, err := p.m.ToSQL(v)
	if err != nil {
		return nil, err
	}
	iv, err := visitors.New(engine, visitors.WithoutParams())
	if err != nil {
		return nil, err
	}
	inline, _, err := p.m.ToSQL(iv)
	if err != nil {
		return nil, err
	}

	return &Statement{
		SQL:      sql,
		Args:     args,
		Inline:   inline,
		Fields:   p.fields,
		Resource: p.m.Core.From.Name,
	}, nil
}

// split separates quoted string literals from the rest of the query and
// tokenizes the rest. Whitespace is dropped.
func split(gaql string) ([]piece, error) {
	var pieces []piece
	code := func(s string) {
		for _, tok := range joinWords(grammar.Tokenize(s)) {
			if tok.Kind != grammar.Whitespace {
				pieces = append(pieces, piece{tok: tok})
			}
		}
	}
	start := 0
	for i := 0; i < len(gaql); i++ {
		q := gaql[i]
		if q != '\'' && q != '"' {
			continue
		}
		code(gaql[start:i])
		var b strings.Builder
		j := i + 1
		for ; j < len(gaql) && gaql[j] != q; j++ {
			if gaql[j] == '\\' && j+1 < len(gaql) {
				j++
			}
			b.WriteByte(gaql[j])
		}
		if j >= len(gaql) {
			return nil, fmt.Errorf("warehouse: unterminated string literal at offset %d", i)
		}
		pieces = append(pieces, piece{literal: true, value: b.String()})
		i = j
		start = j + 1
	}
	code(gaql[start:])
	return pieces, nil
}

// joinWords merges adjacent tokens that belong together for translation.
// The highlighting rules match literals without word boundaries, so
// "income_range_view" scans as the operator "in" followed by a path, ">="
// scans as two symbols and "-5" as a stray "-" before a number.
func joinWords(tokens []grammar.Token) []grammar.Token {
	var out []grammar.Token
	for _, tok := range tokens {
		n := len(out)
		if n > 0 {
			prev := out[n-1]
			switch {
			case wordPattern.MatchString(tok.Text) && wordPattern.MatchString(prev.Text):
				out[n-1] = grammar.Token{Text: prev.Text + tok.Text, Kind: grammar.AttributePath}
				continue
			case tok.Text == "=" && (prev.Text == ">" || prev.Text == "<"):
				out[n-1] = grammar.Token{Text: prev.Text + tok.Text, Kind: grammar.ComparisonSymbol}
				continue
			case prev.Kind == grammar.Error && prev.Text == "-" && numberPattern.MatchString(tok.Text):
				out[n-1] = grammar.Token{Text: "-" + tok.Text, Kind: grammar.AttributePath}
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

// parser lowers the pieces of one query into a SelectManager. Clauses must
// appear in GAQL order: SELECT, FROM, WHERE, ORDER BY, LIMIT.
type parser struct {
	pieces []piece
	pos    int
	now    time.Time
	clause string
	fields []string
	table  *nodes.Table
	m      *managers.SelectManager
}

func (p *parser) peek() (piece, bool) {
	if p.pos >= len(p.pieces) {
		return piece{}, false
	}
	return p.pieces[p.pos], true
}

func (p *parser) next() (piece, bool) {
	pc, ok := p.peek()
	if ok {
		p.pos++
	}
	return pc, ok
}

// accept consumes the next piece if it is the keyword kw or the
// punctuation kw.
func (p *parser) accept(kw string) bool {
	pc, ok := p.peek()
	if !ok || pc.literal || !strings.EqualFold(pc.tok.Text, kw) {
		return false
	}
	switch pc.tok.Kind {
	case grammar.Keyword, grammar.Punctuation, grammar.Error:
		p.pos++
		return true
	}
	return false
}

func isWord(pc piece) bool {
	return !pc.literal && pc.tok.Kind == grammar.AttributePath
}

func (p *parser) unexpected(pc piece) error {
	switch {
	case pc.literal && p.clause != "WHERE":
		return fmt.Errorf("warehouse: string literal outside WHERE")
	case pc.literal:
		return fmt.Errorf("warehouse: unexpected string literal %q in %s", pc.value, p.clause)
	case pc.tok.Kind == grammar.Error:
		return fmt.Errorf("warehouse: unexpected character %q", pc.tok.Text)
	case pc.tok.Kind == grammar.DateFunction:
		return &UnsupportedError{Construct: strings.ToUpper(pc.tok.Text) + " outside DURING"}
	}
	return fmt.Errorf("warehouse: unexpected %q in %s", pc.tok.Text, p.clause)
}

func (p *parser) parse() error {
	first, ok := p.peek()
	if !p.accept("SELECT") {
		if !ok {
			return fmt.Errorf("warehouse: query must start with SELECT")
		}
		text := first.tok.Text
		if first.literal {
			text = first.value
		}
		return fmt.Errorf("warehouse: query must start with SELECT, got %q", text)
	}
	p.clause = "SELECT"
	if err := p.selectList(); err != nil {
		return err
	}
	if err := p.from(); err != nil {
		return err
	}
	if p.accept("WHERE") {
		p.clause = "WHERE"
		if err := p.where(); err != nil {
			return err
		}
	}
	if p.accept("ORDER BY") {
		p.clause = "ORDER BY"
		if err := p.orderBy(); err != nil {
			return err
		}
	}
	if p.accept("LIMIT") {
		p.clause = "LIMIT"
		if err := p.limit(); err != nil {
			return err
		}
	}
	if pc, ok := p.next(); ok {
		return p.unexpected(pc)
	}
	return nil
}

func (p *parser) selectList() error {
	for {
		pc, ok := p.peek()
		if !ok || (!pc.literal && pc.tok.Kind == grammar.Keyword && strings.EqualFold(pc.tok.Text, "FROM")) {
			break
		}
		p.pos++
		if !isWord(pc) {
			return p.unexpected(pc)
		}
		p.fields = append(p.fields, strings.ToLower(pc.tok.Text))
		if !p.accept(",") {
			break
		}
	}
	if len(p.fields) == 0 {
		return fmt.Errorf("warehouse: query selects no fields")
	}
	return nil
}

func (p *parser) from() error {
	if !p.accept("FROM") {
		if pc, ok := p.peek(); ok {
			return p.unexpected(pc)
		}
		return fmt.Errorf("warehouse: query has no FROM resource")
	}
	p.clause = "FROM"
	pc, ok := p.next()
	if !ok {
		return fmt.Errorf("warehouse: query has no FROM resource")
	}
	if !isWord(pc) {
		return p.unexpected(pc)
	}
	resource := strings.ToLower(pc.tok.Text)
	if p.accept(",") {
		other, _ := p.next()
		return fmt.Errorf("warehouse: FROM takes a single resource, got %q and %q", resource, other.tok.Text)
	}

	p.table = nodes.NewTable(resource)
	p.m = managers.NewSelectManager(p.table)
	for _, f := range p.fields {
		p.m.Select(p.table.Col(ColumnName(f)))
	}
	return nil
}

// column reads a field path and returns its column.
func (p *parser) column(missing string) (*nodes.Attribute, error) {
	pc, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("warehouse: %s", missing)
	}
	if !isWord(pc) {
		return nil, p.unexpected(pc)
	}
	return p.table.Col(ColumnName(pc.tok.Text)), nil
}

func (p *parser) where() error {
	for {
		cond, err := p.condition()
		if err != nil {
			return err
		}
		p.m.Where(cond)
		if !p.accept("AND") {
			return nil
		}
	}
}

func (p *parser) condition() (nodes.Node, error) {
	col, err := p.column("WHERE needs a condition")
	if err != nil {
		return nil, err
	}
	pc, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("warehouse: condition on %q needs an operator", FieldPath(col.Name))
	}
	if pc.literal {
		return nil, p.unexpected(pc)
	}

	switch pc.tok.Kind {
	case grammar.ComparisonSymbol:
		v, err := p.value(pc.tok.Text)
		if err != nil {
			return nil, err
		}
		return compare(col, pc.tok.Text, v), nil
	case grammar.Operator:
		return p.operator(col, strings.ToUpper(pc.tok.Text))
	}
	return nil, p.unexpected(pc)
}

func compare(col *nodes.Attribute, symbol string, v any) nodes.Node {
	switch symbol {
	case "!=":
		return col.NotEq(v)
	case ">":
		return col.Gt(v)
	case ">=":
		return col.GtEq(v)
	case "<":
		return col.Lt(v)
	case "<=":
		return col.LtEq(v)
	}
	return col.Eq(v)
}

func (p *parser) operator(col *nodes.Attribute, op string) (nodes.Node, error) {
	switch op {
	case "CONTAINS ANY", "CONTAINS ALL", "CONTAINS NONE":
		return nil, &UnsupportedError{Construct: op}
	case "IS NULL":
		return col.IsNull(), nil
	case "IS NOT NULL":
		return col.IsNotNull(), nil
	case "IN", "NOT IN":
		vals, err := p.list(op)
		if err != nil {
			return nil, err
		}
		if op == "NOT IN" {
			return col.NotIn(vals...), nil
		}
		return col.In(vals...), nil
	case "DURING":
		return p.during(col)
	case "BETWEEN":
		low, err := p.value(op)
		if err != nil {
			return nil, err
		}
		if !p.accept("AND") {
			return nil, fmt.Errorf("warehouse: BETWEEN needs AND between its bounds")
		}
		high, err := p.value(op)
		if err != nil {
			return nil, err
		}
		return col.Between(low, high), nil
	}

	v, err := p.value(op)
	if err != nil {
		return nil, err
	}
	switch op {
	case "LIKE":
		return col.Like(v), nil
	case "NOT LIKE":
		return col.NotLike(v), nil
	case "REGEXP_MATCH":
		return col.MatchesRegexp(v), nil
	case "NOT REGEXP_MATCH":
		return col.DoesNotMatchRegexp(v), nil
	}
	return nil, &UnsupportedError{Construct: op}
}

func (p *parser) during(col *nodes.Attribute) (nodes.Node, error) {
	pc, ok := p.next()
	switch {
	case !ok:
		return nil, fmt.Errorf("warehouse: DURING needs a date function")
	case pc.literal:
		return nil, fmt.Errorf("warehouse: DURING needs a date function, got a string literal")
	case pc.tok.Kind != grammar.DateFunction:
		return nil, fmt.Errorf("warehouse: DURING needs a date function, got %q", pc.tok.Text)
	}
	start, end, ok := grammar.DateRange(pc.tok.Text, p.now)
	if !ok {
		return nil, fmt.Errorf("warehouse: unknown date function %q", pc.tok.Text)
	}
	return col.Between(start.Format(time.DateOnly), end.Format(time.DateOnly)), nil
}

// value reads the right-hand side of op: a quoted string, a number, a
// boolean or a bare word such as an enum name, which binds as a string.
func (p *parser) value(op string) (any, error) {
	pc, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("warehouse: %s needs a value", op)
	}
	if pc.literal {
		return pc.value, nil
	}
	if !isWord(pc) {
		return nil, p.unexpected(pc)
	}
	return bareValue(pc.tok.Text), nil
}

// list reads a parenthesised, comma separated list of values.
func (p *parser) list(op string) ([]any, error) {
	if !p.accept("(") {
		return nil, fmt.Errorf("warehouse: %s needs a parenthesised list", op)
	}
	var vals []any
	for {
		v, err := p.value(op)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
		if p.accept(")") {
			return vals, nil
		}
		if !p.accept(",") {
			return nil, fmt.Errorf("warehouse: %s list is not closed", op)
		}
	}
}

// bareValue interprets an unquoted word: numbers and booleans keep their
// type, anything else is a string.
func bareValue(w string) any {
	if numberPattern.MatchString(w) {
		if n, err := strconv.ParseInt(w, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(w, 64); err == nil {
			return f
		}
	}
	switch strings.ToUpper(w) {
	case "TRUE":
		return true
	case "FALSE":
		return false
	}
	return w
}

func (p *parser) orderBy() error {
	for {
		col, err := p.column("ORDER BY needs a field")
		if err != nil {
			return err
		}
		switch {
		case p.accept("DESC"):
			p.m.Order(col.Desc())
		default:
			p.accept("ASC")
			p.m.Order(col.Asc())
		}
		if !p.accept(",") {
			return nil
		}
	}
}

func (p *parser) limit() error {
	pc, ok := p.next()
	if !ok {
		return fmt.Errorf("warehouse: LIMIT needs a non-negative integer")
	}
	text := pc.tok.Text
	if pc.literal {
		text = pc.value
	}
	n, err := strconv.Atoi(text)
	if pc.literal || err != nil || n < 0 {
		return fmt.Errorf("warehouse: LIMIT needs a non-negative integer, got %q", text)
	}
	p.m.Limit(n)
	return nil
}
