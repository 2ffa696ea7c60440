// Package managers builds query ASTs with a fluent API and renders them
// through a visitor.
package managers

import (
	"errors"

	"github.com/bawdo/gaql/nodes"
)

// SelectManager builds the SelectCore for one GAQL resource.
type SelectManager struct {
	Core *nodes.SelectCore
}

// NewSelectManager creates a SelectManager reading from the given table.
func NewSelectManager(from *nodes.Table) *SelectManager {
	return &SelectManager{
		Core: &nodes.SelectCore{From: from},
	}
}

// Select appends projections.
func (m *SelectManager) Select(projections ...nodes.Node) *SelectManager {
	m.Core.Projections = append(m.Core.Projections, projections...)
	return m
}

// Where adds conditions; multiple calls are combined with AND.
func (m *SelectManager) Where(conditions ...nodes.Node) *SelectManager {
	m.Core.Wheres = append(m.Core.Wheres, conditions...)
	return m
}

// Order appends ORDER BY terms.
func (m *SelectManager) Order(orderings ...nodes.Node) *SelectManager {
	m.Core.Orders = append(m.Core.Orders, orderings...)
	return m
}

// Limit sets the LIMIT value.
func (m *SelectManager) Limit(n int) *SelectManager {
	m.Core.Limit = nodes.Literal(n)
	return m
}

// ToSQL renders the query and returns the bind parameters the visitor
// collected, if it collects any.
func (m *SelectManager) ToSQL(v nodes.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}

func (m *SelectManager) toSQLCore(v nodes.Visitor) (string, error) {
	if m.Core.From == nil {
		return "", errors.New("managers: query has no FROM resource")
	}
	if len(m.Core.Projections) == 0 {
		return "", errors.New("managers: query selects no fields")
	}
	return m.Core.Accept(v), nil
}

// toSQLParams resets a parameterizer (if present), calls the provided
// generate function, and returns SQL + params.
func toSQLParams(v nodes.Visitor, generate func(nodes.Visitor) (string, error)) (string, []any, error) {
	p, _ := v.(nodes.Parameterizer)
	if p != nil {
		p.Reset()
	}

	sql, err := generate(v)
	if err != nil {
		return "", nil, err
	}

	if p != nil {
		return sql, p.Params(), nil
	}
	return sql, nil, nil
}
