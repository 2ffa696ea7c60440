// Package nodes defines the AST a GAQL query is lowered to before it is
// rendered as warehouse SQL.
package nodes

// Node is the interface that all AST nodes implement.
type Node interface {
	Accept(visitor Visitor) string
}

// Visitor walks the AST and produces output. Concrete visitors (one per
// warehouse engine) implement this interface.
type Visitor interface {
	VisitTable(node *Table) string
	VisitAttribute(node *Attribute) string
	VisitLiteral(node *LiteralNode) string
	VisitComparison(node *ComparisonNode) string
	VisitUnary(node *UnaryNode) string
	VisitIn(node *InNode) string
	VisitBetween(node *BetweenNode) string
	VisitOrdering(node *OrderingNode) string
	VisitSelectCore(node *SelectCore) string
}

// Parameterizer is implemented by visitors that support parameterized queries.
// Callers use type assertion to extract collected parameters after SQL generation.
type Parameterizer interface {
	Params() []any
	Reset()
}

// Literal wraps a raw Go value into a LiteralNode. If val already
// implements Node, it is returned as-is.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	return &LiteralNode{Value: val}
}

// LiteralNode is a bound value: a string, number or boolean from the query.
type LiteralNode struct {
	Value any
}

func (l *LiteralNode) Accept(v Visitor) string { return v.VisitLiteral(l) }
