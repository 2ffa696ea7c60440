package nodes

// Predications provides comparison methods to types that embed it.
// The self field must be set to the embedding node so that comparisons
// reference the correct left-hand side.
type Predications struct {
	self Node
}

func (p Predications) compare(val any, op ComparisonOp) *ComparisonNode {
	return &ComparisonNode{Left: p.self, Right: Literal(val), Op: op}
}

// Eq creates an equality comparison: self = val.
func (p Predications) Eq(val any) *ComparisonNode { return p.compare(val, OpEq) }

// NotEq creates an inequality comparison: self != val.
func (p Predications) NotEq(val any) *ComparisonNode { return p.compare(val, OpNotEq) }

// Gt creates a greater-than comparison: self > val.
func (p Predications) Gt(val any) *ComparisonNode { return p.compare(val, OpGt) }

// GtEq creates a greater-than-or-equal comparison: self >= val.
func (p Predications) GtEq(val any) *ComparisonNode { return p.compare(val, OpGtEq) }

// Lt creates a less-than comparison: self < val.
func (p Predications) Lt(val any) *ComparisonNode { return p.compare(val, OpLt) }

// LtEq creates a less-than-or-equal comparison: self <= val.
func (p Predications) LtEq(val any) *ComparisonNode { return p.compare(val, OpLtEq) }

// Like creates a LIKE comparison: self LIKE val.
func (p Predications) Like(val any) *ComparisonNode { return p.compare(val, OpLike) }

// NotLike creates a NOT LIKE comparison: self NOT LIKE val.
func (p Predications) NotLike(val any) *ComparisonNode { return p.compare(val, OpNotLike) }

// MatchesRegexp creates a regular expression match. GAQL spells it
// REGEXP_MATCH; each engine renders its own operator.
func (p Predications) MatchesRegexp(pattern any) *ComparisonNode {
	return p.compare(pattern, OpRegexp)
}

// DoesNotMatchRegexp is the negation of MatchesRegexp.
func (p Predications) DoesNotMatchRegexp(pattern any) *ComparisonNode {
	return p.compare(pattern, OpNotRegexp)
}

// In creates an IN predicate: self IN (vals...).
func (p Predications) In(vals ...any) *InNode {
	return &InNode{Expr: p.self, Vals: literals(vals)}
}

// NotIn creates a NOT IN predicate: self NOT IN (vals...).
func (p Predications) NotIn(vals ...any) *InNode {
	return &InNode{Expr: p.self, Vals: literals(vals), Negate: true}
}

// Between creates a BETWEEN predicate: self BETWEEN low AND high.
func (p Predications) Between(low, high any) *BetweenNode {
	return &BetweenNode{Expr: p.self, Low: Literal(low), High: Literal(high)}
}

// IsNull creates a null check: self IS NULL.
func (p Predications) IsNull() *UnaryNode {
	return &UnaryNode{Expr: p.self, Op: OpIsNull}
}

// IsNotNull creates a not-null check: self IS NOT NULL.
func (p Predications) IsNotNull() *UnaryNode {
	return &UnaryNode{Expr: p.self, Op: OpIsNotNull}
}

// Asc creates an ascending ordering.
func (p Predications) Asc() *OrderingNode {
	return &OrderingNode{Expr: p.self, Direction: Asc}
}

// Desc creates a descending ordering.
func (p Predications) Desc() *OrderingNode {
	return &OrderingNode{Expr: p.self, Direction: Desc}
}

func literals(vals []any) []Node {
	wrapped := make([]Node, len(vals))
	for i, v := range vals {
		wrapped[i] = Literal(v)
	}
	return wrapped
}
