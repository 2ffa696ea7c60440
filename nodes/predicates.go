package nodes

// ComparisonOp represents a binary comparison operator.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpLike
	OpNotLike
	OpRegexp
	OpNotRegexp
)

// ComparisonNode represents a binary comparison: Left Op Right.
type ComparisonNode struct {
	Left  Node
	Right Node
	Op    ComparisonOp
}

func (n *ComparisonNode) Accept(v Visitor) string { return v.VisitComparison(n) }

// UnaryOp is a postfix predicate operator.
type UnaryOp int

const (
	OpIsNull UnaryOp = iota
	OpIsNotNull
)

// UnaryNode represents Expr IS [NOT] NULL.
type UnaryNode struct {
	Expr Node
	Op   UnaryOp
}

func (n *UnaryNode) Accept(v Visitor) string { return v.VisitUnary(n) }

// InNode represents Expr [NOT] IN (Vals...).
type InNode struct {
	Expr   Node
	Vals   []Node
	Negate bool
}

func (n *InNode) Accept(v Visitor) string { return v.VisitIn(n) }

// BetweenNode represents Expr BETWEEN Low AND High. DURING lowers to it.
type BetweenNode struct {
	Expr Node
	Low  Node
	High Node
}

func (n *BetweenNode) Accept(v Visitor) string { return v.VisitBetween(n) }

// Direction is the sort direction of an ORDER BY term.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// OrderingNode represents one ORDER BY term.
type OrderingNode struct {
	Expr      Node
	Direction Direction
}

func (n *OrderingNode) Accept(v Visitor) string { return v.VisitOrdering(n) }
