package nodes

// SelectCore holds the clauses of a translated GAQL query. A GAQL query
// reads from exactly one resource, so there are no joins.
type SelectCore struct {
	From        *Table
	Projections []Node
	Wheres      []Node
	Orders      []Node
	Limit       Node
}

func (sc *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(sc) }
