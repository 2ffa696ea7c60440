package nodes

// Table is the warehouse table mirroring a GAQL resource.
type Table struct {
	Name string
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) Accept(v Visitor) string { return v.VisitTable(t) }

// Col creates an Attribute (column reference) bound to this table.
func (t *Table) Col(name string) *Attribute {
	return NewAttribute(t, name)
}

// Attribute is a column of a resource table.
type Attribute struct {
	Predications
	Name     string
	Relation *Table
}

// NewAttribute creates an Attribute whose Predications refer back to it.
func NewAttribute(relation *Table, name string) *Attribute {
	a := &Attribute{Name: name, Relation: relation}
	a.Predications.self = a
	return a
}

func (a *Attribute) Accept(v Visitor) string { return v.VisitAttribute(a) }
