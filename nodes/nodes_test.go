package nodes

import "testing"

// --- Table / Attribute creation ---

func TestTableCreatesAttributes(t *testing.T) {
	t.Parallel()
	campaign := NewTable("campaign")
	col := campaign.Col("campaign__id")

	if col.Name != "campaign__id" {
		t.Errorf("expected col name %q, got %q", "campaign__id", col.Name)
	}
	if col.Relation != campaign {
		t.Error("expected attribute relation to be the campaign table")
	}
}

// --- Literals ---

func TestLiteralWrapsRawValues(t *testing.T) {
	t.Parallel()
	for _, val := range []any{"ENABLED", int64(10), 0.5, true} {
		lit, ok := Literal(val).(*LiteralNode)
		if !ok {
			t.Fatalf("expected *LiteralNode for %v", val)
		}
		if lit.Value != val {
			t.Errorf("expected %v, got %v", val, lit.Value)
		}
	}
}

func TestLiteralPassesThroughNodes(t *testing.T) {
	t.Parallel()
	col := NewTable("campaign").Col("campaign__id")
	if Literal(col) != Node(col) {
		t.Error("expected Literal to return the node unchanged")
	}
}

// --- Predications ---

func TestComparisons(t *testing.T) {
	t.Parallel()
	col := NewTable("campaign").Col("metrics__clicks")
	tests := []struct {
		name string
		node *ComparisonNode
		op   ComparisonOp
	}{
		{"Eq", col.Eq(1), OpEq},
		{"NotEq", col.NotEq(1), OpNotEq},
		{"Gt", col.Gt(1), OpGt},
		{"GtEq", col.GtEq(1), OpGtEq},
		{"Lt", col.Lt(1), OpLt},
		{"LtEq", col.LtEq(1), OpLtEq},
		{"Like", col.Like("a%"), OpLike},
		{"NotLike", col.NotLike("a%"), OpNotLike},
		{"MatchesRegexp", col.MatchesRegexp("^a"), OpRegexp},
		{"DoesNotMatchRegexp", col.DoesNotMatchRegexp("^a"), OpNotRegexp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.node.Op != tt.op {
				t.Errorf("expected op %d, got %d", tt.op, tt.node.Op)
			}
			if tt.node.Left != Node(col) {
				t.Error("expected left side to be the attribute")
			}
			if _, ok := tt.node.Right.(*LiteralNode); !ok {
				t.Errorf("expected right side to be a literal, got %T", tt.node.Right)
			}
		})
	}
}

func TestNullChecks(t *testing.T) {
	t.Parallel()
	col := NewTable("ad_group").Col("ad_group__name")
	if n := col.IsNull(); n.Op != OpIsNull || n.Expr != Node(col) {
		t.Errorf("unexpected IsNull node: %+v", n)
	}
	if n := col.IsNotNull(); n.Op != OpIsNotNull || n.Expr != Node(col) {
		t.Errorf("unexpected IsNotNull node: %+v", n)
	}
}

func TestInAndNotIn(t *testing.T) {
	t.Parallel()
	col := NewTable("campaign").Col("campaign__status")
	in := col.In("ENABLED", "PAUSED")
	if in.Negate || len(in.Vals) != 2 {
		t.Errorf("unexpected IN node: %+v", in)
	}
	notIn := col.NotIn("REMOVED")
	if !notIn.Negate || len(notIn.Vals) != 1 {
		t.Errorf("unexpected NOT IN node: %+v", notIn)
	}
}

func TestBetween(t *testing.T) {
	t.Parallel()
	col := NewTable("campaign").Col("segments__date")
	n := col.Between("2026-10-07", "2026-10-13")
	low, ok := n.Low.(*LiteralNode)
	if !ok || low.Value != "2026-10-07" {
		t.Errorf("unexpected low bound: %v", n.Low)
	}
	high, ok := n.High.(*LiteralNode)
	if !ok || high.Value != "2026-10-13" {
		t.Errorf("unexpected high bound: %v", n.High)
	}
}

// --- Ordering ---

func TestOrderings(t *testing.T) {
	t.Parallel()
	col := NewTable("campaign").Col("metrics__clicks")
	if col.Asc().Direction != Asc {
		t.Error("expected Asc direction")
	}
	if col.Desc().Direction != Desc {
		t.Error("expected Desc direction")
	}
}

func TestAllNodesImplementNodeInterface(t *testing.T) {
	t.Parallel()
	col := NewTable("campaign").Col("campaign__id")
	for _, n := range []Node{
		NewTable("campaign"),
		col,
		Literal("x"),
		col.Eq(1),
		col.IsNull(),
		col.In(1),
		col.Between(1, 2),
		col.Asc(),
		&SelectCore{},
	} {
		if n == nil {
			t.Error("expected a node")
		}
	}
}
