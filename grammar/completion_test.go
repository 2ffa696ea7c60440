package grammar

import (
	"testing"

	"github.com/bawdo/gaql/internal/testutil"
)

func TestComplete(t *testing.T) {
	t.Parallel()
	clauses := func(n int) []Candidate {
		return []Candidate{
			{Text: "WHERE", DeleteCount: n},
			{Text: "ORDER BY", DeleteCount: n},
			{Text: "LIMIT", DeleteCount: n},
		}
	}
	tests := []struct {
		name string
		text string
		want []Candidate
	}{
		// An empty trailing word still yields candidates, with nothing to
		// delete.
		{"empty buffer", "", []Candidate{{Text: "SELECT"}}},
		{"partial select", "SEL", []Candidate{{Text: "SELECT", DeleteCount: 3}}},
		{"lowercase partial select", "sel", []Candidate{{Text: "SELECT", DeleteCount: 3}}},
		{"leading whitespace only", "   ", []Candidate{{Text: "SELECT"}}},
		{"non-prefix word", "campaign", nil},
		{"select typed", "SELECT", nil},
		{"select then space", "SELECT ", nil},
		{"field without dot", "SELECT clicks ", nil},
		// The trailing word after the space is empty, so FROM is offered
		// with DeleteCount 0.
		{"field typed", "SELECT campaign.id ", []Candidate{{Text: "FROM"}}},
		{"partial from", "SELECT campaign.id fr", []Candidate{{Text: "FROM", DeleteCount: 2}}},
		{"field still being typed", "SELECT campaign.id", nil},
		{"from typed", "SELECT campaign.id FROM", nil},
		{"after resource", "SELECT campaign.id FROM campaign ", clauses(0)},
		{"where already present", "SELECT campaign.id FROM campaign WHERE ", clauses(0)},
		{"partial where", "SELECT campaign.id FROM campaign w", []Candidate{{Text: "WHERE", DeleteCount: 1}}},
		{"partial order", "SELECT campaign.id FROM campaign ORD", []Candidate{{Text: "ORDER BY", DeleteCount: 3}}},
		// WHERE and LIMIT have the same length as ORDER, so only ORDER BY
		// is offered.
		{"order typed", "SELECT campaign.id FROM campaign ORDER", []Candidate{{Text: "ORDER BY", DeleteCount: 5}}},
		{"same length non-keyword", "SELECT campaign.id FROM campa", nil},
		{"partial limit", "SELECT campaign.id FROM campaign Li", []Candidate{{Text: "LIMIT", DeleteCount: 2}}},
		{"multiline buffer", "SELECT campaign.id\nFROM campaign\n", clauses(0)},
		{"ideographic space", "SELECT campaign.id　FR", []Candidate{{Text: "FROM", DeleteCount: 2}}},
		// Clause detection is case-sensitive on the raw text.
		{"lowercase select is not detected", "select campaign.id ", []Candidate{{Text: "SELECT"}}},
		{"lowercase from is not detected", "SELECT campaign.id from ", []Candidate{{Text: "FROM"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertDiff(t, Complete(tt.text), tt.want)
		})
	}
}

func TestCompletionsStopsEarly(t *testing.T) {
	t.Parallel()
	var got []Candidate
	for c := range Completions("SELECT campaign.id FROM campaign ") {
		got = append(got, c)
		break
	}
	testutil.AssertDiff(t, got, []Candidate{{Text: "WHERE"}})
}

func TestCompleteIdempotent(t *testing.T) {
	t.Parallel()
	text := "SELECT campaign.id FROM campaign O"
	testutil.AssertDiff(t, Complete(text), Complete(text))
}

func TestTrailingWord(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":                   "",
		"SEL":                "SEL",
		"SELECT ":            "",
		"SELECT campaign.id": "campaign.id",
		"a\tb\nc":            "c",
		"x yz":               "yz",
	}
	for in, want := range tests {
		testutil.AssertEqual(t, TrailingWord(in), want)
	}
}
