package main

import (
	"regexp"
	"testing"

	"github.com/bawdo/gaql/internal/testutil"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestHighlight(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keyword and field",
			input: "SELECT campaign.id",
			want:  ansiBold + ansiBlue + "SELECT" + ansiReset + " " + ansiCyan + "campaign.id" + ansiReset,
		},
		{
			name:  "comma left plain",
			input: "a.b,c.d",
			want:  ansiCyan + "a.b" + ansiReset + "," + ansiCyan + "c.d" + ansiReset,
		},
		{
			name:  "operator and date function",
			input: "DURING TODAY",
			want:  ansiMagenta + "DURING" + ansiReset + " " + ansiGreen + "TODAY" + ansiReset,
		},
		{
			name:  "comparison",
			input: ">=",
			want:  ansiMagenta + ">" + ansiReset + ansiMagenta + "=" + ansiReset,
		},
		{
			name:  "quote is an error",
			input: "'",
			want:  ansiRed + "'" + ansiReset,
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, highlight(tt.input), tt.want)
		})
	}
}

func TestHighlightPreservesText(t *testing.T) {
	t.Parallel()
	input := "select campaign.name from campaign where metrics.clicks > 10 and segments.date during last_7_days order by campaign.name desc limit 5"
	testutil.AssertEqual(t, ansiEscape.ReplaceAllString(highlight(input), ""), input)
}

func TestPainter(t *testing.T) {
	t.Parallel()
	line := []rune("SELECT campaign.id")

	plain := newPainter(false)(line, len(line))
	testutil.AssertEqual(t, string(plain), "SELECT campaign.id")

	colored := newPainter(true)(line, len(line))
	testutil.AssertEqual(t, string(colored), highlight("SELECT campaign.id"))

	testutil.AssertEqual(t, len(newPainter(true)(nil, 0)), 0)
}
