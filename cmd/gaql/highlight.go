package main

import (
	"strings"

	"github.com/bawdo/gaql/grammar"
)

const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiGreen   = "\x1b[32m"
	ansiBlue    = "\x1b[34m"
	ansiMagenta = "\x1b[35m"
	ansiCyan    = "\x1b[36m"
	ansiBold    = "\x1b[1m"
)

// styles maps token kinds to ANSI styles. Whitespace and punctuation are
// left as typed.
var styles = map[grammar.Kind]string{
	grammar.Keyword:          ansiBold + ansiBlue,
	grammar.Operator:         ansiMagenta,
	grammar.ComparisonSymbol: ansiMagenta,
	grammar.DateFunction:     ansiGreen,
	grammar.AttributePath:    ansiCyan,
	grammar.Error:            ansiRed,
}

// highlight wraps each token of text in the style for its kind.
func highlight(text string) string {
	var b strings.Builder
	for _, tok := range grammar.Tokenize(text) {
		style, ok := styles[tok.Kind]
		if !ok {
			b.WriteString(tok.Text)
			continue
		}
		b.WriteString(style)
		b.WriteString(tok.Text)
		b.WriteString(ansiReset)
	}
	return b.String()
}

// newPainter returns a readline painter. With colour off the line is
// returned unchanged.
func newPainter(color bool) func(line []rune, pos int) []rune {
	return func(line []rune, _ int) []rune {
		if !color || len(line) == 0 {
			return line
		}
		return []rune(highlight(string(line)))
	}
}
