package grammar

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// rule pairs an anchored pattern with the kind it assigns.
type rule struct {
	pattern *regexp.Regexp
	kind    Kind
}

// rules are tried in order at each position and the first non-empty match
// commits. Whitespace is the set unicode.IsSpace accepts, which is wider
// than the ASCII \s class. Literal rules must precede the attribute path
// rule, otherwise FROM would scan as a path.
var rules = []rule{
	{regexp.MustCompile(`^[\s\v\p{Z}\x85]+`), Whitespace},
	{regexp.MustCompile(`^,`), Punctuation},
	{literals(keywords), Keyword},
	{regexp.MustCompile(`^(?:=|!=|>|>=|<|<=)`), ComparisonSymbol},
	{literals(operators), Operator},
	{literals(dateFunctions), DateFunction},
	{regexp.MustCompile(`^[\w.]+`), AttributePath},
}

// literals builds a case-insensitive alternation that tries words in order.
// Go's regexp prefers the leftmost alternative, so "ORDER BY" stays atomic.
func literals(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`^(?i:` + strings.Join(quoted, "|") + `)`)
}

// Tokenize splits input into classified tokens. It never fails: a character
// that no rule covers becomes a one-rune Error token, so joining the token
// texts always yields input.
func Tokenize(input string) []Token {
	var tokens []Token
	for pos := 0; pos < len(input); {
		tok := scan(input[pos:])
		tokens = append(tokens, tok)
		pos += len(tok.Text)
	}
	return tokens
}

func scan(rest string) Token {
	for _, r := range rules {
		if loc := r.pattern.FindStringIndex(rest); loc != nil && loc[1] > 0 {
			return Token{Text: rest[:loc[1]], Kind: r.kind}
		}
	}
	_, size := utf8.DecodeRuneInString(rest)
	return Token{Text: rest[:size], Kind: Error}
}
