package grammar

import (
	"iter"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Candidate is a proposed keyword insertion. The editor removes the
// DeleteCount characters before the cursor, then inserts Text.
type Candidate struct {
	Text        string
	DeleteCount int
}

// Completions proposes the clause keywords that may follow textBeforeCursor.
// Inference is purely textual: it looks for the literal substrings SELECT,
// "." and FROM, exactly as typed. The sequence is finite and yields
// candidates in display order; an empty sequence is a normal outcome.
func Completions(textBeforeCursor string) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for _, keyword := range nextClauses(textBeforeCursor) {
			c, ok := rewind(textBeforeCursor, keyword)
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Complete collects Completions into a slice.
func Complete(textBeforeCursor string) []Candidate {
	return slices.Collect(Completions(textBeforeCursor))
}

// nextClauses picks the keywords expected next. The branches are exclusive
// and checked in order.
func nextClauses(text string) []string {
	switch {
	case !strings.Contains(text, "SELECT"):
		return []string{"SELECT"}
	// Fields always have a dot in their path, so FROM only makes sense
	// once one has been typed.
	case strings.Contains(text, ".") && !strings.Contains(text, "FROM"):
		return []string{"FROM"}
	case strings.Contains(text, "FROM"):
		return []string{"WHERE", "ORDER BY", "LIMIT"}
	}
	return nil
}

// rewind proposes keyword in place of the partially typed trailing word.
// A trailing word as long as the keyword counts as already complete, even
// when it is a different word.
func rewind(text, keyword string) (Candidate, bool) {
	word := TrailingWord(text)
	typed := strings.ToUpper(word)
	n := utf8.RuneCountInString(word)
	if n == utf8.RuneCountInString(keyword) {
		return Candidate{}, false
	}
	if !strings.HasPrefix(keyword, typed) {
		return Candidate{}, false
	}
	return Candidate{Text: keyword, DeleteCount: n}, true
}

// TrailingWord returns the text after the last whitespace character: the
// word Completions rewinds over. It is empty when text is empty or ends in
// whitespace.
func TrailingWord(text string) string {
	i := strings.LastIndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return text
	}
	_, size := utf8.DecodeRuneInString(text[i:])
	return text[i+size:]
}
