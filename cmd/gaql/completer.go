package main

import (
	"strings"
	"unicode"

	"github.com/bawdo/gaql/grammar"
)

// gaqlCompleter implements readline's AutoCompleter interface.
type gaqlCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line/cursor position.
// length is the number of runes before pos that the candidates replace;
// newLine holds what each candidate appends after them.
//
// Backslash commands complete against the command registry. Otherwise the
// clause engine proposes the next keyword, and when it has nothing to offer
// the trailing word completes against the GAQL vocabulary and, once a
// warehouse is connected, its resources and field paths.
func (c *gaqlCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	text := string(line[:pos])
	if cmd, ok := strings.CutPrefix(strings.TrimLeft(text, " \t"), `\`); ok {
		return c.completeCommand(cmd)
	}

	for cand := range grammar.Completions(text) {
		typed := tail(text, cand.DeleteCount)
		newLine = append(newLine, []rune(matchCase(dropRunes(cand.Text, cand.DeleteCount), typed)+" "))
		length = cand.DeleteCount
	}
	if len(newLine) > 0 {
		return newLine, length
	}

	word := grammar.TrailingWord(text)
	if word == "" {
		return nil, 0
	}
	words := append(grammar.Words(), c.sess.schemaWords()...)
	return suffixes(dedup(filterPrefix(words, word)), word)
}

// completeCommand completes a backslash command name, or its argument once
// the name is followed by a space.
func (c *gaqlCompleter) completeCommand(text string) ([][]rune, int) {
	lower := strings.ToLower(text)
	for _, cmd := range c.sess.commands {
		if cmd.completer == nil || !strings.HasSuffix(cmd.prefix, " ") {
			continue
		}
		if strings.HasPrefix(lower, cmd.prefix) {
			arg := strings.TrimLeft(text[len(cmd.prefix):], " ")
			return suffixes(filterPrefix(cmd.completer(), arg), arg)
		}
	}
	return suffixes(filterPrefix(c.sess.commandNames(), text), text)
}

// suffixes turns full candidates into the text readline appends after
// prefix, followed by a space.
func suffixes(candidates []string, prefix string) (newLine [][]rune, length int) {
	n := len([]rune(prefix))
	for _, cand := range candidates {
		newLine = append(newLine, []rune(matchCase(dropRunes(cand, n), prefix)+" "))
	}
	return newLine, n
}

// matchCase lowercases suffix when the user typed lowercase letters, so
// "sel" completes to "select" rather than "selECT".
func matchCase(suffix, typed string) string {
	if strings.IndexFunc(typed, unicode.IsLower) >= 0 {
		return strings.ToLower(suffix)
	}
	return suffix
}

func dropRunes(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		return ""
	}
	return string(r[n:])
}

// tail returns the last n runes of s.
func tail(s string, n int) string {
	r := []rune(s)
	if n > len(r) {
		return s
	}
	return string(r[len(r)-n:])
}

// filterPrefix returns items that start with prefix (case-insensitive).
func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		result := make([]string, len(items))
		copy(result, items)
		return result
	}
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lowerPrefix) {
			result = append(result, item)
		}
	}
	return result
}

// dedup removes duplicate strings.
func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	var result []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			result = append(result, item)
		}
	}
	return result
}
