// Package gaql provides tokenizing, keyword completion and warehouse
// translation for Google Ads Query Language (GAQL) text.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/bawdo/gaql/grammar (tokenizer and completion)
//   - github.com/bawdo/gaql/warehouse (GAQL to SQL over a local mirror)
//   - github.com/bawdo/gaql/nodes, managers, visitors (the SQL AST the
//     warehouse renders per engine)
//   - github.com/bawdo/gaql/ads (Google Ads API search stream)
//   - github.com/bawdo/gaql/output (result formatters)
package gaql

import (
	"iter"
	"time"

	"github.com/bawdo/gaql/grammar"
	"github.com/bawdo/gaql/results"
	"github.com/bawdo/gaql/warehouse"
)

// Version is the console release shown in the welcome banner.
const Version = "0.1.0"

// --- Grammar Types ---

// Token is a classified slice of GAQL text.
type Token = grammar.Token

// Kind classifies a token for highlighting.
type Kind = grammar.Kind

// Candidate is a proposed keyword insertion.
type Candidate = grammar.Candidate

// --- Grammar Functions ---

// Tokenize splits input into classified tokens. It never fails.
func Tokenize(input string) []Token {
	return grammar.Tokenize(input)
}

// Completions proposes the clause keywords that may follow textBeforeCursor.
func Completions(textBeforeCursor string) iter.Seq[Candidate] {
	return grammar.Completions(textBeforeCursor)
}

// Complete collects Completions into a slice.
func Complete(textBeforeCursor string) []Candidate {
	return grammar.Complete(textBeforeCursor)
}

// --- Results ---

// Row is one result row with columns in field mask order.
type Row = results.Row

// --- Warehouse ---

// Statement is a GAQL query translated to SQL.
type Statement = warehouse.Statement

// Translate rewrites a GAQL query into SQL for the given warehouse engine.
// Date functions after DURING resolve relative to now.
func Translate(engine, query string, now time.Time) (*Statement, error) {
	return warehouse.Translate(engine, query, now)
}
