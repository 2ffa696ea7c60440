// Package grammar tokenizes Google Ads Query Language (GAQL) text for
// highlighting and proposes the next clause keyword for completion.
//
// Both entry points are pure functions over their input string and are safe
// for concurrent use.
package grammar

import "slices"

// dateFunctions are the predefined date ranges accepted after DURING.
var dateFunctions = []string{
	"LAST_14_DAYS",
	"LAST_30_DAYS",
	"LAST_7_DAYS",
	"LAST_BUSINESS_WEEK",
	"LAST_MONTH",
	"LAST_WEEK_MON_SUN",
	"LAST_WEEK_SUN_SAT",
	"THIS_MONTH",
	"THIS_WEEK_MON_TODAY",
	"THIS_WEEK_SUN_TODAY",
	"TODAY",
	"YESTERDAY",
}

// keywords introduce or modify a clause.
var keywords = []string{"SELECT", "FROM", "WHERE", "ORDER BY", "LIMIT", "ASC", "DESC", "AND"}

var operators = []string{
	"IN",
	"NOT IN",
	"LIKE",
	"NOT LIKE",
	"CONTAINS ANY",
	"CONTAINS ALL",
	"CONTAINS NONE",
	"IS NULL",
	"IS NOT NULL",
	"DURING",
	"BETWEEN",
	"REGEXP_MATCH",
	"NOT REGEXP_MATCH",
}

// DateFunctions returns the date range function names.
func DateFunctions() []string { return slices.Clone(dateFunctions) }

// Keywords returns the clause keywords.
func Keywords() []string { return slices.Clone(keywords) }

// Operators returns the comparison and containment operators.
func Operators() []string { return slices.Clone(operators) }

// Words returns every vocabulary literal as one flat list: date functions,
// then keywords, then operators.
func Words() []string {
	out := make([]string, 0, len(dateFunctions)+len(keywords)+len(operators))
	out = append(out, dateFunctions...)
	out = append(out, keywords...)
	return append(out, operators...)
}
