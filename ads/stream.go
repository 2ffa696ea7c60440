package ads

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/bawdo/gaql/results"
)

// streamBatch is one element of the searchStream response array.
type streamBatch struct {
	Results   []map[string]any `json:"results"`
	FieldMask string           `json:"fieldMask"`
	RequestID string           `json:"requestId"`
	Error     *apiError        `json:"error"`
}

// splitFieldMask splits "campaign.id,metrics.costMicros" into paths.
func splitFieldMask(mask string) []string {
	if mask == "" {
		return nil
	}
	paths := strings.Split(mask, ",")
	for i, p := range paths {
		paths[i] = strings.TrimSpace(p)
	}
	return paths
}

// flatten picks the field mask paths out of a nested result object. Column
// names are reported in GAQL spelling (ad_group.cost_micros) while the JSON
// uses camelCase. Fields the API omitted (proto defaults) come back empty.
func flatten(raw map[string]any, paths []string) results.Row {
	row := results.Row{
		Columns: make([]string, len(paths)),
		Values:  make([]string, len(paths)),
	}
	for i, p := range paths {
		row.Columns[i] = snakeCase(p)
		row.Values[i] = render(lookup(raw, p))
	}
	return row
}

func lookup(obj map[string]any, path string) any {
	var cur any = obj
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[seg]
	}
	return cur
}

func render(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		if x {
			return "true"
		}
		return "false"
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// snakeCase converts a camelCase field path to the GAQL spelling.
func snakeCase(path string) string {
	var b strings.Builder
	for _, r := range path {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
