package grammar

// Kind classifies a token for highlighting.
type Kind int

const (
	Whitespace Kind = iota
	Punctuation
	Keyword
	Operator
	ComparisonSymbol
	DateFunction
	AttributePath
	// Error marks a single character no other rule covers, such as a quote.
	Error
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case Punctuation:
		return "Punctuation"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case ComparisonSymbol:
		return "ComparisonSymbol"
	case DateFunction:
		return "DateFunction"
	case AttributePath:
		return "AttributePath"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Token is a classified, non-empty slice of the input.
type Token struct {
	Text string
	Kind Kind
}
