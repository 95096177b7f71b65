package frame

// ContentKind identifies an item of generated content.
type ContentKind uint8

// Kinds of generated content items, see CSS `content` property.
const (
	ContentString   ContentKind = iota // literal text
	ContentCounter                     // counter(name, style)
	ContentCounters                    // counters(name, separator, style)
	ContentOpenQuote
	ContentCloseQuote
	ContentNoOpenQuote
	ContentNoCloseQuote
)

// ContentItem is an unresolved item of generated content.
type ContentItem struct {
	Kind      ContentKind
	Text      string // literal text for ContentString
	Counter   string // counter name
	Separator string // for ContentCounters
	Style     CounterStyle
}

// Literal creates a string content item.
func Literal(s string) ContentItem {
	return ContentItem{Kind: ContentString, Text: s}
}

// CounterRef creates a counter(name, style) content item.
func CounterRef(name string, style CounterStyle) ContentItem {
	return ContentItem{Kind: ContentCounter, Counter: name, Style: style}
}

// CounterOp is an entry of `counter-reset` or `counter-increment`.
type CounterOp struct {
	Name  string
	Value int
}

// QuotePair is a pair of quotation marks for one nesting level.
type QuotePair struct {
	Open, Close string
}

// CounterStyle is a list style type, used for counter representation.
type CounterStyle uint8

// Supported counter styles.
const (
	CounterDecimal CounterStyle = iota
	CounterDecimalLeadingZero
	CounterLowerAlpha
	CounterUpperAlpha
	CounterLowerRoman
	CounterUpperRoman
	CounterDisc
	CounterCircle
	CounterSquare
	CounterNone
)

// ListItemCounter is the name of the implicit counter of list items.
const ListItemCounter = "list-item"
