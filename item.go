package jsonwalk

// Kind classifies what an item represents in the document.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObjectOpen
	KindArrayOpen
	KindObjectClose
	KindArrayClose
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObjectOpen:
		return "object open"
	case KindArrayOpen:
		return "array open"
	case KindObjectClose:
		return "object close"
	case KindArrayClose:
		return "array close"
	default:
		return "unknown"
	}
}

// Item is a single meaningful element surfaced by the walker: an object
// key, a scalar value, or a container marker. Text holds the verbatim
// input spelling, without quotes for strings used as keys or values.
type Item struct {
	Kind Kind
	Text string
}
