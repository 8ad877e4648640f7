package scan

// TokenType classifies a single structural token.
type TokenType int

const (
	TypeString TokenType = iota
	TypeNumber
	TypeTrue
	TypeFalse
	TypeNull
	TypeObjectOpen
	TypeArrayOpen
	TypeObjectClose
	TypeArrayClose
	TypeComma
	TypeColon
)

// Token pairs a type with the raw text consumed for it. String tokens
// carry the text between the quotes with escape sequences preserved;
// numbers and literals carry their literal spelling.
type Token struct {
	Type TokenType
	Text string
}

func (t TokenType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeTrue:
		return "true"
	case TypeFalse:
		return "false"
	case TypeNull:
		return "null"
	case TypeObjectOpen:
		return "'{'"
	case TypeArrayOpen:
		return "'['"
	case TypeObjectClose:
		return "'}'"
	case TypeArrayClose:
		return "']'"
	case TypeComma:
		return "','"
	case TypeColon:
		return "':'"
	default:
		return "unknown"
	}
}
