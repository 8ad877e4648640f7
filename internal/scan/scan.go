// Package scan tokenizes a JSON byte stream incrementally.
//
// The scanner pulls single bytes from a source.Source, validates string
// escapes, numeric grammar and literals as it goes, and keeps exactly one
// byte of lookahead so a token ends the moment its final byte is consumed.
// Structural validation (separator order, bracket matching) is the
// walker's job; the scanner only guarantees well-formed tokens.
package scan

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/jacoelho/jsonwalk/source"
)

// ErrSyntax is the sentinel error for all grammar violations.
var ErrSyntax = errors.New("invalid json")

type Scanner struct {
	src source.Source

	cur byte // lookahead byte
	off int  // stream offset of cur
	eof bool
	err error // sticky source read failure

	capturing bool
	capture   []byte
	recent    *ring

	foldLiterals bool
}

// NewScanner primes the lookahead and positions on the first non-space
// byte. recentSize > 0 enables the recent-input ring used in error
// messages; foldLiterals accepts literals in any letter case.
func NewScanner(src source.Source, recentSize int, foldLiterals bool) *Scanner {
	s := &Scanner{
		src:          src,
		off:          -1,
		foldLiterals: foldLiterals,
	}
	if recentSize > 0 {
		s.recent = newRing(recentSize)
	}

	s.read()
	s.skipSpace()
	return s
}

// Next produces one token, consuming exactly the bytes it needs plus any
// trailing whitespace. It returns io.EOF at a clean end of stream.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}
	if s.eof {
		return Token{}, io.EOF
	}

	switch c := s.cur; c {
	case '{', '}', '[', ']', ',', ':':
		s.advance()
		s.skipSpace()
		return delimToken(c), nil
	case '"':
		return s.scanString()
	default:
		if c == '-' || c == '+' || isDigit(c) {
			return s.scanNumber()
		}
		return s.scanLiteral()
	}
}

// Peek reports the first byte of the next token without consuming it.
func (s *Scanner) Peek() (byte, bool) {
	if s.eof || s.err != nil {
		return 0, false
	}
	return s.cur, true
}

// Offset is the stream position of the lookahead byte.
func (s *Scanner) Offset() int {
	return s.off
}

// StartCapture begins recording consumed bytes, including the pending
// lookahead byte once it is consumed.
func (s *Scanner) StartCapture() {
	s.capture = s.capture[:0]
	s.capturing = true
}

// EndCapture stops recording and returns the bytes consumed since
// StartCapture.
func (s *Scanner) EndCapture() []byte {
	s.capturing = false
	return s.capture
}

// Recent returns the most recent input bytes when the ring is enabled.
func (s *Scanner) Recent() string {
	if s.recent == nil {
		return ""
	}
	return s.recent.String()
}

// Errorf builds a grammar-violation error annotated with the stream
// offset and, when enabled, the recent input.
func (s *Scanner) Errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if s.recent != nil {
		return fmt.Errorf("%w: %s at offset %d (recent input %q)", ErrSyntax, msg, s.off, s.recent.String())
	}
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, msg, s.off)
}

func (s *Scanner) scanString() (Token, error) {
	s.advance() // opening quote

	var raw []byte
	for {
		if s.err != nil {
			return Token{}, s.err
		}
		if s.eof {
			return Token{}, s.Errorf("unterminated string")
		}

		c := s.cur
		s.advance()

		switch {
		case c == '"':
			if !utf8.Valid(raw) {
				return Token{}, s.Errorf("string is not valid utf-8")
			}
			s.skipSpace()
			return Token{Type: TypeString, Text: string(raw)}, nil
		case c == '\\':
			if s.eof || s.err != nil {
				return Token{}, s.Errorf("unterminated escape sequence")
			}
			esc := s.cur
			s.advance()
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				raw = append(raw, '\\', esc)
			case 'u':
				raw = append(raw, '\\', 'u')
				for range 4 {
					if s.eof || s.err != nil {
						return Token{}, s.Errorf("unterminated unicode escape")
					}
					if !isHex(s.cur) {
						return Token{}, s.Errorf("invalid unicode escape digit %q", s.cur)
					}
					raw = append(raw, s.cur)
					s.advance()
				}
			default:
				return Token{}, s.Errorf("invalid escape character %q", esc)
			}
		case c < 0x20:
			return Token{}, s.Errorf("control character 0x%02x in string", c)
		default:
			raw = append(raw, c)
		}
	}
}

func (s *Scanner) scanNumber() (Token, error) {
	var raw []byte

	if s.cur == '-' || s.cur == '+' {
		raw = append(raw, s.cur)
		s.advance()
	}

	digits := func() int {
		n := 0
		for !s.eof && s.err == nil && isDigit(s.cur) {
			raw = append(raw, s.cur)
			s.advance()
			n++
		}
		return n
	}

	if digits() == 0 {
		return Token{}, s.Errorf("number has no integer digits")
	}

	if !s.eof && s.err == nil && s.cur == '.' {
		raw = append(raw, s.cur)
		s.advance()
		if digits() == 0 {
			return Token{}, s.Errorf("number has no fraction digits")
		}
	}

	if !s.eof && s.err == nil && (s.cur == 'e' || s.cur == 'E') {
		raw = append(raw, s.cur)
		s.advance()
		if !s.eof && s.err == nil && (s.cur == '+' || s.cur == '-') {
			raw = append(raw, s.cur)
			s.advance()
		}
		if digits() == 0 {
			return Token{}, s.Errorf("number has no exponent digits")
		}
	}

	if s.err != nil {
		return Token{}, s.err
	}
	if !s.eof && !isBoundary(s.cur) {
		return Token{}, s.Errorf("unexpected character %q after number", s.cur)
	}

	s.skipSpace()
	return Token{Type: TypeNumber, Text: string(raw)}, nil
}

func (s *Scanner) scanLiteral() (Token, error) {
	first := s.cur
	if s.foldLiterals {
		first = lower(first)
	}

	var word string
	var typ TokenType
	switch first {
	case 't':
		word, typ = "true", TypeTrue
	case 'f':
		word, typ = "false", TypeFalse
	case 'n':
		word, typ = "null", TypeNull
	default:
		return Token{}, s.Errorf("unexpected character %q", s.cur)
	}

	raw := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		if s.err != nil {
			return Token{}, s.err
		}
		if s.eof {
			return Token{}, s.Errorf("unexpected end of input in literal")
		}

		c := s.cur
		if s.foldLiterals {
			c = lower(c)
		}
		if c != word[i] {
			return Token{}, s.Errorf("invalid literal, expected %q", word)
		}

		raw = append(raw, s.cur)
		s.advance()
	}

	if s.err != nil {
		return Token{}, s.err
	}
	if !s.eof && !isBoundary(s.cur) {
		return Token{}, s.Errorf("invalid literal, expected %q", word)
	}

	s.skipSpace()
	return Token{Type: typ, Text: string(raw)}, nil
}

// advance consumes the lookahead byte and pulls the next one.
func (s *Scanner) advance() {
	if s.capturing {
		s.capture = append(s.capture, s.cur)
	}
	s.read()
}

func (s *Scanner) read() {
	b, err := s.src.Next()
	s.off++
	switch {
	case err == nil:
		s.cur = b
		if s.recent != nil {
			s.recent.push(b)
		}
	case errors.Is(err, io.EOF):
		s.eof = true
		s.cur = 0
	default:
		s.err = fmt.Errorf("read input: %w", err)
	}
}

func (s *Scanner) skipSpace() {
	for !s.eof && s.err == nil && isSpace(s.cur) {
		s.advance()
	}
}

func delimToken(c byte) Token {
	switch c {
	case '{':
		return Token{Type: TypeObjectOpen, Text: "{"}
	case '}':
		return Token{Type: TypeObjectClose, Text: "}"}
	case '[':
		return Token{Type: TypeArrayOpen, Text: "["}
	case ']':
		return Token{Type: TypeArrayClose, Text: "]"}
	case ',':
		return Token{Type: TypeComma, Text: ","}
	default:
		return Token{Type: TypeColon, Text: ":"}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isBoundary reports whether c may legally follow a number or literal.
func isBoundary(c byte) bool {
	return isSpace(c) || c == ',' || c == '}' || c == ']'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
