// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"strconv"

	"go4.org/mem"

	"github.com/asraa/envoy/internal/escape"
)

// A Scanner reads lexical tokens from a buffer of JSON text.  Each call to
// Next advances the scanner to the next token of the input, if any.
type Scanner struct {
	in  []byte
	cur int // offset of the next unconsumed byte

	tok      Token
	pos, end int // offsets of the current token
	err      error
}

// NewScanner constructs a new lexical scanner for the given input.
// The scanner does not copy or modify in, and reads no other source.
func NewScanner(in []byte) *Scanner { return &Scanner{in: in} }

// Next advances s to the next token of the input and reports whether one is
// available. Once Next has returned false, it will not return true again.
// Check Err to distinguish the end of input from a lexical error.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	s.tok = Invalid
	for s.cur < len(s.in) && isSpace(s.in[s.cur]) {
		s.cur++
	}
	if s.cur == len(s.in) {
		s.pos, s.end = s.cur, s.cur
		return false
	}

	s.pos = s.cur
	b := s.in[s.cur]
	switch {
	case b == '{' || b == '}' || b == '[' || b == ']' || b == ',' || b == ':':
		s.cur++
		s.tok = selfDelim(b)
	case b == '"':
		s.scanString()
	case b == '-' || isDigit(b):
		s.scanNumber()
	case b == 't':
		s.scanName(True, "true")
	case b == 'f':
		s.scanName(False, "false")
	case b == 'n':
		s.scanName(Null, "null")
	default:
		s.failf("unexpected %q", b)
	}
	s.end = s.cur
	return s.err == nil
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the error that ended scanning, or nil if the complete input was
// scanned without error. When non-nil, the concrete type is [*SyntaxError].
func (s *Scanner) Err() error { return s.err }

// Text returns the raw (undecoded) text of the current token.
// The returned slice aliases the input buffer.
func (s *Scanner) Text() []byte { return s.in[s.pos:s.end] }

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Int64 decodes the text of the current token as a signed integer.
// It reports an error if the token does not fit in an int64.
func (s *Scanner) Int64() (int64, error) {
	return strconv.ParseInt(string(s.Text()), 10, 64)
}

// Uint64 decodes the text of the current token as an unsigned integer.
// It reports an error if the token does not fit in a uint64.
func (s *Scanner) Uint64() (uint64, error) {
	return strconv.ParseUint(string(s.Text()), 10, 64)
}

// Float64 decodes the text of the current token as a float64.
func (s *Scanner) Float64() (float64, error) {
	return strconv.ParseFloat(string(s.Text()), 64)
}

// Unescape decodes the text of the current String token, removing the
// enclosing quotation marks and expanding escape sequences.
func (s *Scanner) Unescape() (string, error) {
	text := s.Text()
	dec, err := escape.Unquote(mem.B(text[1 : len(text)-1]))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}

func (s *Scanner) scanString() {
	s.cur++ // consume open quote
	for s.cur < len(s.in) {
		switch b := s.in[s.cur]; {
		case b == '"':
			s.cur++
			s.tok = String
			return
		case b == '\\':
			s.scanEscape()
			if s.err != nil {
				return
			}
		case b < ' ':
			s.failf("unescaped control %q in string", b)
			return
		default:
			s.cur++
		}
	}
	s.failf("unterminated string")
}

// scanEscape consumes a backslash escape within a string.
// Precondition: s.in[s.cur] == '\\'.
func (s *Scanner) scanEscape() {
	s.cur++
	if s.cur == len(s.in) {
		s.failf("unterminated string")
		return
	}
	switch b := s.in[s.cur]; b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		s.cur++
	case 'u':
		s.cur++
		for i := 0; i < 4; i++ {
			if s.cur == len(s.in) || !isHexDigit(s.in[s.cur]) {
				s.failf("invalid Unicode escape")
				return
			}
			s.cur++
		}
	default:
		s.failf("invalid %q after escape", b)
	}
}

func (s *Scanner) scanNumber() {
	digits := func() int {
		n := 0
		for s.cur < len(s.in) && isDigit(s.in[s.cur]) {
			s.cur++
			n++
		}
		return n
	}

	if s.in[s.cur] == '-' {
		s.cur++
	}
	switch n := digits(); {
	case n == 0:
		s.failf("no digits in number")
		return
	case n > 1 && s.in[s.pos] == '0', n > 1 && s.in[s.pos] == '-' && s.in[s.pos+1] == '0':
		// The JSON grammar forbids redundant leading zeroes: 0.12 is OK,
		// 01.2 and -01 are not.
		s.failf("extra leading zeroes")
		return
	}
	s.tok = Integer

	if s.cur < len(s.in) && s.in[s.cur] == '.' {
		s.cur++
		if digits() == 0 {
			s.failf("no digits after decimal point")
			return
		}
		s.tok = Number
	}
	if s.cur < len(s.in) && (s.in[s.cur] == 'e' || s.in[s.cur] == 'E') {
		s.cur++
		if s.cur < len(s.in) && (s.in[s.cur] == '-' || s.in[s.cur] == '+') {
			s.cur++
		}
		if digits() == 0 {
			s.failf("missing exponent digits")
			return
		}
		s.tok = Number
	}
}

func (s *Scanner) scanName(tok Token, want string) {
	for s.cur < len(s.in) && isNameByte(s.in[s.cur]) {
		s.cur++
	}
	if got := mem.B(s.in[s.pos:s.cur]); !got.Equal(mem.S(want)) {
		s.failf("unknown constant %q", got.StringCopy())
		return
	}
	s.tok = tok
}

func (s *Scanner) failf(msg string, args ...any) {
	s.end = s.cur
	s.err = syntaxErrorf(s.pos, string(s.in[s.pos:s.end]), msg, args...)
}

func isSpace(b byte) bool    { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool    { return '0' <= b && b <= '9' }
func isNameByte(b byte) bool { return 'a' <= b && b <= 'z' }

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

var self = [...]Token{'{': LBrace, '}': RBrace, '[': LSquare, ']': RSquare, ',': Comma, ':': Colon}

func selfDelim(b byte) Token { return self[b] }
