// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package json

import (
	"fmt"
	"strings"
)

// A Sink receives parse events from a Stream as the structure of the input is
// discovered. Each method reports whether parsing should continue; when a
// method returns false the stream stops immediately and Parse reports an
// error at the current input position.
//
// The stream guarantees objects and arrays are correctly balanced, that every
// object member key is delivered by Key before the events of its value, and
// that string and key text is unescaped before delivery.
type Sink interface {
	StartObject() bool
	EndObject() bool
	Key(key string) bool
	StartArray() bool
	EndArray() bool

	BooleanValue(v bool) bool
	IntegerValue(v int64) bool
	UnsignedValue(v uint64) bool
	FloatValue(v float64) bool
	NullValue() bool
	StringValue(v string) bool

	// BinaryValue reports a binary payload. JSON text has no binary form, so
	// a Stream never generates this event; it exists so a Sink can be driven
	// by richer tokenizers sharing the same event vocabulary.
	BinaryValue(data []byte) bool

	// ParseError reports that the input is malformed at the given byte
	// offset. token holds the raw text of the offending token and may be
	// empty. The return value is ignored; no further events follow.
	ParseError(offset int, token, msg string) bool
}

// A SyntaxError describes malformed input, located by byte offset.
type SyntaxError struct {
	Offset int    // byte offset of the offending token
	Token  string // raw text of the offending token; may be empty
	Msg    string // human-readable description
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("offset %d at %q: %s", e.Offset, e.Token, e.Msg)
}

func syntaxErrorf(offset int, token, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Token: token, Msg: fmt.Sprintf(msg, args...)}
}

// Stream is a push parser that consumes a complete JSON document and delivers
// events to a Sink corresponding with the structure of the input.
type Stream struct {
	s *Scanner
}

// NewStream constructs a new Stream that consumes the given input.
func NewStream(in []byte) *Stream { return &Stream{s: NewScanner(in)} }

// Parse parses the input as a single JSON document and delivers its events to
// sink. On malformed input, or when a sink method returns false, parsing
// stops, sink.ParseError is invoked once, and the same error is returned with
// concrete type [*SyntaxError]. A nil error means the entire input was
// consumed and every event was accepted.
func (st *Stream) Parse(sink Sink) (err error) {
	defer func() {
		switch e := recover().(type) {
		case nil:
		case *SyntaxError:
			sink.ParseError(e.Offset, e.Token, e.Msg)
			err = e
		default:
			panic(e)
		}
	}()

	st.advance("value")
	st.parseElement(sink)
	if st.s.Next() {
		st.fail("input follows complete document")
	} else if st.s.Err() != nil {
		panic(st.s.Err())
	}
	return nil
}

// parseElement consumes a single value of any type.
// Precondition: the scanner is positioned on the first token of the value.
func (st *Stream) parseElement(sink Sink) {
	switch tok := st.s.Token(); tok {
	case LBrace:
		st.emit(sink.StartObject())
		st.parseMembers(sink)
		st.emit(sink.EndObject())
	case LSquare:
		st.emit(sink.StartArray())
		st.parseElements(sink)
		st.emit(sink.EndArray())
	case String:
		st.emit(sink.StringValue(st.unescape()))
	case Integer:
		st.parseInteger(sink)
	case Number:
		v, err := st.s.Float64()
		if err != nil {
			st.fail("invalid number")
		}
		st.emit(sink.FloatValue(v))
	case True, False:
		st.emit(sink.BooleanValue(tok == True))
	case Null:
		st.emit(sink.NullValue())
	default:
		st.fail("unexpected %v", tok)
	}
}

// parseInteger delivers an integer-valued token. Values without a leading
// sign are delivered unsigned; a value too big for either 64-bit form falls
// back to a float event, trading precision for range.
func (st *Stream) parseInteger(sink Sink) {
	text := st.s.Text()
	if len(text) != 0 && text[0] == '-' {
		if v, err := st.s.Int64(); err == nil {
			st.emit(sink.IntegerValue(v))
			return
		}
	} else if v, err := st.s.Uint64(); err == nil {
		st.emit(sink.UnsignedValue(v))
		return
	}
	v, err := st.s.Float64()
	if err != nil {
		st.fail("number out of range")
	}
	st.emit(sink.FloatValue(v))
}

// parseMembers consumes zero or more key:value object members.
// Precondition: token == LBrace. Postcondition: token == RBrace.
func (st *Stream) parseMembers(sink Sink) {
	if tok := st.advance(`"}" or string`); tok == RBrace {
		return // end of object
	}
	for {
		st.expect(String, "object key")
		st.emit(sink.Key(st.unescape()))
		st.expectNext(Colon, `":"`)
		st.advance("value")
		st.parseElement(sink)

		if tok := st.advance(`"}" or ","`); tok == RBrace {
			return // end of object
		} else if tok != Comma {
			st.fail(`expected "}" or ","`)
		}
		st.advance("object key")
	}
}

// parseElements consumes zero or more comma-separated array values.
// Precondition: token == LSquare. Postcondition: token == RSquare.
func (st *Stream) parseElements(sink Sink) {
	if tok := st.advance(`"]" or value`); tok == RSquare {
		return // end of array
	}
	for {
		st.parseElement(sink)
		if tok := st.advance(`"]" or ","`); tok == RSquare {
			return // end of array
		} else if tok != Comma {
			st.fail(`expected "]" or ","`)
		}
		st.advance("value")
	}
}

// advance moves to the next token, failing with the given label if the input
// ends or the scanner reports an error.
func (st *Stream) advance(label string) Token {
	if !st.s.Next() {
		if err := st.s.Err(); err != nil {
			panic(err)
		}
		st.fail("expected %s, got end of input", label)
	}
	return st.s.Token()
}

func (st *Stream) expect(tok Token, label string) {
	if st.s.Token() != tok {
		st.fail("expected %s, got %v", label, st.s.Token())
	}
}

func (st *Stream) expectNext(tok Token, label string) {
	st.advance(label)
	st.expect(tok, label)
}

func (st *Stream) unescape() string {
	v, err := st.s.Unescape()
	if err != nil {
		st.fail("invalid string: %v", err)
	}
	return v
}

// emit checks the continue signal returned by a sink callback.
func (st *Stream) emit(ok bool) {
	if !ok {
		st.fail("event rejected by handler")
	}
}

func (st *Stream) fail(msg string, args ...any) {
	token := strings.TrimSpace(string(st.s.Text()))
	panic(syntaxErrorf(st.s.Span().Pos, token, msg, args...))
}
