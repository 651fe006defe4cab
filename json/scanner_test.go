// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package json_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/asraa/envoy/json"
)

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []json.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t  \r\n", nil},

		// Constants
		{"true false null", []json.Token{json.True, json.False, json.Null}},

		// Punctuation
		{"{ [ ] } , :", []json.Token{
			json.LBrace, json.LSquare, json.RSquare, json.RBrace, json.Comma, json.Colon,
		}},

		// Strings
		{`"" "a b c" "a\nb\tc"`, []json.Token{json.String, json.String, json.String}},
		{`"\"\\\/\b\f\n\r\t"`, []json.Token{json.String}},
		{`"\u0000\u01fc\uAA9c"`, []json.Token{json.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100`, []json.Token{
			json.Integer, json.Integer, json.Integer,
			json.Number, json.Number, json.Number, json.Number,
		}},

		// Mixed types
		{`{true,"false":-15 null[]}`, []json.Token{
			json.LBrace, json.True, json.Comma, json.String, json.Colon,
			json.Integer, json.Null, json.LSquare, json.RSquare, json.RBrace,
		}},
		{`{"a": true, "b":[null, 1, 0.5]}`, []json.Token{
			json.LBrace,
			json.String, json.Colon, json.True, json.Comma,
			json.String, json.Colon,
			json.LSquare,
			json.Null, json.Comma, json.Integer, json.Comma, json.Number,
			json.RSquare,
			json.RBrace,
		}},
	}

	for _, test := range tests {
		var got []json.Token
		s := json.NewScanner([]byte(test.input))
		for s.Next() {
			got = append(got, s.Token())
		}
		if s.Err() != nil {
			t.Errorf("Next failed: %v", s.Err())
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{`x`, 0},
		{`tru`, 0},
		{`falsely`, 0},
		{`nil`, 0},
		{`01`, 0},
		{`-01`, 0},
		{`-`, 0},
		{`1.`, 0},
		{`5e`, 0},
		{`1e+`, 0},
		{`"unterminated`, 0},
		{`"bad \x escape"`, 0},
		{`"bad \u00ZZ escape"`, 0},
		{"\"ctrl \n inside\"", 0},
		{`[1, 2, bogus]`, 7},
		{`{"ok": "tab	inside"}`, 7},
	}

	for _, test := range tests {
		s := json.NewScanner([]byte(test.input))
		for s.Next() {
		}
		if s.Err() == nil {
			t.Errorf("Input: %#q: scan did not report an error", test.input)
			continue
		}
		var serr *json.SyntaxError
		if !errors.As(s.Err(), &serr) {
			t.Errorf("Input: %#q: error is %T, not *SyntaxError", test.input, s.Err())
		} else if serr.Offset != test.offset {
			t.Errorf("Input: %#q: error offset is %d, want %d", test.input, serr.Offset, test.offset)
		}
		if s.Next() {
			t.Errorf("Input: %#q: Next returned true after an error", test.input)
		}
	}
}

func TestScannerDecode(t *testing.T) {
	s := json.NewScanner([]byte(`{"key name": [-15, 25, 3.5, "a\tb"]}`))

	next := func(want json.Token) {
		t.Helper()
		if !s.Next() {
			t.Fatalf("Next failed: %v", s.Err())
		}
		if s.Token() != want {
			t.Fatalf("Token is %v, want %v", s.Token(), want)
		}
	}

	next(json.LBrace)

	next(json.String)
	if got, err := s.Unescape(); err != nil || got != "key name" {
		t.Errorf("Unescape: got %q, %v; want %q", got, err, "key name")
	}
	next(json.Colon)
	next(json.LSquare)

	next(json.Integer)
	if got, err := s.Int64(); err != nil || got != -15 {
		t.Errorf("Int64: got %d, %v; want -15", got, err)
	}
	next(json.Comma)

	next(json.Integer)
	if got, err := s.Uint64(); err != nil || got != 25 {
		t.Errorf("Uint64: got %d, %v; want 25", got, err)
	}
	next(json.Comma)

	next(json.Number)
	if got, err := s.Float64(); err != nil || got != 3.5 {
		t.Errorf("Float64: got %v, %v; want 3.5", got, err)
	}
	next(json.Comma)

	next(json.String)
	if got, err := s.Unescape(); err != nil || got != "a\tb" {
		t.Errorf("Unescape: got %q, %v; want %q", got, err, "a\tb")
	}

	next(json.RSquare)
	next(json.RBrace)
	if s.Next() {
		t.Errorf("Next returned true at end of input")
	}
}

func TestScannerSpan(t *testing.T) {
	const input = `  {"a": [10, null]}`

	want := []json.Span{
		{Pos: 2, End: 3},   // {
		{Pos: 3, End: 6},   // "a"
		{Pos: 6, End: 7},   // :
		{Pos: 8, End: 9},   // [
		{Pos: 9, End: 11},  // 10
		{Pos: 11, End: 12}, // ,
		{Pos: 13, End: 17}, // null
		{Pos: 17, End: 18}, // ]
		{Pos: 18, End: 19}, // }
	}
	var got []json.Span
	s := json.NewScanner([]byte(input))
	for s.Next() {
		got = append(got, s.Span())
		if text, span := s.Text(), s.Span(); string(text) != input[span.Pos:span.End] {
			t.Errorf("Text %q does not match span %+v", text, span)
		}
	}
	if s.Err() != nil {
		t.Fatalf("Next failed: %v", s.Err())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans: (-want, +got)\n%s", diff)
	}
}
