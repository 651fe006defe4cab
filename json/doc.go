// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package json implements a JSON lexical scanner and an event-driven push
// parser over in-memory text.
//
// # Scanning
//
// The Scanner type implements a lexical scanner for JSON. Construct a scanner
// from a byte slice and call its Next method to iterate over the stream:
//
//	s := json.NewScanner(input)
//	for s.Next() {
//	   log.Printf("Next token: %v", s.Token())
//	}
//	if s.Err() != nil {
//	   log.Fatalf("Scanning failed: %v", s.Err())
//	}
//
// # Streaming
//
// The Stream type implements an event-driven parser for a single JSON
// document. The parser reports the structure of the input by calling methods
// on a Sink value: StartObject/EndObject and StartArray/EndArray bracket
// containers, Key reports an object member key, and the typed value methods
// (BooleanValue, IntegerValue, UnsignedValue, FloatValue, NullValue,
// StringValue) report scalars. Every Sink method returns a "continue parsing"
// signal; returning false stops the stream at the current token.
//
// In case of malformed input the sink receives a single ParseError event
// carrying the byte offset and raw text of the offending token, and Parse
// returns an error of concrete type *SyntaxError:
//
//	st := json.NewStream(input)
//	if err := st.Parse(sink); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// The parser guarantees begin and end events are correctly balanced and that
// each Key event is followed by the events of exactly one value, so a Sink
// may rely on event order without re-checking the grammar.
package json
