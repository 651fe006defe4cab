// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document_test

import (
	"testing"
)

func TestCanonicalJSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{}`, `{}`},
		{`[]`, `[]`},
		{`{"a": null}`, `{"a":null}`},
		{`{"t": true, "f": false}`, `{"f":false,"t":true}`},

		// Object members are rendered in sorted key order regardless of
		// their order in the source text.
		{`{"b": 2, "a": 1, "c": 3}`, `{"a":1,"b":2,"c":3}`},
		{`{"outer": {"z": [1, 2], "a": {}}}`, `{"outer":{"a":{},"z":[1,2]}}`},

		// Arrays keep insertion order exactly.
		{`{"arr": [3, 1, 2]}`, `{"arr":[3,1,2]}`},

		// Strings are re-escaped; escapes decode before re-encoding.
		{`{"s": "a\"b\n\u0001"}`, `{"s":"a\"b\n\u0001"}`},
		{`{"s": "tab\there"}`, `{"s":"tab\there"}`},
		{`{"s": "\u0041"}`, `{"s":"A"}`},

		// Numbers: integers render without a point, doubles always read
		// back as doubles.
		{`{"n": -17}`, `{"n":-17}`},
		{`{"n": 2.0}`, `{"n":2.0}`},
		{`{"n": 0.5}`, `{"n":0.5}`},
		{`{"n": 3e300}`, `{"n":3e+300}`},
	}

	for _, test := range tests {
		root := mustLoad(t, test.input)
		if got := root.JSON(); got != test.want {
			t.Errorf("Input: %#q\nJSON: got  %s\n      want %s", test.input, got, test.want)
		}
	}
}

// TestRoundTrip re-parses canonical renderings and checks that the rendering
// is a fixed point: the reloaded tree serializes and hashes identically and
// answers accessors the same way.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		testConfig,
		`{"a": {"b": {"c": [[["deep"]]]}}}`,
		`[{"x": 1}, {"y": [true, false, null]}]`,
		`{"esc": "quote\" slash\\ tab\t", "unicode": "Ǽꪜ"}`,
	}

	for _, input := range inputs {
		first := mustLoad(t, input)
		second := mustLoad(t, first.JSON())

		if g1, g2 := first.JSON(), second.JSON(); g1 != g2 {
			t.Errorf("Input: %#q\nFirst:  %s\nSecond: %s", input, g1, g2)
		}
		if h1, h2 := first.Hash(), second.Hash(); h1 != h2 {
			t.Errorf("Input: %#q: hashes differ: %016x vs %016x", input, h1, h2)
		}
	}

	// Spot-check that query results survive the trip.
	reload := mustLoad(t, mustLoad(t, testConfig).JSON())
	if got, err := reload.GetInteger("weight"); err != nil || got != -5 {
		t.Errorf("GetInteger(weight) after round trip: got %v, %v; want -5", got, err)
	}
	if got, err := reload.GetStringArray("domains", false); err != nil || len(got) != 2 {
		t.Errorf("GetStringArray(domains) after round trip: got %v, %v", got, err)
	}
	lst, err := reload.GetObject("listener", false)
	if err != nil {
		t.Fatalf("GetObject(listener) after round trip: %v", err)
	}
	if got, err := lst.GetInteger("port"); err != nil || got != 8443 {
		t.Errorf("GetInteger(port) after round trip: got %v, %v; want 8443", got, err)
	}
}

func TestHash(t *testing.T) {
	// Two independent constructions from identical text hash identically.
	h1 := mustLoad(t, testConfig).Hash()
	h2 := mustLoad(t, testConfig).Hash()
	if h1 != h2 {
		t.Errorf("Hashes of identical input differ: %016x vs %016x", h1, h2)
	}

	// Reordered object members hash identically because the canonical form
	// sorts keys.
	r1 := mustLoad(t, `{"a": 1, "b": [true, null]}`).Hash()
	r2 := mustLoad(t, `{"b": [true, null], "a": 1}`).Hash()
	if r1 != r2 {
		t.Errorf("Hashes of reordered members differ: %016x vs %016x", r1, r2)
	}

	// Reordered array elements are different content.
	a1 := mustLoad(t, `{"a": [1, 2]}`).Hash()
	a2 := mustLoad(t, `{"a": [2, 1]}`).Hash()
	if a1 == a2 {
		t.Errorf("Hashes of different arrays collide: %016x", a1)
	}

	if mustLoad(t, `{"a": 1}`).Hash() == mustLoad(t, `{"a": 2}`).Hash() {
		t.Error("Hashes of different documents collide")
	}
}
