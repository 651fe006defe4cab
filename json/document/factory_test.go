// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/asraa/envoy/json"
	"github.com/asraa/envoy/json/document"
)

func TestLoadFromString(t *testing.T) {
	root := mustLoad(t, `{"a": 1, "a": 2, "b": [true]}`)

	// The last entry for a duplicated key wins.
	if got, err := root.GetInteger("a"); err != nil || got != 2 {
		t.Errorf("GetInteger(a): got %v, %v; want 2", got, err)
	}

	// Array roots are accepted too.
	arr, err := document.LoadFromString(`[{"x": 1}]`)
	if err != nil {
		t.Fatalf("LoadFromString failed: %v", err)
	}
	if !arr.IsArray() {
		t.Errorf("Root is %v, want array", arr.Kind())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		token  string
	}{
		{``, 0, ""},
		{`{"a": }`, 6, "}"},
		{`{"a": 1`, 7, ""},
		{`[1, 2`, 5, ""},
		{`{"a": 1} trailing`, 9, "trailing"},
		{`{"a": tru}`, 6, "tru"},

		// Scalar roots are rejected by the construction state machine.
		{`"just a string"`, 0, `"just a string"`},
		{`5`, 0, "5"},
		{`null`, 0, "null"},
	}

	for _, test := range tests {
		root, err := document.LoadFromString(test.input)
		if err == nil {
			t.Errorf("Input: %#q: LoadFromString did not report an error", test.input)
			continue
		}
		if root != nil {
			t.Errorf("Input: %#q: a root was returned alongside error %v", test.input, err)
		}

		var serr *json.SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Input: %#q: error %v does not wrap *SyntaxError", test.input, err)
			continue
		}
		if serr.Offset != test.offset || serr.Token != test.token {
			t.Errorf("Input: %#q: error at offset %d token %q, want offset %d token %q",
				test.input, serr.Offset, serr.Token, test.offset, test.token)
		}
		if serr.Msg == "" {
			t.Errorf("Input: %#q: error has an empty message", test.input)
		}
	}
}

func TestLoadFromStringLenient(t *testing.T) {
	const input = `{
  // listener settings
  "port": 8443, /* active */
  "hosts": ["a.example",],
}`

	if _, err := document.LoadFromString(input); err == nil {
		t.Error("strict LoadFromString accepted commented input")
	}

	root, err := document.LoadFromStringLenient(input)
	if err != nil {
		t.Fatalf("LoadFromStringLenient failed: %v", err)
	}
	if got, err := root.GetInteger("port"); err != nil || got != 8443 {
		t.Errorf("GetInteger(port): got %v, %v; want 8443", got, err)
	}
	if got, err := root.GetStringArray("hosts", false); err != nil || len(got) != 1 {
		t.Errorf("GetStringArray(hosts): got %v, %v; want one element", got, err)
	}

	if _, err := document.LoadFromStringLenient(`{"unclosed": `); err == nil {
		t.Error("LoadFromStringLenient accepted malformed input")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"name": "from-file"}`), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	root, err := document.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if got, err := root.GetString("name"); err != nil || got != "from-file" {
		t.Errorf("GetString(name): got %q, %v; want from-file", got, err)
	}

	if _, err := document.LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("LoadFromFile did not report a missing file")
	}
}
