// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document

import (
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/asraa/envoy/json"
)

// LoadFromString parses text as a single JSON document whose root is an
// object or an array, and returns the completed tree. On malformed input no
// root is returned and the error wraps a [*json.SyntaxError] locating the
// offending token by byte offset.
func LoadFromString(text string) (*Value, error) {
	b := newTreeBuilder()
	if err := json.NewStream([]byte(text)).Parse(b); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return b.root, nil
}

// LoadFromStringLenient is LoadFromString for input that may carry comments
// and trailing commas, as older hand-written proxy configurations often do.
// The input is standardized to plain JSON before parsing, so error offsets
// refer to the standardized text rather than the original.
func LoadFromStringLenient(text string) (*Value, error) {
	std, err := hujson.Standardize([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return LoadFromString(string(std))
}

// LoadFromFile reads the file at path and parses it with LoadFromString.
func LoadFromFile(path string) (*Value, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	v, err := LoadFromString(string(text))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return v, nil
}
