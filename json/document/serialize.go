// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document

import (
	"strconv"
	"strings"

	"github.com/asraa/envoy/json"
)

// JSON returns the canonical textual rendering of v. Rendering is total:
// every kind has a defined form, null included. Array elements appear in
// insertion order and object members in sorted key order, so two trees with
// the same logical content always render identically, regardless of the
// member order of their source text.
func (v *Value) JSON() string { return string(v.appendJSON(nil)) }

func (v *Value) appendJSON(dst []byte) []byte {
	switch v.kind {
	case Null:
		return append(dst, "null"...)
	case Boolean:
		return strconv.AppendBool(dst, v.b)
	case Integer:
		return strconv.AppendInt(dst, v.i, 10)
	case Double:
		return appendDouble(dst, v.f)
	case String:
		return json.AppendQuote(dst, v.s)
	case Array:
		dst = append(dst, '[')
		for i, elt := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elt.appendJSON(dst)
		}
		return append(dst, ']')
	default: // Object
		dst = append(dst, '{')
		for i, key := range v.sortedKeys() {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = json.AppendQuote(dst, key)
			dst = append(dst, ':')
			dst = v.obj[key].appendJSON(dst)
		}
		return append(dst, '}')
	}
}

// appendDouble renders f so that the result still reads back as a
// floating-point value: integral floats gain a trailing ".0" rather than
// collapsing into the integer form.
func appendDouble(dst []byte, f float64) []byte {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return append(dst, s...)
}
