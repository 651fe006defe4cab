// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package document implements a dynamic, schema-free JSON document tree.
//
// A tree is built by feeding the parse events of a [json.Stream] into a
// construction state machine, and is usually obtained through LoadFromString
// or one of the other factory functions. Completed trees are immutable and
// may be shared freely across goroutines; reads never lock. The typed
// accessors (GetBoolean, GetObject, GetStringArray, and so on) are fail-fast:
// a lookup that does not match the stored shape of the data reports an error
// rather than coercing the value.
//
// Trees re-serialize to a canonical textual form via the JSON method, and
// Hash derives a deterministic 64-bit digest of that form for cheap
// content comparison and caching.
package document

import (
	"fmt"
	"maps"
	"slices"
)

// Kind is the type tag of a Value. A Value's kind is fixed when the value is
// created and never changes.
type Kind byte

// Constants defining the valid Kind values.
const (
	Null Kind = iota
	Boolean
	Integer
	Double
	String
	Array
	Object
)

var kindStr = [...]string{
	Null:    "null",
	Boolean: "boolean",
	Integer: "integer",
	Double:  "double",
	String:  "string",
	Array:   "array",
	Object:  "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
	return kindStr[k]
}

// A Value is a single node of a document tree: a scalar, an array, an
// object, or null. Handles to a Value may be shared by multiple owners;
// construction only ever appends fresh nodes, never re-parents an existing
// subtree, so no cycles can form. Any future mutating API must preserve
// that invariant.
type Value struct {
	kind Kind

	b   bool
	i   int64
	f   float64
	s   string
	arr []*Value
	obj map[string]*Value
}

// NewNull constructs a null value. Null carries no payload; it stands for an
// explicit JSON null in the source text.
func NewNull() *Value { return &Value{kind: Null} }

// NewBoolean constructs a boolean scalar value.
func NewBoolean(v bool) *Value { return &Value{kind: Boolean, b: v} }

// NewInteger constructs an integer scalar value.
func NewInteger(v int64) *Value { return &Value{kind: Integer, i: v} }

// NewDouble constructs a floating-point scalar value.
func NewDouble(v float64) *Value { return &Value{kind: Double, f: v} }

// NewString constructs a string scalar value.
func NewString(v string) *Value { return &Value{kind: String, s: v} }

// NewArray constructs a new empty array value.
func NewArray() *Value { return &Value{kind: Array} }

// NewObject constructs a new empty object value.
func NewObject() *Value { return &Value{kind: Object, obj: make(map[string]*Value)} }

// Kind returns the type tag of v.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v is a null value.
func (v *Value) IsNull() bool { return v.kind == Null }

// IsArray reports whether v is an array value.
func (v *Value) IsArray() bool { return v.kind == Array }

// IsObject reports whether v is an object value.
func (v *Value) IsObject() bool { return v.kind == Object }

// Append adds child to the end of an array value. It reports ErrTypeMismatch
// if v is not an array.
func (v *Value) Append(child *Value) error {
	if err := v.checkKind(Array); err != nil {
		return err
	}
	v.arr = append(v.arr, child)
	return nil
}

// Insert stores child under key in an object value, replacing any existing
// entry for that key. It reports ErrTypeMismatch if v is not an object.
func (v *Value) Insert(key string, child *Value) error {
	if err := v.checkKind(Object); err != nil {
		return err
	}
	v.obj[key] = child
	return nil
}

// Empty reports whether an object has no entries or an array has no
// elements. It reports ErrTypeMismatch for every other kind.
func (v *Value) Empty() (bool, error) {
	switch v.kind {
	case Object:
		return len(v.obj) == 0, nil
	case Array:
		return len(v.arr) == 0, nil
	}
	return false, fmt.Errorf("empty is not defined on a %s value: %w", v.kind, ErrTypeMismatch)
}

// HasKey reports whether an object value has an entry for key. A missing key
// is not an error, but calling HasKey on a non-object reports
// ErrTypeMismatch.
func (v *Value) HasKey(key string) (bool, error) {
	if err := v.checkKind(Object); err != nil {
		return false, err
	}
	_, ok := v.obj[key]
	return ok, nil
}

// Iterate visits each entry of an object value in sorted key order, which is
// stable for the lifetime of the node. Iteration stops early when visit
// returns false. Iterate reports ErrTypeMismatch if v is not an object.
func (v *Value) Iterate(visit func(key string, child *Value) bool) error {
	if err := v.checkKind(Object); err != nil {
		return err
	}
	for _, key := range v.sortedKeys() {
		if !visit(key, v.obj[key]) {
			break
		}
	}
	return nil
}

func (v *Value) sortedKeys() []string { return slices.Sorted(maps.Keys(v.obj)) }

func (v *Value) checkKind(want Kind) error {
	if v.kind != want {
		return fmt.Errorf("field accessed as %s does not match actual type %s: %w",
			want, v.kind, ErrTypeMismatch)
	}
	return nil
}
