// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document

import (
	"fmt"
	"slices"
)

// The Get* accessors below look up a named member of an object value.
// Calling any of them on a non-object reports ErrTypeMismatch. The strict
// forms require the member to be present with the exact kind named by the
// accessor. The Get*Or forms return the supplied default only when the key
// is entirely absent; a present member of the wrong kind still fails.

// GetBoolean returns the boolean member of v stored under key.
func (v *Value) GetBoolean(key string) (bool, error) {
	c, err := v.member(key, Boolean)
	if err != nil {
		return false, err
	}
	return c.b, nil
}

// GetBooleanOr is GetBoolean with a default for an absent key.
func (v *Value) GetBooleanOr(key string, def bool) (bool, error) {
	if ok, err := v.HasKey(key); err != nil {
		return false, err
	} else if !ok {
		return def, nil
	}
	return v.GetBoolean(key)
}

// GetInteger returns the integer member of v stored under key.
func (v *Value) GetInteger(key string) (int64, error) {
	c, err := v.member(key, Integer)
	if err != nil {
		return 0, err
	}
	return c.i, nil
}

// GetIntegerOr is GetInteger with a default for an absent key.
func (v *Value) GetIntegerOr(key string, def int64) (int64, error) {
	if ok, err := v.HasKey(key); err != nil {
		return 0, err
	} else if !ok {
		return def, nil
	}
	return v.GetInteger(key)
}

// GetDouble returns the floating-point member of v stored under key.
func (v *Value) GetDouble(key string) (float64, error) {
	c, err := v.member(key, Double)
	if err != nil {
		return 0, err
	}
	return c.f, nil
}

// GetDoubleOr is GetDouble with a default for an absent key.
func (v *Value) GetDoubleOr(key string, def float64) (float64, error) {
	if ok, err := v.HasKey(key); err != nil {
		return 0, err
	} else if !ok {
		return def, nil
	}
	return v.GetDouble(key)
}

// GetString returns the string member of v stored under key.
func (v *Value) GetString(key string) (string, error) {
	c, err := v.member(key, String)
	if err != nil {
		return "", err
	}
	return c.s, nil
}

// GetStringOr is GetString with a default for an absent key.
func (v *Value) GetStringOr(key string, def string) (string, error) {
	if ok, err := v.HasKey(key); err != nil {
		return "", err
	} else if !ok {
		return def, nil
	}
	return v.GetString(key)
}

// GetObject returns the object member of v stored under key. If the key is
// absent and allowEmpty is true, a fresh empty object not attached to the
// tree is returned instead of an error; if the key is absent and allowEmpty
// is false, GetObject reports ErrKeyMissing. A present member that is not an
// object reports ErrTypeMismatch regardless of allowEmpty.
func (v *Value) GetObject(key string, allowEmpty bool) (*Value, error) {
	if err := v.checkKind(Object); err != nil {
		return nil, err
	}
	c, ok := v.obj[key]
	switch {
	case !ok && allowEmpty:
		return NewObject(), nil
	case !ok:
		return nil, fmt.Errorf("key %q: %w", key, ErrKeyMissing)
	case c.kind != Object:
		return nil, fmt.Errorf("key %q is not an object: %w", key, ErrTypeMismatch)
	}
	return c, nil
}

// GetObjectArray returns the elements of the array member of v stored under
// key. allowEmpty substitutes an empty sequence for an absent key only; a
// present member that is not an array always fails.
func (v *Value) GetObjectArray(key string, allowEmpty bool) ([]*Value, error) {
	c, err := v.arrayMember(key, allowEmpty)
	if c == nil || err != nil {
		return nil, err
	}
	return slices.Clone(c.arr), nil
}

// GetStringArray returns the elements of the array member of v stored under
// key, which must all be strings; a single element of any other kind fails
// the whole call with ErrTypeMismatch. allowEmpty substitutes an empty
// sequence for an absent key only.
func (v *Value) GetStringArray(key string, allowEmpty bool) ([]string, error) {
	c, err := v.arrayMember(key, allowEmpty)
	if c == nil || err != nil {
		return nil, err
	}
	out := make([]string, len(c.arr))
	for i, elt := range c.arr {
		if elt.kind != String {
			return nil, fmt.Errorf("array %q does not contain all strings: %w", key, ErrTypeMismatch)
		}
		out[i] = elt.s
	}
	return out, nil
}

// arrayMember resolves the array member under key for the Get*Array
// accessors. It returns a nil value with a nil error when the key is absent
// and allowEmpty applies.
func (v *Value) arrayMember(key string, allowEmpty bool) (*Value, error) {
	if err := v.checkKind(Object); err != nil {
		return nil, err
	}
	c, ok := v.obj[key]
	if !ok && allowEmpty {
		return nil, nil
	}
	if !ok || c.kind != Array {
		return nil, fmt.Errorf("key %q missing or not an array: %w", key, ErrKeyMissingOrWrongType)
	}
	return c, nil
}

// member resolves the scalar member under key for the strict typed getters.
func (v *Value) member(key string, want Kind) (*Value, error) {
	if err := v.checkKind(Object); err != nil {
		return nil, err
	}
	c, ok := v.obj[key]
	if !ok || c.kind != want {
		return nil, fmt.Errorf("key %q missing or not a %s: %w", key, want, ErrKeyMissingOrWrongType)
	}
	return c, nil
}

// AsBoolean returns the receiver's own boolean payload.
func (v *Value) AsBoolean() (bool, error) {
	if err := v.checkKind(Boolean); err != nil {
		return false, err
	}
	return v.b, nil
}

// AsInteger returns the receiver's own integer payload.
func (v *Value) AsInteger() (int64, error) {
	if err := v.checkKind(Integer); err != nil {
		return 0, err
	}
	return v.i, nil
}

// AsDouble returns the receiver's own floating-point payload.
func (v *Value) AsDouble() (float64, error) {
	if err := v.checkKind(Double); err != nil {
		return 0, err
	}
	return v.f, nil
}

// AsString returns the receiver's own string payload.
func (v *Value) AsString() (string, error) {
	if err := v.checkKind(String); err != nil {
		return "", err
	}
	return v.s, nil
}

// AsObjectArray returns the elements of an array receiver.
func (v *Value) AsObjectArray() ([]*Value, error) {
	if err := v.checkKind(Array); err != nil {
		return nil, err
	}
	return slices.Clone(v.arr), nil
}

// ValidateSchema reports ErrNotImplemented. Schema validation is reserved
// API surface; no validator is wired in.
func (v *Value) ValidateSchema(schema string) error { return ErrNotImplemented }
