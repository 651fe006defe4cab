// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document

import "errors"

// Errors reported by the accessor methods of a Value. Accessor failures are
// deterministic functions of the tree and the call made; they indicate a
// caller usage error or unexpected input shape, never a transient condition,
// so retrying an accessor is never useful. All are reported wrapped, with
// context, and can be tested with errors.Is.
var (
	// ErrTypeMismatch means an accessor was invoked on a value whose kind
	// does not support it, or a container element had the wrong kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrKeyMissing means a strict object lookup named a key with no entry.
	ErrKeyMissing = errors.New("key missing")

	// ErrKeyMissingOrWrongType means a typed scalar lookup named a key that
	// is either absent or present with a different kind. The two cases are
	// deliberately not distinguished.
	ErrKeyMissingOrWrongType = errors.New("key missing or wrong type")

	// ErrNotImplemented is reported by accessor operations that are
	// intentionally unsupported.
	ErrNotImplemented = errors.New("not implemented")
)
