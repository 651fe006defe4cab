// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package document

import "github.com/cespare/xxhash/v2"

// Hash returns a deterministic, non-cryptographic 64-bit digest of the
// canonical rendering of v. Because the canonical form orders object members
// by key, trees with the same logical content hash identically even when
// built from differently-ordered source text. The digest is suitable for
// configuration diffing and cache keys, not for security decisions.
func (v *Value) Hash() uint64 { return xxhash.Sum64(v.appendJSON(nil)) }
