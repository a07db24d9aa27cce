// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

// Handle identifies an animation in an Animator. It pairs a record index
// with a generation counter so a handle left over from a removed animation
// can never address the record's next occupant: the generation is bumped
// every time the record is reclaimed.
//
// Handles are opaque; Index is exported only because the external
// scheduler addresses its bit-vectors by the same index.
type Handle struct {
	idx uint32
	gen uint32
}

// NullHandle is the zero Handle. It is never valid: generations start
// at 1, so the zero value cannot match a live record.
var NullHandle = Handle{}

// IsNull reports whether the handle is the null handle.
func (h Handle) IsNull() bool {
	return h.gen == 0
}

// Index returns the animation's record index. Bits in the per-tick
// Frame bit-vectors and entries in Frame.Factor use this index.
func (h Handle) Index() int {
	return int(h.idx)
}
