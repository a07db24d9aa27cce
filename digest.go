// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "strings"

// Digest is the set of "what changed" flags accumulated across one
// advance pass. Callers use it to gate the expensive downstream work:
// GPU buffer re-upload for uniforms, layout recompute for padding and
// assignments. If no animation was active, the digest is zero.
type Digest uint8

const (
	// DigestUniform is set when any slot's uniform bundle needs
	// re-upload: it was interpolated this tick, or the slot entered
	// first-time use and must be uploaded at least once.
	DigestUniform Digest = 1 << iota

	// DigestPadding is set only when a slot's padding value actually
	// moved this tick. Padding forces a layout pass downstream, so it
	// is flagged far more sparingly than uniforms.
	DigestPadding

	// DigestAssignment is set when any element's style assignment
	// changed this tick.
	DigestAssignment
)

// Has reports whether all flags in mask are set.
func (d Digest) Has(mask Digest) bool {
	return d&mask == mask
}

// String returns a readable flag list, e.g. "uniform|padding".
func (d Digest) String() string {
	if d == 0 {
		return "none"
	}
	var parts []string
	if d.Has(DigestUniform) {
		parts = append(parts, "uniform")
	}
	if d.Has(DigestPadding) {
		parts = append(parts, "padding")
	}
	if d.Has(DigestAssignment) {
		parts = append(parts, "assignment")
	}
	return strings.Join(parts, "|")
}
