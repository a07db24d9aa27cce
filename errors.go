// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "errors"

// Sentinel errors for construction and precondition failures. Pool
// exhaustion is deliberately absent: running out of dynamic slots is an
// expected runtime condition, handled by pinning, not an error.
var (
	// ErrStyleOutOfRange is returned when a style or uniform index does
	// not address its table.
	ErrStyleOutOfRange = errors.New("styleanim: style out of range")

	// ErrNilEasing is returned by Create when no easing is given.
	ErrNilEasing = errors.New("styleanim: nil easing")

	// ErrCapacityExhausted is returned by Create when every animation
	// record is in use.
	ErrCapacityExhausted = errors.New("styleanim: animation capacity exhausted")

	// ErrSizeMismatch is returned by Advance when the frame vectors or
	// output buffers do not match the animator's capacities.
	ErrSizeMismatch = errors.New("styleanim: size mismatch")

	// ErrStaleHandle is returned when a handle does not address a live
	// animation.
	ErrStaleHandle = errors.New("styleanim: stale handle")
)
