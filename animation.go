// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

// noSlot and noElement mark the absent states of an animation's optional
// dynamic slot and element attachment.
const (
	noSlot    = -1
	noElement = -1
)

// animation is the per-animation persistent record. Records live in a
// fixed arena indexed by Handle and are overwritten in place when a
// handle is reused, so steady-state operation allocates nothing.
type animation struct {
	gen   uint32
	inUse bool

	source StyleID
	target StyleID
	easing Easing

	// slot is the owned dynamic slot, or noSlot until first allocated
	// and again after recycling.
	slot int

	// element is the attached element index, or noElement for a
	// free-floating animation.
	element int

	// Snapshots captured once when the animation starts. The style
	// table may be re-assigned between ticks; an in-flight animation
	// keeps interpolating the values it started with.
	srcUniform Uniform
	dstUniform Uniform
	srcPadding Vec4
	dstPadding Vec4

	// uniformDiffers is true only when source and target map to
	// different uniform indices. It is an identity check, not a deep
	// value comparison: two distinct indices holding equal payloads
	// still count as different and are interpolated anyway.
	uniformDiffers bool

	// slotFresh marks the first interpolation tick after the slot was
	// allocated, which must flag the uniform for upload regardless of
	// uniformDiffers.
	slotFresh bool
}

// reset prepares a record for a new occupant, keeping the generation.
func (rec *animation) reset() {
	gen := rec.gen
	*rec = animation{gen: gen, slot: noSlot, element: noElement}
}
