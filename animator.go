// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "fmt"

// SwitchFunc is the style-assignment switching step that runs first in
// every advance pass, before snapshots, interpolation, and recycling.
// The built-in implementation assigns an attached element its source
// style when the animation starts and its target style when it stops.
type SwitchFunc func(a *Animator, frame Frame, out *Output) Digest

// CleanupFunc is invoked after the recycle step for each animation that
// stopped this tick. element is noElement (-1) for detached animations.
type CleanupFunc func(h Handle, element int)

// Animator drives style transitions over a bounded pool of dynamic style
// slots. It consumes the external scheduler's per-tick bit-vectors and
// writes interpolated values into caller-owned output buffers, reporting
// what changed through a Digest.
//
// Animator is strictly single-threaded: Advance is called once per UI
// tick from the host's main loop, and no internal state is shared across
// goroutines.
type Animator struct {
	table *StyleTable

	records  []animation
	freeList []uint32

	pool slotPool

	elementCapacity int

	switcher SwitchFunc
	cleanup  CleanupFunc
}

// NewAnimator creates an animator over the given style table.
func NewAnimator(table *StyleTable, opts ...Option) (*Animator, error) {
	if table == nil {
		return nil, fmt.Errorf("styleanim: nil style table")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.animationCapacity < 0 || o.poolCapacity < 0 || o.elementCapacity < 0 {
		return nil, fmt.Errorf("styleanim: negative capacity")
	}

	a := &Animator{
		table:           table,
		records:         make([]animation, o.animationCapacity),
		freeList:        make([]uint32, 0, o.animationCapacity),
		pool:            newSlotPool(o.poolCapacity),
		elementCapacity: o.elementCapacity,
		switcher:        o.switcher,
		cleanup:         o.cleanup,
	}
	for i := range a.records {
		a.records[i].gen = 1
		a.records[i].slot = noSlot
		a.records[i].element = noElement
	}
	// Lowest indices allocate first.
	for i := o.animationCapacity - 1; i >= 0; i-- {
		a.freeList = append(a.freeList, uint32(i))
	}
	return a, nil
}

// AnimationCapacity returns the number of animation records.
func (a *Animator) AnimationCapacity() int {
	return len(a.records)
}

// PoolCapacity returns the number of dynamic style slots.
func (a *Animator) PoolCapacity() int {
	return a.pool.capacity()
}

// ElementCapacity returns the size of the element assignment space.
func (a *Animator) ElementCapacity() int {
	return a.elementCapacity
}

// FreeSlots returns the number of immediately allocatable dynamic slots.
// Slots pending recycle do not count until a later Advance promotes them.
func (a *Animator) FreeSlots() int {
	return a.pool.freeCount()
}

// Create registers a style transition from source to target and returns
// its handle. The easing must be non-nil and both styles must index the
// table; violations are caller bugs and are reported immediately.
//
// source == target is legal and degenerates to a no-op interpolation.
func (a *Animator) Create(source, target StyleID, easing Easing) (Handle, error) {
	if easing == nil {
		return NullHandle, ErrNilEasing
	}
	if int(source) < 0 || int(source) >= a.table.Len() {
		return NullHandle, fmt.Errorf("%w: source style %d, table has %d", ErrStyleOutOfRange, source, a.table.Len())
	}
	if int(target) < 0 || int(target) >= a.table.Len() {
		return NullHandle, fmt.Errorf("%w: target style %d, table has %d", ErrStyleOutOfRange, target, a.table.Len())
	}
	if len(a.freeList) == 0 {
		return NullHandle, fmt.Errorf("%w: all %d records in use", ErrCapacityExhausted, len(a.records))
	}

	idx := a.freeList[len(a.freeList)-1]
	a.freeList = a.freeList[:len(a.freeList)-1]

	rec := &a.records[idx]
	rec.reset()
	rec.inUse = true
	rec.source = source
	rec.target = target
	rec.easing = easing

	return Handle{idx: idx, gen: rec.gen}, nil
}

// Valid reports whether h addresses a live animation.
func (a *Animator) Valid(h Handle) bool {
	if h.IsNull() || int(h.idx) >= len(a.records) {
		return false
	}
	rec := &a.records[h.idx]
	return rec.inUse && rec.gen == h.gen
}

// Attach binds the animation to an element, so the element's assignment
// entry follows the transition. An animation may also run detached; its
// slot still interpolates and the caller reads the slot values directly.
func (a *Animator) Attach(h Handle, element int) error {
	if !a.Valid(h) {
		return ErrStaleHandle
	}
	if element < 0 || element >= a.elementCapacity {
		return fmt.Errorf("styleanim: element %d out of range [0, %d)", element, a.elementCapacity)
	}
	a.records[h.idx].element = element
	return nil
}

// Detach unbinds the animation from its element.
func (a *Animator) Detach(h Handle) {
	if a.Valid(h) {
		a.records[h.idx].element = noElement
	}
}

// Source returns the animation's source style and whether h is live.
func (a *Animator) Source(h Handle) (StyleID, bool) {
	if !a.Valid(h) {
		return 0, false
	}
	return a.records[h.idx].source, true
}

// Target returns the animation's target style and whether h is live.
func (a *Animator) Target(h Handle) (StyleID, bool) {
	if !a.Valid(h) {
		return 0, false
	}
	return a.records[h.idx].target, true
}

// Element returns the attached element index and whether one is attached.
func (a *Animator) Element(h Handle) (int, bool) {
	if !a.Valid(h) {
		return 0, false
	}
	e := a.records[h.idx].element
	return e, e != noElement
}

// Slot returns the animation's dynamic slot index and whether it
// currently owns one.
func (a *Animator) Slot(h Handle) (int, bool) {
	if !a.Valid(h) {
		return 0, false
	}
	s := a.records[h.idx].slot
	if s == noSlot {
		return 0, false
	}
	return s, true
}

// Advance runs one update pass over the scheduler's frame and writes
// interpolated values into out. The pass is a fixed five-step sequence:
//
//  1. Style-assignment switching (built-in or injected SwitchFunc).
//  2. Snapshot source/target payloads for animations that started.
//  3. Interpolate every active, not-stopped animation into its slot,
//     allocating a slot on first need. Exhaustion is not an error: the
//     animation is skipped and stays pinned at its source style.
//  4. Release the slots of stopped and removed animations. Releases are
//     deferred: a slot released in pass N sits out pass N+1's allocations
//     entirely and is handed out again no earlier than pass N+2.
//  5. Invoke the cleanup hook for stopped animations.
//
// Removed animations' records are reclaimed after the pass; their
// handles go stale immediately.
func (a *Animator) Advance(frame Frame, out *Output) (Digest, error) {
	if err := frame.validate(len(a.records)); err != nil {
		return 0, err
	}
	if err := out.validate(a.pool.capacity(), a.elementCapacity); err != nil {
		return 0, err
	}

	var digest Digest

	// Step 1: style-assignment switching.
	if a.switcher != nil {
		digest |= a.switcher(a, frame, out)
	} else {
		digest |= a.switchStyles(frame, out)
	}

	// Step 2: snapshot endpoints for animations starting this tick.
	for i, ok := frame.Started.NextSet(0); ok; i, ok = frame.Started.NextSet(i + 1) {
		rec := &a.records[i]
		if !rec.inUse {
			continue
		}
		src := a.table.Style(rec.source)
		dst := a.table.Style(rec.target)
		rec.srcUniform = a.table.Uniform(src.Uniform)
		rec.dstUniform = a.table.Uniform(dst.Uniform)
		rec.srcPadding = src.Padding
		rec.dstPadding = dst.Padding
		rec.uniformDiffers = src.Uniform != dst.Uniform
	}

	// Step 3: interpolate active animations, allocating slots on demand.
	for i, ok := frame.Active.NextSet(0); ok; i, ok = frame.Active.NextSet(i + 1) {
		if frame.Stopped.Test(i) {
			continue
		}
		rec := &a.records[i]
		if !rec.inUse {
			continue
		}
		if rec.slot == noSlot {
			slot, ok := a.pool.allocate(Handle{idx: uint32(i), gen: rec.gen})
			if !ok {
				// Pinned at source style until a slot frees up.
				Logger().Debug("dynamic style pool exhausted", "animation", i)
				continue
			}
			rec.slot = slot
			rec.slotFresh = true
			if rec.element != noElement {
				out.Assignments[rec.element] = DynamicStyle(slot)
				digest |= DigestAssignment
			}
		}
		digest |= a.interpolate(rec, frame.Factor[i], out)
		rec.slotFresh = false
	}

	// Promote recycles deferred by earlier passes. Running this after
	// allocation keeps a released slot out of the allocator for one full
	// pass: released in pass N, promoted here in pass N+1, issued no
	// earlier than pass N+2.
	a.pool.collect()

	// Step 4: deferred slot release for stopped and removed animations.
	for i, ok := frame.Stopped.NextSet(0); ok; i, ok = frame.Stopped.NextSet(i + 1) {
		rec := &a.records[i]
		if rec.inUse && rec.slot != noSlot {
			a.pool.release(rec.slot)
			rec.slot = noSlot
			rec.slotFresh = false
		}
	}
	for i, ok := frame.Removed.NextSet(0); ok; i, ok = frame.Removed.NextSet(i + 1) {
		rec := &a.records[i]
		if !rec.inUse {
			continue
		}
		if rec.slot != noSlot {
			a.pool.release(rec.slot)
			rec.slot = noSlot
		}
		rec.inUse = false
		rec.gen++
		a.freeList = append(a.freeList, uint32(i))
	}

	// Step 5: attached-element cleanup, after the pass has settled.
	if a.cleanup != nil {
		for i, ok := frame.Stopped.NextSet(0); ok; i, ok = frame.Stopped.NextSet(i + 1) {
			rec := &a.records[i]
			if rec.inUse {
				a.cleanup(Handle{idx: uint32(i), gen: rec.gen}, rec.element)
			}
		}
	}

	return digest, nil
}

// switchStyles is the built-in step-1 switching: a starting animation
// pins its element to the source style (the slot binding in step 3
// upgrades it to the dynamic style when one is available); a stopping
// animation reassigns its element to the target style.
func (a *Animator) switchStyles(frame Frame, out *Output) Digest {
	var digest Digest
	for i, ok := frame.Started.NextSet(0); ok; i, ok = frame.Started.NextSet(i + 1) {
		rec := &a.records[i]
		if rec.inUse && rec.element != noElement {
			out.Assignments[rec.element] = TableStyle(rec.source)
			digest |= DigestAssignment
		}
	}
	for i, ok := frame.Stopped.NextSet(0); ok; i, ok = frame.Stopped.NextSet(i + 1) {
		rec := &a.records[i]
		if rec.inUse && rec.element != noElement {
			out.Assignments[rec.element] = TableStyle(rec.target)
			digest |= DigestAssignment
		}
	}
	return digest
}

// interpolate writes the animation's eased values into its slot and
// returns the digest bits this write contributes.
//
// Raw factors 0 and 1 bypass the easing and copy the snapshots verbatim,
// so the boundaries are exact rather than merely close.
func (a *Animator) interpolate(rec *animation, factor float64, out *Output) Digest {
	var digest Digest
	slot := rec.slot

	boundary := factor == 0 || factor == 1
	var eased float64
	if !boundary {
		eased = rec.easing(factor)
	}

	// Uniform: interpolated every tick while the endpoints differ.
	// Identical uniform indices skip both the work and the flag; the
	// slot then just carries a copy of the target bundle, written once.
	if rec.uniformDiffers {
		switch {
		case factor == 0:
			out.Uniforms[slot] = rec.srcUniform
		case factor == 1:
			out.Uniforms[slot] = rec.dstUniform
		default:
			out.Uniforms[slot] = rec.srcUniform.Lerp(rec.dstUniform, eased)
		}
		digest |= DigestUniform
	} else if rec.slotFresh {
		out.Uniforms[slot] = rec.dstUniform
		// A fresh slot's uniform must be uploaded at least once.
		digest |= DigestUniform
	}

	// Padding: interpolated every tick, but flagged only when the value
	// actually moved, because a padding change forces a layout pass
	// downstream. The fresh-slot write is initialization, not a change.
	var padding Vec4
	switch {
	case factor == 0:
		padding = rec.srcPadding
	case factor == 1:
		padding = rec.dstPadding
	default:
		padding = rec.srcPadding.Lerp(rec.dstPadding, eased)
	}
	if rec.slotFresh {
		out.Padding[slot] = padding
	} else if padding != out.Padding[slot] {
		out.Padding[slot] = padding
		digest |= DigestPadding
	}

	return digest
}
