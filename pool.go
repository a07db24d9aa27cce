// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

// slotState tracks a dynamic slot through its ownership cycle.
//
// Slots move Free → Owned → PendingRecycle → Free. The last transition
// happens only when the owning animator promotes pending recycles, after
// its allocation step, so a slot released by one animation is never
// handed to another animation within the same pass nor in the pass that
// immediately follows the release.
type slotState uint8

const (
	slotFree slotState = iota
	slotOwned
	slotPendingRecycle
)

// slotPool is the fixed-capacity pool of dynamic style slots. It holds
// ownership bookkeeping only; the interpolated uniform and padding values
// live in the caller-owned Output arrays. Stale values are left in place
// on release since a new owner overwrites them before they are read.
type slotPool struct {
	state []slotState
	owner []Handle
}

func newSlotPool(capacity int) slotPool {
	return slotPool{
		state: make([]slotState, capacity),
		owner: make([]Handle, capacity),
	}
}

func (p *slotPool) capacity() int {
	return len(p.state)
}

// allocate returns the lowest-numbered free slot and assigns it to owner.
// Returns false when the pool is exhausted; exhaustion is an expected
// runtime condition, not an error.
func (p *slotPool) allocate(owner Handle) (int, bool) {
	for i, s := range p.state {
		if s == slotFree {
			p.state[i] = slotOwned
			p.owner[i] = owner
			return i, true
		}
	}
	return 0, false
}

// release marks a slot for recycling. The slot stays unavailable until
// collect runs.
func (p *slotPool) release(slot int) {
	p.state[slot] = slotPendingRecycle
	p.owner[slot] = NullHandle
}

// collect completes pending recycles, making those slots allocatable.
// The animator calls it once per advance pass, after allocation and
// before new releases.
func (p *slotPool) collect() {
	for i, s := range p.state {
		if s == slotPendingRecycle {
			p.state[i] = slotFree
		}
	}
}

// ownerOf returns the handle owning slot, or NullHandle.
func (p *slotPool) ownerOf(slot int) Handle {
	return p.owner[slot]
}

// freeCount returns the number of immediately allocatable slots.
func (p *slotPool) freeCount() int {
	n := 0
	for _, s := range p.state {
		if s == slotFree {
			n++
		}
	}
	return n
}
