// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "testing"

func TestSlotPool_AllocateLowestFirst(t *testing.T) {
	p := newSlotPool(3)
	owner := Handle{idx: 1, gen: 1}

	for want := 0; want < 3; want++ {
		slot, ok := p.allocate(owner)
		if !ok {
			t.Fatalf("allocate #%d failed", want)
		}
		if slot != want {
			t.Errorf("allocate returned %d, want %d", slot, want)
		}
	}
}

func TestSlotPool_Exhaustion(t *testing.T) {
	p := newSlotPool(1)
	if _, ok := p.allocate(Handle{idx: 0, gen: 1}); !ok {
		t.Fatal("first allocate failed")
	}
	if _, ok := p.allocate(Handle{idx: 1, gen: 1}); ok {
		t.Error("allocate succeeded on exhausted pool")
	}
}

func TestSlotPool_ZeroCapacity(t *testing.T) {
	p := newSlotPool(0)
	if _, ok := p.allocate(Handle{idx: 0, gen: 1}); ok {
		t.Error("allocate succeeded on zero-capacity pool")
	}
	p.collect() // must not panic
}

func TestSlotPool_DeferredRecycle(t *testing.T) {
	p := newSlotPool(1)
	slot, _ := p.allocate(Handle{idx: 0, gen: 1})

	p.release(slot)

	// Pending-recycle slots are not allocatable until collect runs.
	if _, ok := p.allocate(Handle{idx: 1, gen: 1}); ok {
		t.Fatal("allocate handed out a slot pending recycle")
	}
	if p.freeCount() != 0 {
		t.Errorf("freeCount = %d before collect, want 0", p.freeCount())
	}

	p.collect()

	got, ok := p.allocate(Handle{idx: 1, gen: 1})
	if !ok {
		t.Fatal("allocate failed after collect")
	}
	if got != slot {
		t.Errorf("allocate returned %d, want recycled slot %d", got, slot)
	}
}

func TestSlotPool_Owner(t *testing.T) {
	p := newSlotPool(2)
	a := Handle{idx: 4, gen: 2}
	slot, _ := p.allocate(a)

	if got := p.ownerOf(slot); got != a {
		t.Errorf("ownerOf = %+v, want %+v", got, a)
	}

	p.release(slot)
	if got := p.ownerOf(slot); !got.IsNull() {
		t.Errorf("ownerOf after release = %+v, want null", got)
	}
}

func TestSlotPool_LowestFreeAfterMixedRelease(t *testing.T) {
	p := newSlotPool(3)
	h := Handle{idx: 0, gen: 1}
	p.allocate(h)
	p.allocate(h)
	p.allocate(h)

	p.release(1)
	p.collect()

	slot, ok := p.allocate(h)
	if !ok || slot != 1 {
		t.Errorf("allocate = (%d, %v), want (1, true)", slot, ok)
	}
}
