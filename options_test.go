// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "testing"

// TestNewAnimatorDefaults tests that NewAnimator applies default capacities.
func TestNewAnimatorDefaults(t *testing.T) {
	table := mustTable(t)
	a, err := NewAnimator(table)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if a.AnimationCapacity() != 64 {
		t.Errorf("AnimationCapacity() = %d, want 64", a.AnimationCapacity())
	}
	if a.PoolCapacity() != 16 {
		t.Errorf("PoolCapacity() = %d, want 16", a.PoolCapacity())
	}
	if a.ElementCapacity() != 0 {
		t.Errorf("ElementCapacity() = %d, want 0", a.ElementCapacity())
	}
}

// TestNewAnimatorWithCapacities tests capacity injection.
func TestNewAnimatorWithCapacities(t *testing.T) {
	table := mustTable(t)
	a, err := NewAnimator(table,
		WithAnimationCapacity(4),
		WithPoolCapacity(2),
		WithElementCapacity(10),
	)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}
	if a.AnimationCapacity() != 4 {
		t.Errorf("AnimationCapacity() = %d, want 4", a.AnimationCapacity())
	}
	if a.PoolCapacity() != 2 {
		t.Errorf("PoolCapacity() = %d, want 2", a.PoolCapacity())
	}
	if a.ElementCapacity() != 10 {
		t.Errorf("ElementCapacity() = %d, want 10", a.ElementCapacity())
	}
}

// TestNewAnimatorWithSwitcher tests dependency injection of the
// style-switch step.
func TestNewAnimatorWithSwitcher(t *testing.T) {
	table := mustTable(t)
	called := false
	custom := func(a *Animator, frame Frame, out *Output) Digest {
		called = true
		return DigestAssignment
	}
	a, err := NewAnimator(table,
		WithAnimationCapacity(1),
		WithPoolCapacity(1),
		WithSwitcher(custom),
	)
	if err != nil {
		t.Fatalf("NewAnimator: %v", err)
	}

	frame := NewFrame(1)
	out := NewOutput(1, 0)
	digest, err := a.Advance(frame, out)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if !called {
		t.Error("custom switcher was not invoked")
	}
	if !digest.Has(DigestAssignment) {
		t.Error("custom switcher digest not folded into pass digest")
	}
}

func TestNewAnimatorErrors(t *testing.T) {
	if _, err := NewAnimator(nil); err == nil {
		t.Error("expected error for nil table")
	}
	table := mustTable(t)
	if _, err := NewAnimator(table, WithPoolCapacity(-1)); err == nil {
		t.Error("expected error for negative capacity")
	}
}
