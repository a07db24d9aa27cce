// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

// Option configures an Animator during creation.
// Use functional options to customize capacities and hooks.
//
// Example:
//
//	anim, err := styleanim.NewAnimator(table,
//	    styleanim.WithAnimationCapacity(128),
//	    styleanim.WithPoolCapacity(32),
//	    styleanim.WithElementCapacity(512),
//	)
type Option func(*animatorOptions)

// animatorOptions holds optional configuration for Animator creation.
type animatorOptions struct {
	animationCapacity int
	poolCapacity      int
	elementCapacity   int
	switcher          SwitchFunc
	cleanup           CleanupFunc
}

// defaultOptions returns the default animator options.
func defaultOptions() animatorOptions {
	return animatorOptions{
		animationCapacity: 64,
		poolCapacity:      16,
		elementCapacity:   0,
		switcher:          nil, // built-in switch when nil
		cleanup:           nil,
	}
}

// WithAnimationCapacity sets the number of animation records. The
// scheduler's per-tick bit-vectors must match this length. Zero is valid
// and makes every Advance a cheap no-op.
func WithAnimationCapacity(n int) Option {
	return func(o *animatorOptions) {
		o.animationCapacity = n
	}
}

// WithPoolCapacity sets the number of dynamic style slots. This is a hard
// resource budget: the pool never grows, and animations that find it
// exhausted stay pinned at their source style until a slot frees up.
func WithPoolCapacity(n int) Option {
	return func(o *animatorOptions) {
		o.poolCapacity = n
	}
}

// WithElementCapacity sets the size of the per-element assignment space.
// Animations attached to an element write that element's entry in
// Output.Assignments when its style reference changes.
func WithElementCapacity(n int) Option {
	return func(o *animatorOptions) {
		o.elementCapacity = n
	}
}

// WithSwitcher replaces the built-in style-switch step that runs first in
// every advance pass. Hosts with their own assignment bookkeeping inject
// it here; the returned digest is folded into the pass digest.
func WithSwitcher(s SwitchFunc) Option {
	return func(o *animatorOptions) {
		o.switcher = s
	}
}

// WithCleanup registers a hook invoked after slot release for every
// animation that stopped this tick, in record order. Hosts use it for
// attached-element teardown that must observe the settled pass state.
func WithCleanup(fn CleanupFunc) Option {
	return func(o *animatorOptions) {
		o.cleanup = fn
	}
}
