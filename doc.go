// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package styleanim provides a style-transition animation engine for
// retained-mode UI toolkits in the GoGPU ecosystem.
//
// # Overview
//
// UI elements carry pre-baked styles: immutable bundles of visual
// parameters (fill and outline colors, corner radii, outline width) plus
// a padding vector. styleanim interpolates between two such styles over a
// strictly bounded pool of writable dynamic style slots shared with the
// rendering layer, and reports a minimal change digest so expensive
// downstream work (GPU buffer re-upload, layout) runs only when values
// actually changed.
//
// Timing is not this package's business. An external scheduler turns
// wall-clock time into per-tick active/started/stopped bit-vectors and
// normalized play-head factors; styleanim consumes that Frame once per UI
// tick:
//
//	table, _ := styleanim.NewStyleTable(uniforms, styles)
//	anim, _ := styleanim.NewAnimator(table,
//	    styleanim.WithPoolCapacity(8),
//	    styleanim.WithElementCapacity(64),
//	)
//	h, _ := anim.Create(restStyle, hoverStyle, styleanim.InOutQuad)
//	anim.Attach(h, buttonElement)
//
//	out := styleanim.NewOutput(anim.PoolCapacity(), anim.ElementCapacity())
//	digest, _ := anim.Advance(frame, out)
//	if digest.Has(styleanim.DigestUniform) {
//	    // re-upload out.Uniforms
//	}
//
// # Resource model
//
// The pool never grows. When it is exhausted, starting animations are not
// an error: they stay visually pinned at their source style and pick up a
// slot transparently once one frees. Slot recycling is deferred: a slot
// released by a stopping animation sits out the following pass entirely
// and is handed out again no earlier than the pass after that.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Animator, StyleTable, Frame, Output, Digest
//   - Value types: Uniform, RGBA, Vec4, Easing, Handle, StyleRef
//   - upload/: digest-gated GPU buffer uploads via gogpu/wgpu
//
// styleanim is single-threaded; call everything from the host's main
// loop.
package styleanim
