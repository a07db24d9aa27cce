// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Frame is one tick's worth of scheduler output. The external scheduler
// owns all timing: play/pause/stop, repeats, and the normalized play-head
// factors. This engine only consumes the result.
//
// All bit-vectors and the factor slice are indexed by animation record
// index (Handle.Index) and must be sized to the animator's animation
// capacity.
type Frame struct {
	// Active marks animations that are playing this tick.
	Active *bitset.BitSet

	// Started marks animations that transitioned from scheduled to
	// playing this tick. Started implies Active.
	Started *bitset.BitSet

	// Stopped marks animations that finished or were cancelled this
	// tick. Stopped implies Active: it is the active state's last tick.
	Stopped *bitset.BitSet

	// Removed marks animations whose backing records should be
	// reclaimed after this tick (administrative removal).
	Removed *bitset.BitSet

	// Factor holds the normalized [0, 1] play-head per animation,
	// meaningful only where Active is set.
	Factor []float64
}

// NewFrame returns a Frame with all vectors sized to capacity and clear.
func NewFrame(capacity int) Frame {
	return Frame{
		Active:  bitset.New(uint(capacity)),
		Started: bitset.New(uint(capacity)),
		Stopped: bitset.New(uint(capacity)),
		Removed: bitset.New(uint(capacity)),
		Factor:  make([]float64, capacity),
	}
}

// Reset clears all bits and factors for reuse on the next tick.
func (f *Frame) Reset() {
	f.Active.ClearAll()
	f.Started.ClearAll()
	f.Stopped.ClearAll()
	f.Removed.ClearAll()
	for i := range f.Factor {
		f.Factor[i] = 0
	}
}

// validate checks that every vector matches the animation capacity.
// A mismatch is a caller bug and is reported immediately.
func (f *Frame) validate(capacity int) error {
	for _, v := range []struct {
		name string
		bs   *bitset.BitSet
	}{
		{"Active", f.Active},
		{"Started", f.Started},
		{"Stopped", f.Stopped},
		{"Removed", f.Removed},
	} {
		if v.bs == nil {
			return fmt.Errorf("%w: frame %s bit-vector is nil", ErrSizeMismatch, v.name)
		}
		if v.bs.Len() != uint(capacity) {
			return fmt.Errorf("%w: frame %s length %d, want %d", ErrSizeMismatch, v.name, v.bs.Len(), capacity)
		}
	}
	if len(f.Factor) != capacity {
		return fmt.Errorf("%w: frame Factor length %d, want %d", ErrSizeMismatch, len(f.Factor), capacity)
	}
	return nil
}

// Output holds the caller-owned buffers one advance pass writes into.
// The uniform and padding arrays are the dynamic slots' live values and
// must persist between ticks: padding change detection compares the new
// value against the previous tick's entry in place.
type Output struct {
	// Uniforms holds one interpolated bundle per dynamic slot.
	Uniforms []Uniform

	// Padding holds one interpolated padding vector per dynamic slot.
	Padding []Vec4

	// Assignments is indexed by element. Only entries whose assignment
	// changed this tick are written; pre-fill with a sentinel (NoStyle
	// serves) to detect untouched entries.
	Assignments []StyleRef
}

// NewOutput returns an Output sized for an animator's pool and element
// capacities, with assignments pre-filled with NoStyle.
func NewOutput(slots, elements int) *Output {
	out := &Output{
		Uniforms:    make([]Uniform, slots),
		Padding:     make([]Vec4, slots),
		Assignments: make([]StyleRef, elements),
	}
	for i := range out.Assignments {
		out.Assignments[i] = NoStyle
	}
	return out
}

// validate checks the buffer sizes against the animator's capacities.
func (o *Output) validate(slots, elements int) error {
	if o == nil {
		return fmt.Errorf("%w: nil output", ErrSizeMismatch)
	}
	if len(o.Uniforms) != slots {
		return fmt.Errorf("%w: output Uniforms length %d, want %d", ErrSizeMismatch, len(o.Uniforms), slots)
	}
	if len(o.Padding) != slots {
		return fmt.Errorf("%w: output Padding length %d, want %d", ErrSizeMismatch, len(o.Padding), slots)
	}
	if len(o.Assignments) < elements {
		return fmt.Errorf("%w: output Assignments length %d, want at least %d", ErrSizeMismatch, len(o.Assignments), elements)
	}
	return nil
}
