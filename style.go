// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "fmt"

// UniformID indexes the uniform table of a StyleTable.
type UniformID int

// StyleID indexes the style table. Styles are pre-baked bundles assigned
// to UI elements; they never share an index space with dynamic slots.
type StyleID int

// Style maps a style to its uniform bundle and padding vector.
// Entries are immutable while the table is in use by an animator;
// administrative re-styling between ticks is the host's business and is
// exactly why animations snapshot their endpoints at start.
type Style struct {
	// Uniform is the index of the style's parameter bundle.
	Uniform UniformID

	// Padding is the element padding (left, top, right, bottom) in pixels.
	Padding Vec4
}

// StyleTable is the read-only source animations snapshot from. It pairs a
// uniform table with a style list and validates every style's uniform
// index at construction, so per-animation lookups need no re-checking.
type StyleTable struct {
	uniforms []Uniform
	styles   []Style
}

// NewStyleTable builds a table from a uniform table and a style list.
// Returns an error if any style references a uniform index outside the
// uniform table.
func NewStyleTable(uniforms []Uniform, styles []Style) (*StyleTable, error) {
	for i, s := range styles {
		if s.Uniform < 0 || int(s.Uniform) >= len(uniforms) {
			return nil, fmt.Errorf("%w: style %d references uniform %d, table has %d", ErrStyleOutOfRange, i, s.Uniform, len(uniforms))
		}
	}
	t := &StyleTable{
		uniforms: make([]Uniform, len(uniforms)),
		styles:   make([]Style, len(styles)),
	}
	copy(t.uniforms, uniforms)
	copy(t.styles, styles)
	return t, nil
}

// Len returns the number of styles in the table.
func (t *StyleTable) Len() int {
	return len(t.styles)
}

// UniformLen returns the number of uniform bundles in the table.
func (t *StyleTable) UniformLen() int {
	return len(t.uniforms)
}

// Style returns the style at the given index.
func (t *StyleTable) Style(id StyleID) Style {
	return t.styles[id]
}

// Uniform returns the uniform bundle at the given index.
func (t *StyleTable) Uniform(id UniformID) Uniform {
	return t.uniforms[id]
}

// SetStyle re-assigns a style entry administratively. Safe only between
// Advance calls; in-flight animations keep interpolating their cached
// snapshots and are unaffected.
func (t *StyleTable) SetStyle(id StyleID, s Style) error {
	if int(id) < 0 || int(id) >= len(t.styles) {
		return fmt.Errorf("%w: style %d, table has %d", ErrStyleOutOfRange, id, len(t.styles))
	}
	if s.Uniform < 0 || int(s.Uniform) >= len(t.uniforms) {
		return fmt.Errorf("%w: style %d references uniform %d, table has %d", ErrStyleOutOfRange, id, s.Uniform, len(t.uniforms))
	}
	t.styles[id] = s
	return nil
}

// StyleRef addresses either a table style or a dynamic slot in a
// per-element assignment array. The two address spaces are disjoint.
//
// The engine only ever writes assignment entries that changed this tick;
// callers pre-fill the array with a sentinel of their choice (NoStyle
// works) to detect untouched entries.
type StyleRef int32

// NoStyle is a convenient sentinel meaning "no assignment written".
const NoStyle StyleRef = -1

// dynamicBit marks a StyleRef as addressing a dynamic slot.
const dynamicBit StyleRef = 1 << 30

// TableStyle returns a reference to a pre-baked table style.
func TableStyle(id StyleID) StyleRef {
	return StyleRef(id)
}

// DynamicStyle returns a reference to a dynamic slot.
func DynamicStyle(slot int) StyleRef {
	return dynamicBit | StyleRef(slot)
}

// IsDynamic reports whether the reference addresses a dynamic slot.
func (r StyleRef) IsDynamic() bool {
	return r >= 0 && r&dynamicBit != 0
}

// Slot returns the dynamic slot index. Meaningful only when IsDynamic.
func (r StyleRef) Slot() int {
	return int(r &^ dynamicBit)
}

// Style returns the table style index. Meaningful only when the reference
// is non-negative and not dynamic.
func (r StyleRef) Style() StyleID {
	return StyleID(r)
}
