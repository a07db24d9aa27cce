// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

// Uniform is the bundle of visual parameters a style maps to. All fields
// are plain numeric vectors and are interpolated component-wise by Lerp;
// no field is special-cased.
//
// The bundle is what the rendering layer uploads to the GPU per style, so
// it is kept to a small, fixed set of fields.
type Uniform struct {
	// Fill is the interior color.
	Fill RGBA

	// Outline is the border color.
	Outline RGBA

	// OutlineWidth is the border thickness in pixels.
	OutlineWidth float64

	// Corner holds the four corner radii
	// (top-left, top-right, bottom-right, bottom-left).
	Corner Vec4
}

// Lerp performs component-wise linear interpolation between two uniform
// bundles. t=0 returns u, t=1 returns other.
func (u Uniform) Lerp(other Uniform, t float64) Uniform {
	return Uniform{
		Fill:         u.Fill.Lerp(other.Fill, t),
		Outline:      u.Outline.Lerp(other.Outline, t),
		OutlineWidth: u.OutlineWidth + (other.OutlineWidth-u.OutlineWidth)*t,
		Corner:       u.Corner.Lerp(other.Corner, t),
	}
}
