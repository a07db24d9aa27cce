// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "testing"

func TestUniform_Lerp(t *testing.T) {
	a := Uniform{
		Fill:         Black,
		Outline:      White,
		OutlineWidth: 1,
		Corner:       Splat(0),
	}
	b := Uniform{
		Fill:         White,
		Outline:      Black,
		OutlineWidth: 3,
		Corner:       Splat(8),
	}

	t.Run("t=0 returns receiver", func(t *testing.T) {
		if got := a.Lerp(b, 0); got != a {
			t.Errorf("Lerp(t=0) = %+v, want %+v", got, a)
		}
	})

	t.Run("midpoint interpolates every field", func(t *testing.T) {
		got := a.Lerp(b, 0.5)
		if !rgbaNear(got.Fill, RGBA{0.5, 0.5, 0.5, 1}, 1e-12) {
			t.Errorf("Fill = %v", got.Fill)
		}
		if !rgbaNear(got.Outline, RGBA{0.5, 0.5, 0.5, 1}, 1e-12) {
			t.Errorf("Outline = %v", got.Outline)
		}
		if got.OutlineWidth != 2 {
			t.Errorf("OutlineWidth = %v, want 2", got.OutlineWidth)
		}
		if got.Corner != Splat(4) {
			t.Errorf("Corner = %v, want %v", got.Corner, Splat(4))
		}
	})
}
