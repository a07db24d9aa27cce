// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{
			name:  "opaque black",
			c:     Black,
			wantR: 0, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "opaque white",
			c:     White,
			wantR: 65535, wantG: 65535, wantB: 65535, wantA: 65535,
		},
		{
			name:  "opaque red",
			c:     Red,
			wantR: 65535, wantG: 0, wantB: 0, wantA: 65535,
		},
		{
			name:  "transparent",
			c:     RGBA{0, 0, 0, 0},
			wantR: 0, wantG: 0, wantB: 0, wantA: 0,
		},
		{
			name:  "50% alpha red",
			c:     RGBA{1, 0, 0, 0.5},
			wantR: 32767, wantG: 0, wantB: 0, wantA: 32767,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			// Allow ±1 tolerance for floating point
			if diff32(r, tt.wantR) > 1 || diff32(g, tt.wantG) > 1 || diff32(b, tt.wantB) > 1 || diff32(a, tt.wantA) > 1 {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"rgb short", "#f00", Red},
		{"rrggbb", "#0000ff", Blue},
		{"no hash", "00ff00", Green},
		{"rrggbbaa", "#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"invalid length", "#zz", Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !rgbaNear(got, tt.want, 0.001) {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_LerpBoundaries(t *testing.T) {
	a := RGBA{0.1, 0.2, 0.3, 0.4}
	b := RGBA{0.9, 0.8, 0.7, 0.6}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	mid := a.Lerp(b, 0.5)
	want := RGBA{0.5, 0.5, 0.5, 0.5}
	if !rgbaNear(mid, want, 1e-12) {
		t.Errorf("Lerp(t=0.5) = %v, want %v", mid, want)
	}
}

func TestFromColorRoundtrip(t *testing.T) {
	original := RGBA{0.8, 0.3, 0.5, 0.9}
	roundtripped := FromColor(original)
	if !rgbaNear(original, roundtripped, 0.001) {
		t.Errorf("roundtrip: %v -> %v", original, roundtripped)
	}
}

func diff32(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func rgbaNear(a, b RGBA, tol float64) bool {
	return absDiff(a.R, b.R) <= tol &&
		absDiff(a.G, b.G) <= tol &&
		absDiff(a.B, b.B) <= tol &&
		absDiff(a.A, b.A) <= tol
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
