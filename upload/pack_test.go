// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/styleanim"
)

func f32At(t *testing.T, b []byte, index int) float32 {
	t.Helper()
	off := index * 4
	if off+4 > len(b) {
		t.Fatalf("float index %d out of range (%d bytes)", index, len(b))
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func TestPackUniforms_Layout(t *testing.T) {
	uniforms := []styleanim.Uniform{
		{
			Fill:         styleanim.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4},
			Outline:      styleanim.RGBA{R: 0.5, G: 0.6, B: 0.7, A: 0.8},
			OutlineWidth: 2.5,
			Corner:       styleanim.V4(1, 2, 3, 4),
		},
		{
			Fill: styleanim.Red,
		},
	}
	dst := make([]byte, len(uniforms)*UniformStride)
	packed := PackUniforms(dst, uniforms)

	if len(packed) != 2*UniformStride {
		t.Fatalf("packed %d bytes, want %d", len(packed), 2*UniformStride)
	}

	// Block layout: fill vec4, outline vec4, corner vec4, width, 3 pad.
	want := []float32{
		0.1, 0.2, 0.3, 0.4,
		0.5, 0.6, 0.7, 0.8,
		1, 2, 3, 4,
		2.5, 0, 0, 0,
	}
	for i, w := range want {
		if got := f32At(t, packed, i); got != w {
			t.Errorf("block 0 float %d = %v, want %v", i, got, w)
		}
	}

	// Second block starts at its stride boundary.
	base := UniformStride / 4
	if got := f32At(t, packed, base); got != 1 {
		t.Errorf("block 1 fill.R = %v, want 1", got)
	}
	for i := base + 4; i < 2*base; i++ {
		if i == base+12 {
			continue // width slot, also zero here
		}
		if got := f32At(t, packed, i); got != 0 {
			t.Errorf("block 1 float %d = %v, want 0", i, got)
		}
	}
}

func TestPackPadding_Layout(t *testing.T) {
	padding := []styleanim.Vec4{
		styleanim.V4(1, 2, 3, 4),
		styleanim.Splat(7),
	}
	dst := make([]byte, len(padding)*PaddingStride)
	packed := PackPadding(dst, padding)

	if len(packed) != 2*PaddingStride {
		t.Fatalf("packed %d bytes, want %d", len(packed), 2*PaddingStride)
	}
	want := []float32{1, 2, 3, 4, 7, 7, 7, 7}
	for i, w := range want {
		if got := f32At(t, packed, i); got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestPack_Empty(t *testing.T) {
	if got := PackUniforms(nil, nil); len(got) != 0 {
		t.Errorf("PackUniforms(nil) = %d bytes", len(got))
	}
	if got := PackPadding(nil, nil); len(got) != 0 {
		t.Errorf("PackPadding(nil) = %d bytes", len(got))
	}
}
