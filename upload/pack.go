// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/styleanim"
)

const (
	// UniformStride is the byte size of one slot's uniform block:
	// fill vec4, outline vec4, corner vec4, outline width + 3 floats of
	// std140 padding. 16 float32 values.
	UniformStride = 64

	// PaddingStride is the byte size of one slot's padding vec4.
	PaddingStride = 16
)

// PackUniforms encodes slot uniform bundles into dst as little-endian
// float32 blocks of UniformStride bytes each. dst must hold
// len(uniforms)*UniformStride bytes; the packed prefix is returned.
func PackUniforms(dst []byte, uniforms []styleanim.Uniform) []byte {
	off := 0
	for _, u := range uniforms {
		off = putColor(dst, off, u.Fill)
		off = putColor(dst, off, u.Outline)
		off = putVec4(dst, off, u.Corner)
		off = putF32(dst, off, u.OutlineWidth)
		off = putF32(dst, off, 0)
		off = putF32(dst, off, 0)
		off = putF32(dst, off, 0)
	}
	return dst[:off]
}

// PackPadding encodes slot padding vectors into dst as little-endian
// float32 vec4s. dst must hold len(padding)*PaddingStride bytes; the
// packed prefix is returned.
func PackPadding(dst []byte, padding []styleanim.Vec4) []byte {
	off := 0
	for _, p := range padding {
		off = putVec4(dst, off, p)
	}
	return dst[:off]
}

func putF32(dst []byte, off int, v float64) int {
	binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(float32(v)))
	return off + 4
}

func putVec4(dst []byte, off int, v styleanim.Vec4) int {
	off = putF32(dst, off, v.X)
	off = putF32(dst, off, v.Y)
	off = putF32(dst, off, v.Z)
	off = putF32(dst, off, v.W)
	return off
}

func putColor(dst []byte, off int, c styleanim.RGBA) int {
	off = putF32(dst, off, c.R)
	off = putF32(dst, off, c.G)
	off = putF32(dst, off, c.B)
	off = putF32(dst, off, c.A)
	return off
}
