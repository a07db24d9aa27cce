// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package upload

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/styleanim"
)

// DeviceHandle provides GPU device access from the host application.
//
// This is an alias for gpucontext.DeviceProvider: the host (e.g. a
// gogpu.App) implements it and passes it in, so the uploader shares the
// host's device and queue instead of creating its own.
type DeviceHandle = gpucontext.DeviceProvider

// Uploader owns the two GPU-side buffers mirroring the dynamic style
// arrays and writes them through the host's queue when the digest says
// their CPU side changed.
//
// Uploader is not safe for concurrent use; drive it from the same loop
// that calls Animator.Advance.
type Uploader struct {
	device hal.Device
	queue  hal.Queue

	uniformBuf hal.Buffer
	paddingBuf hal.Buffer

	capacity int
	scratch  []byte
}

// New creates an uploader for a pool of the given slot capacity, drawing
// device and queue from the provider. The provider must expose HAL types
// via HalDevice() any and HalQueue() any, as gogpu device providers do.
//
// A zero capacity is valid: no buffers are created and Upload is a no-op.
func New(provider DeviceHandle, capacity int) (*Uploader, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("upload: negative capacity")
	}
	if provider == nil {
		return nil, fmt.Errorf("upload: nil device provider")
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("upload: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("upload: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("upload: provider HalQueue is not hal.Queue")
	}

	u := &Uploader{
		device:   device,
		queue:    queue,
		capacity: capacity,
		scratch:  make([]byte, capacity*UniformStride),
	}
	if capacity == 0 {
		return u, nil
	}

	var err error
	u.uniformBuf, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "styleanim_uniforms",
		Size:  uint64(capacity * UniformStride),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("upload: create uniform buffer: %w", err)
	}
	u.paddingBuf, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "styleanim_padding",
		Size:  uint64(capacity * PaddingStride),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		device.DestroyBuffer(u.uniformBuf)
		u.uniformBuf = nil
		return nil, fmt.Errorf("upload: create padding buffer: %w", err)
	}
	styleanim.Logger().Debug("created dynamic style buffers",
		"slots", capacity,
		"uniformBytes", capacity*UniformStride,
		"paddingBytes", capacity*PaddingStride)
	return u, nil
}

// UniformBuffer returns the GPU buffer holding slot uniform blocks, for
// binding into the host's render pipeline.
func (u *Uploader) UniformBuffer() hal.Buffer {
	return u.uniformBuf
}

// PaddingBuffer returns the GPU buffer holding slot padding vectors.
func (u *Uploader) PaddingBuffer() hal.Buffer {
	return u.paddingBuf
}

// Upload writes the changed arrays to the GPU. A digest without
// DigestUniform or DigestPadding costs nothing.
func (u *Uploader) Upload(out *styleanim.Output, digest styleanim.Digest) error {
	if u.capacity == 0 {
		return nil
	}
	if len(out.Uniforms) != u.capacity || len(out.Padding) != u.capacity {
		return fmt.Errorf("upload: output sized for %d slots, uploader for %d", len(out.Uniforms), u.capacity)
	}
	if digest.Has(styleanim.DigestUniform) {
		u.queue.WriteBuffer(u.uniformBuf, 0, PackUniforms(u.scratch, out.Uniforms))
	}
	if digest.Has(styleanim.DigestPadding) {
		u.queue.WriteBuffer(u.paddingBuf, 0, PackPadding(u.scratch, out.Padding))
	}
	return nil
}

// Destroy releases the GPU buffers. The device and queue belong to the
// host and are left alone.
func (u *Uploader) Destroy() {
	if u.uniformBuf != nil {
		u.device.DestroyBuffer(u.uniformBuf)
		u.uniformBuf = nil
	}
	if u.paddingBuf != nil {
		u.device.DestroyBuffer(u.paddingBuf)
		u.paddingBuf = nil
	}
}
