// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package upload pushes dynamic style values to GPU buffers, gated by the
// change digest so a tick without uniform or padding changes costs no
// queue traffic at all.
//
// The package follows the gogpu device-sharing principle: it RECEIVES a
// device from the host application through a gpucontext.DeviceProvider
// and never creates one. Hosts that expose HAL types (HalDevice/HalQueue)
// can construct an Uploader directly:
//
//	up, err := upload.New(deviceHandle, anim.PoolCapacity())
//	if err != nil { ... }
//	defer up.Destroy()
//
//	digest, _ := anim.Advance(frame, out)
//	if err := up.Upload(out, digest); err != nil { ... }
//
// Buffer layouts are std140-compatible: one 64-byte block per slot for
// uniforms (fill vec4, outline vec4, corner vec4, width + padding), one
// 16-byte vec4 per slot for element padding.
package upload
