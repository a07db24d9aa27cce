// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package styleanim

import "github.com/fogleman/ease"

// Easing reshapes a normalized [0, 1] play-head factor into an
// interpolation factor. The result is usually in [0, 1] but may overshoot
// for easings like back or elastic; the interpolation stage accepts
// out-of-range factors.
//
// Any func(float64) float64 works, including every function from
// github.com/fogleman/ease. The engine applies the easing only for
// intermediate factors: raw factors 0 and 1 bypass it so that boundary
// values reproduce the source and target snapshots exactly.
type Easing func(t float64) float64

// Stock easings, re-exported from fogleman/ease so callers that only need
// the common shapes don't have to import it themselves.
var (
	Linear     Easing = ease.Linear
	InQuad     Easing = ease.InQuad
	OutQuad    Easing = ease.OutQuad
	InOutQuad  Easing = ease.InOutQuad
	InCubic    Easing = ease.InCubic
	OutCubic   Easing = ease.OutCubic
	InOutCubic Easing = ease.InOutCubic
	InOutBack  Easing = ease.InOutBack
	OutElastic Easing = ease.OutElastic
	OutBounce  Easing = ease.OutBounce
)
