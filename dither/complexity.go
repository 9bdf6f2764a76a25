// Copyright 2026 go-dither Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dither

import (
	stdmath "math"

	"github.com/ajroetker/go-highway/hwy"
)

// Number of histogram bins for the entropy estimate.
const complexityBins = 32

// ContentComplexity computes a scalar complexity score for a buffer:
//
//	complexity = 0.6*variance + 0.4*entropy
//
// where variance is the population variance and entropy is the Shannon
// entropy (in bits) of a 32-bin histogram over [min, max]. A constant buffer
// scores 0: its variance is zero and its degenerate zero-range histogram
// populates no bins, so the entropy term is 0 rather than a division error.
//
// The function is pure and deterministic; it is safe to call concurrently on
// shared read-only buffers.
func ContentComplexity(weights []float32) float32 {
	size := len(weights)
	if size == 0 {
		return 0
	}

	lanes := hwy.NumLanes[float32]()

	// Mean.
	acc := hwy.Zero[float32]()
	i := 0
	for ; i+lanes <= size; i += lanes {
		acc = hwy.Add(acc, hwy.Load(weights[i:]))
	}
	sum := hwy.ReduceSum(acc)
	for ; i < size; i++ {
		sum += weights[i]
	}
	mean := sum / float32(size)

	// Population variance.
	meanVec := hwy.Set(mean)
	acc = hwy.Zero[float32]()
	i = 0
	for ; i+lanes <= size; i += lanes {
		d := hwy.Sub(hwy.Load(weights[i:]), meanVec)
		acc = hwy.Add(acc, hwy.Mul(d, d))
	}
	sqSum := hwy.ReduceSum(acc)
	for ; i < size; i++ {
		d := weights[i] - mean
		sqSum += d * d
	}
	variance := sqSum / float32(size)

	// Min/max scan for the histogram range.
	minVal := weights[0]
	maxVal := weights[0]
	for _, v := range weights[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var histogram [complexityBins]int
	if r := maxVal - minVal; r > 0 {
		for _, v := range weights {
			bin := int((v - minVal) / r * (complexityBins - 1))
			if bin < 0 {
				bin = 0
			} else if bin > complexityBins-1 {
				bin = complexityBins - 1
			}
			histogram[bin]++
		}
	}

	var entropy float32
	for _, count := range histogram {
		if count > 0 {
			p := float32(count) / float32(size)
			entropy -= p * float32(stdmath.Log2(float64(p)))
		}
	}

	return variance*0.6 + entropy*0.4
}

// AdaptiveStrength scales a base dithering strength by the buffer's content
// complexity. The factor 1+(complexity-0.1)*2 is centered so that a typical
// weight buffer (complexity near 0.1) keeps the base strength, and is clamped
// to [0.5, 2.0] so extremes never over- or under-dither destructively. When
// adaptive is false the base strength is returned unchanged.
func AdaptiveStrength(weights []float32, base float32, adaptive bool) float32 {
	if !adaptive {
		return base
	}

	complexity := ContentComplexity(weights)
	factor := 1 + (complexity-0.1)*2
	if factor < 0.5 {
		factor = 0.5
	} else if factor > 2.0 {
		factor = 2.0
	}
	return base * factor
}
