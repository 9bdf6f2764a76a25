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
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// ParallelEnhanceActivations is the parallel variant of EnhanceActivations,
// distributing token segments across the pool. The configuration snapshot is
// taken once before fan-out, so a concurrent SetConfig cannot tear a pass.
// Segments are disjoint slices, making the fan-out race-free.
//
// Shapes that do not match the per-token heuristic fall back to the serial
// global pass, as does a nil pool.
func (e *Engine) ParallelEnhanceActivations(pool workerpool.Executor, activations []float32, sequenceLength, hiddenSize int) {
	if !e.initialized || !e.config.ResolutionEnhancement {
		return
	}
	if hiddenSize <= 0 {
		return
	}

	size := len(activations)
	totalTokens := size / hiddenSize

	if totalTokens != sequenceLength || pool == nil {
		e.EnhanceActivations(activations, sequenceLength, hiddenSize)
		return
	}

	cfg := e.config
	cfg.Strength = fineStrength
	cfg.PatternSize = 8

	pool.ParallelFor(totalTokens, func(start, end int) {
		for t := start; t < end; t++ {
			lo := t * hiddenSize
			hi := lo + hiddenSize
			applyConfigured(activations[lo:hi], &cfg)
		}
	})

	// Trailing remainder when size is not a multiple of hiddenSize.
	if rem := totalTokens * hiddenSize; rem < size {
		applyConfigured(activations[rem:], &cfg)
	}
}

// ParallelApply dithers a large weight tensor in chunkSize-element chunks
// distributed across the pool, each chunk under the given config snapshot.
//
// Every chunk restarts the noise tile at its own index 0 and, when
// cfg.AdaptiveStrength is set, resolves strength from its own statistics.
// The result therefore matches a serial single-pass Apply only when
// chunkSize is a multiple of patternSize² and adaptive strength is off;
// callers who need the exact serial tiling should use Apply instead.
func ParallelApply(pool workerpool.Executor, weights []float32, chunkSize int, cfg Config) {
	if !cfg.Enabled || len(weights) == 0 {
		return
	}
	if pool == nil || chunkSize <= 0 {
		applyConfigured(weights, &cfg)
		return
	}

	size := len(weights)
	chunks := (size + chunkSize - 1) / chunkSize

	pool.ParallelFor(chunks, func(start, end int) {
		for c := start; c < end; c++ {
			lo := c * chunkSize
			hi := lo + chunkSize
			if hi > size {
				hi = size
			}
			applyConfigured(weights[lo:hi], &cfg)
		}
	})
}
