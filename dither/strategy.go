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

// Strength of the fine per-token pass used for attention-shaped activations.
const fineStrength = 0.05

// Apply dithers weights in place under the given configuration. A nil or
// disabled cfg skips mutation. When cfg.AdaptiveStrength is set the strength
// is resolved from the buffer's content complexity; the pattern follows
// cfg.PatternSize with the usual 4x4 fallback.
//
// layerIdx is an opaque tag reserved for per-layer tuning and logging; the
// algorithm does not consume it. Apply is gated on cfg alone, not on the
// engine lifecycle: an explicit config snapshot dithers even on an
// uninitialized engine.
func (e *Engine) Apply(weights []float32, layerIdx int, cfg *Config) {
	applyConfigured(weights, cfg)
}

// ApplyResolution runs a resolution-enhancement pass: the engine
// configuration with Strength replaced by scale and the 8x8 pattern. It is a
// no-op unless the engine is initialized and ResolutionEnhancement is
// enabled.
func (e *Engine) ApplyResolution(weights []float32, layerIdx int, scale float32) {
	if !e.initialized || !e.config.ResolutionEnhancement {
		return
	}

	cfg := e.config
	cfg.Strength = scale
	cfg.PatternSize = 8

	e.Apply(weights, layerIdx, &cfg)
}

// EnhanceActivations dithers an activation buffer with a strategy chosen
// from its shape. When the buffer holds exactly sequenceLength tokens of
// hiddenSize elements each (the attention-layer layout), every token slice
// is dithered independently with a fine 8x8 pass: the noise tile restarts at
// each token boundary instead of continuing a running global index. Any
// other shape gets one global pass under the current engine configuration.
//
// The token count truncates when len(activations) is not a multiple of
// hiddenSize; the trailing remainder is dithered as a final short segment.
// No-op unless the engine is initialized and ResolutionEnhancement is
// enabled.
func (e *Engine) EnhanceActivations(activations []float32, sequenceLength, hiddenSize int) {
	if !e.initialized || !e.config.ResolutionEnhancement {
		return
	}
	if hiddenSize <= 0 {
		return
	}

	size := len(activations)
	elementsPerToken := hiddenSize
	totalTokens := size / elementsPerToken

	if totalTokens != sequenceLength {
		e.Apply(activations, 0, &e.config)
		return
	}

	cfg := e.config
	cfg.Strength = fineStrength
	cfg.PatternSize = 8

	for i := 0; i < size; i += elementsPerToken {
		end := i + elementsPerToken
		if end > size {
			end = size
		}
		e.Apply(activations[i:end], 0, &cfg)
	}
}
