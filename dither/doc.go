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

// Package dither injects ordered (Bayer-matrix) dithering noise into
// neural-network weight and activation buffers before low-bit quantization.
// Adding a small deterministic noise pattern breaks up quantization banding:
// values sitting just below a quantization threshold are pushed across it in
// a spatially even way, so the quantized output preserves more of the
// original distribution than hard rounding does.
//
// # Core Operations
//
//   - ContentComplexity - variance/entropy blend measuring how much a buffer
//     would benefit from dithering
//   - AdaptiveStrength - maps complexity to a bounded strength multiplier
//   - ApplyOrdered - adds tiled Bayer noise to a buffer in place
//   - CreatePattern - recursive-quadrant Bayer matrix generator
//
// # Engine
//
// An Engine is an explicit context object holding the configuration and
// metrics for one inference session. The zero value is uninitialized; Init
// installs the default configuration. All shape-aware entry points
// (ApplyResolution, EnhanceActivations) are no-ops on an uninitialized
// engine.
//
//	var eng dither.Engine
//	eng.Init()
//	defer eng.Cleanup()
//
//	cfg := eng.Config()
//	if eng.ShouldApply(weights) {
//	    eng.Apply(weights, layerIdx, &cfg)
//	}
//	// ... quantize weights ...
//
// # Buffer Tiling
//
// ApplyOrdered treats the flat buffer as a 1-D scan of a 2-D pattern: element
// i maps to pattern row (i/patternSize)%patternSize and column i%patternSize,
// so the same noise offset recurs every patternSize² elements. Which elements
// share an offset is therefore determined entirely by their flat index, a
// convention inherited from image dithering applied to flattened tensors.
//
// # Error Handling
//
// The package never returns errors or panics on sized input. Nil or disabled
// configurations, unsupported pattern sizes, and empty buffers all degrade to
// defined no-ops or defaults; the surrounding inference pipeline depends on
// this best-effort behavior.
//
// # Concurrency
//
// Engine state is not synchronized. Configure from one goroutine, then dither
// from however many you like as long as each call either reads a stable
// config or passes its own Config snapshot (Config is a plain value type).
// The Parallel* helpers take that snapshot once and fan segments out across a
// workerpool.Executor.
package dither
