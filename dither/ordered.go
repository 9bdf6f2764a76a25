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
	"github.com/ajroetker/go-highway/hwy"
)

// ApplyOrdered adds Bayer noise to data in place:
//
//	data[i] += (pattern[row*patternSize+col] - 0.5) * strength
//	row = (i/patternSize) % patternSize, col = i % patternSize
//
// The buffer is treated as a 1-D scan of the 2-D pattern, so the full noise
// sequence repeats every patternSize² elements. The noise tile is precomputed
// once and added vector-wise over each complete tile, with scalar index math
// on the trailing partial tile.
//
// Buffers shorter than one tile period receive a biased subset of the
// thresholds; callers wanting aggregate near-zero-mean noise should dither
// whole tile multiples.
//
// A pattern shorter than patternSize² or a non-positive patternSize is a
// no-op.
func ApplyOrdered(data, pattern []float32, patternSize int, strength float32) {
	if len(data) == 0 || patternSize <= 0 {
		return
	}
	tile := patternSize * patternSize
	if len(pattern) < tile {
		return
	}

	// Flat index j within a tile period maps to pattern entry
	// (j/patternSize)*patternSize + j%patternSize = j, so the noise tile is
	// the pattern itself, shifted and scaled.
	noise := make([]float32, tile)
	for j, t := range pattern[:tile] {
		noise[j] = (t - 0.5) * strength
	}

	lanes := hwy.NumLanes[float32]()
	size := len(data)

	i := 0
	for ; i+tile <= size; i += tile {
		j := 0
		for ; j+lanes <= tile; j += lanes {
			v := hwy.Load(data[i+j:])
			n := hwy.Load(noise[j:])
			hwy.Store(hwy.Add(v, n), data[i+j:])
		}
		for ; j < tile; j++ {
			data[i+j] += noise[j]
		}
	}

	// Partial trailing tile.
	for ; i < size; i++ {
		row := (i / patternSize) % patternSize
		col := i % patternSize
		data[i] += noise[row*patternSize+col]
	}
}

// applyConfigured resolves strength and pattern from cfg and dithers weights
// in place. Nil or disabled configurations skip mutation entirely; an
// unrecognized PatternSize falls back to the 4x4 table.
func applyConfigured(weights []float32, cfg *Config) {
	if cfg == nil || !cfg.Enabled {
		return
	}

	strength := cfg.Strength
	if cfg.AdaptiveStrength {
		strength = AdaptiveStrength(weights, cfg.Strength, true)
	}

	pattern, patternSize := patternFor(cfg.PatternSize)
	ApplyOrdered(weights, pattern, patternSize, strength)
}
