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

// Complexity above which ShouldApply recommends dithering. Near-constant
// buffers (all-zero padding, biases) fall below it.
const applyThreshold = 0.02

// Config controls how dithering is applied. It is a plain value type; copy
// it freely. Callers may construct arbitrary combinations.
type Config struct {
	// Enabled gates all apply-style operations.
	Enabled bool
	// Strength is the base noise amplitude, typically in (0, 1].
	Strength float32
	// PatternSize selects the Bayer table: 8 for 8x8, anything else uses 4x4.
	PatternSize int
	// AdaptiveStrength scales Strength by the buffer's content complexity.
	AdaptiveStrength bool
	// ResolutionEnhancement gates the resolution and activation passes.
	ResolutionEnhancement bool
}

// DefaultConfig returns the configuration installed by Engine.Init.
func DefaultConfig() Config {
	return Config{
		Enabled:               true,
		Strength:              0.1,
		PatternSize:           4,
		AdaptiveStrength:      true,
		ResolutionEnhancement: true,
	}
}

// Metrics reports observational dithering statistics. The engine keeps them
// at initialized defaults; wiring them to real measurements is left to the
// surrounding pipeline (see examples/prequant for how a caller derives
// quality numbers).
type Metrics struct {
	// SpeedRatio is inference speed versus the undithered baseline (1 = same).
	SpeedRatio float32
	// QualityImprovementRatio is the relative quality gain (0 = none).
	QualityImprovementRatio float32
	// MemoryOverhead is the added memory fraction (0 = none).
	MemoryOverhead float32
	// PerplexityImprovement is the perplexity delta (negative is better).
	PerplexityImprovement float32
}

// Engine holds the dithering configuration and metrics for one inference
// session. The zero value is uninitialized: shape-aware entry points and
// ShouldApply are no-ops until Init is called.
//
// Engine state is not synchronized; see the package documentation for the
// single-writer contract.
type Engine struct {
	config      Config
	metrics     Metrics
	initialized bool
}

// Init installs the default configuration and zeroed metrics. It is
// idempotent: on an already-initialized engine it leaves the current
// configuration in place. After Cleanup, a new Init restores defaults rather
// than reusing stale state.
func (e *Engine) Init() {
	if e.initialized {
		return
	}
	e.config = DefaultConfig()
	e.metrics = Metrics{SpeedRatio: 1}
	e.initialized = true
}

// Cleanup marks the engine uninitialized. Configuration values are retained
// but unreachable through gated entry points until the next Init, which
// resets them to defaults.
func (e *Engine) Cleanup() {
	e.initialized = false
}

// Initialized reports whether Init has been called without a later Cleanup.
func (e *Engine) Initialized() bool {
	return e.initialized
}

// SetConfig replaces the engine configuration. Unlike the apply operations,
// setters work regardless of lifecycle state.
func (e *Engine) SetConfig(cfg Config) {
	e.config = cfg
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Metrics returns a copy of the current metrics.
func (e *Engine) Metrics() Metrics {
	return e.metrics
}

// ShouldApply reports whether weights are complex enough to benefit from
// dithering. It is false on an uninitialized or disabled engine, and
// otherwise true iff ContentComplexity(weights) exceeds 0.02. This is a
// cheap pre-filter; Apply does not enforce it internally.
func (e *Engine) ShouldApply(weights []float32) bool {
	if !e.initialized || !e.config.Enabled {
		return false
	}
	return ContentComplexity(weights) > applyThreshold
}

// AdaptiveStrength resolves the effective strength for weights under the
// engine configuration. The result is always within [0.5, 2.0] times the
// configured base strength.
func (e *Engine) AdaptiveStrength(weights []float32) float32 {
	return AdaptiveStrength(weights, e.config.Strength, e.config.AdaptiveStrength)
}
