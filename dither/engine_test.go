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
	"testing"
)

// spreadBuffer returns a buffer with enough variance and entropy to clear
// the ShouldApply threshold.
func spreadBuffer(n int) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(i%37)/37.0 - 0.5
	}
	return buf
}

func TestEngineLifecycle(t *testing.T) {
	var e Engine

	if e.Initialized() {
		t.Fatal("zero-value engine reports initialized")
	}

	e.Init()
	if !e.Initialized() {
		t.Fatal("Init did not mark the engine initialized")
	}
	if got, want := e.Config(), DefaultConfig(); got != want {
		t.Errorf("Config after Init = %+v, want %+v", got, want)
	}
	if got := e.Metrics(); got != (Metrics{SpeedRatio: 1}) {
		t.Errorf("Metrics after Init = %+v, want zeroed with SpeedRatio 1", got)
	}

	e.Cleanup()
	if e.Initialized() {
		t.Fatal("Cleanup did not mark the engine uninitialized")
	}
}

func TestEngineInitIdempotent(t *testing.T) {
	var e Engine
	e.Init()

	custom := Config{Enabled: true, Strength: 0.7, PatternSize: 8}
	e.SetConfig(custom)

	// A second Init on a live engine must not clobber the configuration.
	e.Init()
	if got := e.Config(); got != custom {
		t.Errorf("Config after redundant Init = %+v, want %+v", got, custom)
	}
}

func TestEngineReinitRestoresDefaults(t *testing.T) {
	var e Engine
	e.Init()
	e.SetConfig(Config{Enabled: false, Strength: 0.9, PatternSize: 8})
	e.Cleanup()

	e.Init()
	if got, want := e.Config(), DefaultConfig(); got != want {
		t.Errorf("Config after Cleanup+Init = %+v, want defaults %+v", got, want)
	}
}

func TestEngineConfigRoundTrip(t *testing.T) {
	var e Engine
	e.Init()

	tests := []Config{
		{},
		{Enabled: true, Strength: 0.1, PatternSize: 4, AdaptiveStrength: true, ResolutionEnhancement: true},
		{Enabled: true, Strength: 1, PatternSize: 8},
		{Enabled: false, Strength: -3, PatternSize: 99, AdaptiveStrength: true},
	}
	for _, cfg := range tests {
		e.SetConfig(cfg)
		if got := e.Config(); got != cfg {
			t.Errorf("SetConfig/Config round trip: got %+v, want %+v", got, cfg)
		}
	}
}

func TestShouldApply(t *testing.T) {
	spread := spreadBuffer(256)
	flat := make([]float32, 256)

	var uninit Engine
	if uninit.ShouldApply(spread) {
		t.Error("uninitialized engine: ShouldApply = true, want false")
	}

	var e Engine
	e.Init()

	if !e.ShouldApply(spread) {
		t.Error("spread buffer: ShouldApply = false, want true")
	}
	if e.ShouldApply(flat) {
		t.Error("constant buffer: ShouldApply = true, want false")
	}

	cfg := e.Config()
	cfg.Enabled = false
	e.SetConfig(cfg)
	if e.ShouldApply(spread) {
		t.Error("disabled config: ShouldApply = true, want false")
	}
}

func TestEngineAdaptiveStrengthUsesConfig(t *testing.T) {
	var e Engine
	e.Init()

	cfg := e.Config()
	cfg.Strength = 0.4
	cfg.AdaptiveStrength = false
	e.SetConfig(cfg)

	if got := e.AdaptiveStrength(spreadBuffer(64)); got != 0.4 {
		t.Errorf("AdaptiveStrength with adaptation off = %v, want 0.4", got)
	}

	cfg.AdaptiveStrength = true
	e.SetConfig(cfg)
	got := e.AdaptiveStrength(spreadBuffer(64))
	if got < 0.5*0.4 || got > 2.0*0.4 {
		t.Errorf("AdaptiveStrength = %v outside [%v, %v]", got, 0.5*0.4, 2.0*0.4)
	}
}

func TestApplyDisabledLeavesBufferUntouched(t *testing.T) {
	var e Engine
	e.Init()

	data := spreadBuffer(64)
	want := append([]float32(nil), data...)

	e.Apply(data, 0, nil)
	cfg := Config{Enabled: false, Strength: 1, PatternSize: 4}
	e.Apply(data, 0, &cfg)

	for i := range data {
		if data[i] != want[i] {
			t.Fatalf("data[%d] = %v, want untouched %v", i, data[i], want[i])
		}
	}
}

func TestApplyPatternSizeFallback(t *testing.T) {
	// Unrecognized pattern sizes must behave exactly like PatternSize 4.
	mk := func() []float32 { return spreadBuffer(48) }

	ref := mk()
	refCfg := Config{Enabled: true, Strength: 0.2, PatternSize: 4}
	var e Engine
	e.Apply(ref, 0, &refCfg)

	for _, size := range []int{0, -1, 3, 5, 16} {
		data := mk()
		cfg := Config{Enabled: true, Strength: 0.2, PatternSize: size}
		e.Apply(data, 0, &cfg)
		for i := range data {
			if data[i] != ref[i] {
				t.Fatalf("PatternSize %d: data[%d] = %v, want 4x4 fallback %v", size, i, data[i], ref[i])
			}
		}
	}
}

func TestApplyWorksWithoutInit(t *testing.T) {
	// Apply is gated on the config, not the engine lifecycle: an explicit
	// enabled snapshot dithers even on an uninitialized engine.
	var e Engine
	data := []float32{1, 1, 1, 1}
	cfg := Config{Enabled: true, Strength: 1, PatternSize: 4}
	e.Apply(data, 0, &cfg)

	want := []float32{0.5, 1.0, 0.625, 1.125}
	for i := range data {
		if data[i] != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}
