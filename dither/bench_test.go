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
	"fmt"
	"math/rand"
	"runtime"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

func randomBuffer(n int) []float32 {
	rng := rand.New(rand.NewSource(1))
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = float32(rng.NormFloat64()) * 0.3
	}
	return buf
}

func BenchmarkContentComplexity(b *testing.B) {
	for _, size := range []int{256, 4096, 65536} {
		buf := randomBuffer(size)
		b.Run(fmt.Sprintf("n%d", size), func(b *testing.B) {
			b.SetBytes(int64(size * 4))
			for i := 0; i < b.N; i++ {
				ContentComplexity(buf)
			}
		})
	}
}

func BenchmarkApplyOrdered(b *testing.B) {
	for _, tt := range []struct {
		name        string
		pattern     []float32
		patternSize int
	}{
		{"4x4", Bayer4x4(), 4},
		{"8x8", Bayer8x8(), 8},
	} {
		for _, size := range []int{4096, 65536} {
			buf := randomBuffer(size)
			b.Run(fmt.Sprintf("%s/n%d", tt.name, size), func(b *testing.B) {
				b.SetBytes(int64(size * 4))
				for i := 0; i < b.N; i++ {
					ApplyOrdered(buf, tt.pattern, tt.patternSize, 0.1)
				}
			})
		}
	}
}

func BenchmarkEnhanceActivations(b *testing.B) {
	const seqLen, hidden = 512, 768
	e := fixedEngine()
	buf := randomBuffer(seqLen * hidden)

	b.SetBytes(int64(len(buf) * 4))
	for i := 0; i < b.N; i++ {
		e.EnhanceActivations(buf, seqLen, hidden)
	}
}

func BenchmarkParallelEnhanceActivations(b *testing.B) {
	const seqLen, hidden = 512, 768
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	e := fixedEngine()
	buf := randomBuffer(seqLen * hidden)

	b.SetBytes(int64(len(buf) * 4))
	for i := 0; i < b.N; i++ {
		e.ParallelEnhanceActivations(pool, buf, seqLen, hidden)
	}
}
