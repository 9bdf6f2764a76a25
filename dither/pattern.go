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

// 4x4 Bayer threshold matrix, row-major, scaled to [0,1) in 16ths.
var bayer4x4 = [16]float32{
	0.0 / 16.0, 8.0 / 16.0, 2.0 / 16.0, 10.0 / 16.0,
	12.0 / 16.0, 4.0 / 16.0, 14.0 / 16.0, 6.0 / 16.0,
	3.0 / 16.0, 11.0 / 16.0, 1.0 / 16.0, 9.0 / 16.0,
	15.0 / 16.0, 7.0 / 16.0, 13.0 / 16.0, 5.0 / 16.0,
}

// 8x8 Bayer threshold matrix: the recursive quadrant expansion of the 4x4
// table, scaled to [0,1) in 64ths.
var bayer8x8 = [64]float32{
	0.0 / 64.0, 32.0 / 64.0, 8.0 / 64.0, 40.0 / 64.0, 2.0 / 64.0, 34.0 / 64.0, 10.0 / 64.0, 42.0 / 64.0,
	48.0 / 64.0, 16.0 / 64.0, 56.0 / 64.0, 24.0 / 64.0, 50.0 / 64.0, 18.0 / 64.0, 58.0 / 64.0, 26.0 / 64.0,
	12.0 / 64.0, 44.0 / 64.0, 4.0 / 64.0, 36.0 / 64.0, 14.0 / 64.0, 46.0 / 64.0, 6.0 / 64.0, 38.0 / 64.0,
	60.0 / 64.0, 28.0 / 64.0, 52.0 / 64.0, 20.0 / 64.0, 62.0 / 64.0, 30.0 / 64.0, 54.0 / 64.0, 22.0 / 64.0,
	3.0 / 64.0, 35.0 / 64.0, 11.0 / 64.0, 43.0 / 64.0, 1.0 / 64.0, 33.0 / 64.0, 9.0 / 64.0, 41.0 / 64.0,
	51.0 / 64.0, 19.0 / 64.0, 59.0 / 64.0, 27.0 / 64.0, 49.0 / 64.0, 17.0 / 64.0, 57.0 / 64.0, 25.0 / 64.0,
	15.0 / 64.0, 47.0 / 64.0, 7.0 / 64.0, 39.0 / 64.0, 13.0 / 64.0, 45.0 / 64.0, 5.0 / 64.0, 37.0 / 64.0,
	63.0 / 64.0, 31.0 / 64.0, 55.0 / 64.0, 23.0 / 64.0, 61.0 / 64.0, 29.0 / 64.0, 53.0 / 64.0, 21.0 / 64.0,
}

// Bayer4x4 returns a copy of the canonical 4x4 Bayer threshold matrix in
// row-major order. Each value is a unique rank in {0..15}/16.
func Bayer4x4() []float32 {
	m := bayer4x4
	return m[:]
}

// Bayer8x8 returns a copy of the canonical 8x8 Bayer threshold matrix in
// row-major order. Each value is a unique rank in {0..63}/64.
func Bayer8x8() []float32 {
	m := bayer8x8
	return m[:]
}

// CreatePattern builds a size x size Bayer threshold matrix by recursive
// quadrant expansion:
//
//	M(2n) = | 4*M(n)+0  4*M(n)+2 |
//	        | 4*M(n)+3  4*M(n)+1 |
//
// starting from M(1) = [0], with every entry scaled by 1/size². The result is
// a permutation of {0..size²-1}/size² whose thresholds are maximally spread
// in space. Size must be a power of two; other sizes return nil. Sizes 4 and
// 8 reproduce Bayer4x4 and Bayer8x8 bit-exactly.
func CreatePattern(size int) []float32 {
	if size < 1 || size&(size-1) != 0 {
		return nil
	}

	ranks := []int{0}
	for n := 1; n < size; n *= 2 {
		next := make([]int, 4*n*n)
		for r := range n {
			for c := range n {
				v := 4 * ranks[r*n+c]
				next[r*2*n+c] = v
				next[r*2*n+c+n] = v + 2
				next[(r+n)*2*n+c] = v + 3
				next[(r+n)*2*n+c+n] = v + 1
			}
		}
		ranks = next
	}

	area := float32(size * size)
	matrix := make([]float32, size*size)
	for i, v := range ranks {
		matrix[i] = float32(v) / area
	}
	return matrix
}

// patternFor resolves a configured pattern size to one of the two canonical
// tables. Anything other than 8 falls back to the 4x4 table; the inference
// pipeline depends on this silent degradation.
func patternFor(size int) ([]float32, int) {
	if size == 8 {
		return bayer8x8[:], 8
	}
	return bayer4x4[:], 4
}
