// Copyright 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: Apache-2.0
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

package memsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func patterned(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	return data
}

func TestSumBytesParallel_MatchesSequential(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cfg  *ParallelConfig
		name string
		size int
	}{
		{name: "nil config small input", size: 100, cfg: nil},
		{name: "nil config large input", size: 1 << 20, cfg: nil},
		{name: "empty input", size: 0, cfg: &ParallelConfig{Workers: 4, ChunkSize: 8, Threshold: 0}},
		{name: "single chunk", size: 8, cfg: &ParallelConfig{Workers: 4, ChunkSize: 8, Threshold: 0}},
		{name: "uneven tail", size: 1001, cfg: &ParallelConfig{Workers: 3, ChunkSize: 64, Threshold: 0}},
		{name: "one byte chunks", size: 513, cfg: &ParallelConfig{Workers: 8, ChunkSize: 1, Threshold: 0}},
		{name: "single worker", size: 4096, cfg: &ParallelConfig{Workers: 1, ChunkSize: 16, Threshold: 0}},
		{name: "below threshold", size: 4096, cfg: &ParallelConfig{Workers: 4, ChunkSize: 16, Threshold: 8192}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := patterned(tt.size)
			assert.Equal(t, SumBytes(data), SumBytesParallel(data, tt.cfg))
		})
	}
}

func TestSumBytesParallel_InvalidConfigFallsBack(t *testing.T) {
	t.Parallel()

	data := patterned(4096)
	cfg := &ParallelConfig{Workers: 0, ChunkSize: -1, Threshold: -5}
	assert.Equal(t, SumBytes(data), SumBytesParallel(data, cfg))
}

func TestSumBytesParallel_SpecVector(t *testing.T) {
	t.Parallel()

	data := []byte{255, 254, 127, 126}
	cfg := &ParallelConfig{Workers: 2, ChunkSize: 1, Threshold: 0}
	assert.Equal(t, byte(250), SumBytesParallel(data, cfg))
}
