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
	"fmt"
	"runtime"
)

// Parallel reduction defaults
const (
	DefaultChunkSize         = 64 * 1024  // Bytes summed by one worker per task
	DefaultParallelThreshold = 256 * 1024 // Inputs below this use the sequential fold
)

// ParallelConfig controls how SumBytesParallel splits its input
type ParallelConfig struct {
	// Workers bounds the number of chunks summed at once. Must be at least 1.
	Workers int
	// ChunkSize is the number of bytes per task. Must be at least 1.
	ChunkSize int
	// Threshold is the input length below which the sequential fold is used.
	// 0 always fans out.
	Threshold int
}

// DefaultParallelConfig returns one worker per schedulable CPU
func DefaultParallelConfig() *ParallelConfig {
	return &ParallelConfig{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
		Threshold: DefaultParallelThreshold,
	}
}

// Validate checks that every field is within range
func (cfg *ParallelConfig) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidParameter, cfg.Workers)
	}
	if cfg.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size must be at least 1, got %d", ErrInvalidParameter, cfg.ChunkSize)
	}
	if cfg.Threshold < 0 {
		return fmt.Errorf("%w: threshold must not be negative, got %d", ErrInvalidParameter, cfg.Threshold)
	}
	return nil
}
