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
	"github.com/ZaparooProject/go-memsum/internal/syncutil"
	"golang.org/x/sync/errgroup"
)

// SumBytesParallel returns the same result as SumBytes, reducing large
// inputs in chunks on up to cfg.Workers goroutines. Addition modulo 256 is
// commutative and associative, so the order partials are combined in does
// not matter.
//
// A nil cfg uses DefaultParallelConfig. An invalid cfg is logged and
// replaced by the defaults. data must not be modified during the call.
func SumBytesParallel(data []byte, cfg *ParallelConfig) byte {
	if cfg == nil {
		cfg = DefaultParallelConfig()
	} else if err := cfg.Validate(); err != nil {
		Debugf("parallel sum: %v, using defaults", err)
		cfg = DefaultParallelConfig()
	}

	if len(data) < cfg.Threshold || cfg.Workers == 1 || len(data) <= cfg.ChunkSize {
		return SumBytes(data)
	}

	var (
		mu    syncutil.Mutex
		total byte
		g     errgroup.Group
	)
	g.SetLimit(cfg.Workers)

	chunks := 0
	for start := 0; start < len(data); start += cfg.ChunkSize {
		chunk := data[start:min(start+cfg.ChunkSize, len(data))]
		chunks++
		g.Go(func() error {
			partial := SumBytes(chunk)
			mu.Lock()
			total += partial
			mu.Unlock()
			return nil
		})
	}
	// Workers never fail; Wait is only a barrier here.
	_ = g.Wait()

	Debugf("parallel sum: %d bytes in %d chunks on %d workers", len(data), chunks, cfg.Workers)
	return total
}
