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
	"hash"

	"github.com/ZaparooProject/go-memsum/internal/byteview"
)

// Size is the length in bytes of the checksum produced by Summer.
const Size = 1

var _ hash.Hash = (*Summer)(nil)

// Summer accumulates a running 8-bit wrapping sum. It implements hash.Hash
// so it can sit behind io.Copy or io.MultiWriter.
//
// Writing data in any number of chunks gives the same result as SumBytes on
// the concatenation. A Summer is not safe for concurrent use.
type Summer struct {
	sum byte
}

// New returns a Summer with a zero accumulator.
func New() *Summer {
	return &Summer{}
}

// Write adds p to the running sum. It never returns an error.
func (s *Summer) Write(p []byte) (int, error) {
	s.sum += SumBytes(p)
	return len(p), nil
}

// WriteByte adds a single byte to the running sum.
func (s *Summer) WriteByte(c byte) error {
	s.sum += c
	return nil
}

// Sum appends the current checksum to b and returns the resulting slice.
// It does not change the underlying state.
func (s *Summer) Sum(b []byte) []byte {
	return append(b, s.sum)
}

// Sum8 returns the current checksum.
func (s *Summer) Sum8() byte {
	return s.sum
}

// Reset zeroes the accumulator.
func (s *Summer) Reset() {
	s.sum = 0
}

// Size returns the checksum length, always 1.
func (*Summer) Size() int {
	return Size
}

// BlockSize returns 1; the sum has no block structure.
func (*Summer) BlockSize() int {
	return 1
}

// AddValue folds the in-memory bytes of *v into s, exactly as Of would
// sum them. The same preconditions as Of apply.
func AddValue[T any](s *Summer, v *T) {
	s.sum += SumBytes(byteview.Of(v))
}
