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

// Package memsum computes an 8-bit wrapping checksum over raw memory.
//
// SumBytes adds every byte of a slice modulo 256. Of applies the same sum to
// the bytes a fixed-size value occupies in memory, read in place through an
// unsafe byte view of exactly unsafe.Sizeof(T) bytes.
//
// # What gets summed
//
// Of sums the value's full in-memory footprint. That includes padding the
// compiler inserts between or after struct fields. A value declared with its
// zero value or allocated with new starts with zeroed padding, but composite
// literals, copies and assignments may leave padding with arbitrary content,
// so two values whose fields are equal may still produce different checksums. The result is also tied to
// the layout rules of the platform it ran on. Do not compare checksums of
// padded types across architectures or persist them as a stable format.
//
// Types with indirection contribute only their inline bytes. A []byte
// contributes its pointer, length and capacity words, never its elements. The
// same holds for strings, maps, channels, funcs, interfaces and pointers.
// This is part of the contract and is not checked at runtime.
//
// # Concurrency
//
// All functions are safe to call concurrently on independent inputs. The
// caller must not mutate a value or slice while it is being summed.
//
// This is a trivial additive checksum. It detects little and must not be
// used where a CRC or cryptographic hash is needed.
package memsum
