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

// Package byteview exposes the raw memory of a fixed-size value as a byte slice.
//
// This is the only place in the module that uses package unsafe. Everything
// built on top of it works on ordinary []byte.
package byteview

import "unsafe"

// Of returns a read-only view over the unsafe.Sizeof(*v) bytes starting at v.
// The view aliases v's memory; nothing is copied.
//
// Preconditions, which are not checked:
//   - v is non-nil unless T is zero-sized.
//   - v points at a live value that outlives every use of the returned slice.
//   - nothing writes to *v while the slice is in use.
//
// The caller must never write through the returned slice.
//
// Padding bytes inserted by the compiler are part of the view. Their content
// is whatever the memory held, which the language does not specify.
func Of[T any](v *T) []byte {
	n := unsafe.Sizeof(*v)
	if n == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), n)
}

// Size returns the in-memory footprint of T in bytes, padding included.
func Size[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
