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

import "github.com/ZaparooProject/go-memsum/internal/byteview"

// Of returns the 8-bit wrapping sum of the SizeOf[T]() bytes *v occupies in
// memory. The value is read in place and never copied.
//
// v must be non-nil unless T is zero-sized, and must not be written to for
// the duration of the call. A zero-sized T always sums to 0.
//
// Padding bytes are included. See the package documentation for why that
// makes the result layout dependent.
func Of[T any](v *T) byte {
	return SumBytes(byteview.Of(v))
}

// VerifyValue compares Of(v) against want.
// It returns a *MismatchError wrapping ErrChecksumMismatch on mismatch.
func VerifyValue[T any](v *T, want byte) error {
	if got := Of(v); got != want {
		return &MismatchError{Want: want, Got: got}
	}
	return nil
}

// SizeOf returns the number of bytes Of reads for a value of type T.
func SizeOf[T any]() int {
	return byteview.Size[T]()
}
