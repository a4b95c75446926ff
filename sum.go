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

// SumBytes returns the sum of all bytes in data, wrapping modulo 256.
// An empty or nil slice sums to 0.
func SumBytes(data []byte) byte {
	chk := byte(0)
	for _, b := range data {
		chk += b
	}
	return chk
}

// Complement returns the byte that brings the sum of data to zero.
// Appending it to data yields a block for which VerifyTrailer reports true.
// PN532 frames carry their LCS and DCS bytes this way.
func Complement(data []byte) byte {
	return ^SumBytes(data) + 1
}

// VerifyTrailer reports whether data, including its trailing complement
// byte, sums to zero.
func VerifyTrailer(data []byte) bool {
	return SumBytes(data) == 0
}

// Verify compares the sum of data against want.
// It returns a *MismatchError wrapping ErrChecksumMismatch on mismatch.
func Verify(data []byte, want byte) error {
	if got := SumBytes(data); got != want {
		return &MismatchError{Want: want, Got: got}
	}
	return nil
}
