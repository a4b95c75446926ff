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
	"errors"
	"fmt"
)

// Summing itself never fails. These errors come from verification and
// configuration only.
var (
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// MismatchError reports a checksum that differs from the expected value.
type MismatchError struct {
	Want byte // Expected checksum
	Got  byte // Computed checksum
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: want 0x%02X, got 0x%02X", ErrChecksumMismatch, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error {
	return ErrChecksumMismatch
}

// IsMismatch reports whether err is or wraps ErrChecksumMismatch.
func IsMismatch(err error) bool {
	return errors.Is(err, ErrChecksumMismatch)
}
