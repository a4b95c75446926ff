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
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	// debugEnabled gates Debugf and Debugln. Set from MEMSUM_DEBUG or DEBUG.
	debugEnabled atomic.Bool
	logger       atomic.Pointer[zap.Logger]
)

func init() {
	if os.Getenv("MEMSUM_DEBUG") != "" || os.Getenv("DEBUG") != "" {
		debugEnabled.Store(true)
		if l, err := zap.NewDevelopment(); err == nil {
			logger.Store(l)
		}
	}
}

// Logger returns the package logger. It is a no-op logger unless one was
// installed with SetLogger or debug output was enabled from the environment.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger replaces the package logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// SetDebugEnabled allows programmatic control of debug logging
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

// Debugf logs a formatted message at debug level when debug output is enabled.
func Debugf(format string, args ...any) {
	if !debugEnabled.Load() {
		return
	}
	Logger().Sugar().Debugf(format, args...)
}

// Debugln logs its arguments at debug level when debug output is enabled.
func Debugln(args ...any) {
	if !debugEnabled.Load() {
		return
	}
	Logger().Sugar().Debugln(args...)
}
