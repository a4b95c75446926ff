//go:build deadlock

// Package syncutil provides the mutex used to combine partial sums.
// This file is compiled when building with -tags=deadlock.
package syncutil

import deadlock "github.com/sasha-s/go-deadlock"

// Mutex wraps deadlock.Mutex so lock inversions are reported at runtime.
type Mutex struct {
	deadlock.Mutex
}
