//go:build !deadlock

// Package syncutil provides the mutex used to combine partial sums.
// Default builds use sync.Mutex directly. Build with -tags=deadlock to swap in
// github.com/sasha-s/go-deadlock when chasing lock-ordering bugs.
package syncutil

import "sync"

// Mutex wraps sync.Mutex. Build with -tags=deadlock for deadlock detection.
//
//nolint:gocritic // embedding sync.Mutex exposes Lock/Unlock directly
type Mutex struct {
	sync.Mutex
}
