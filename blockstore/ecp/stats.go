// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package ecp

import "time"

// Stats is the protection layer's statistics surface (ec_protect_stats).
type Stats struct {
	// CurrentCacheSize is the number of entries currently tracked.
	CurrentCacheSize int
	// CacheDataHits counts reads served directly from a live or cached
	// entry, without a call to the inner store.
	CacheDataHits int64
	// CacheFullDelay is the cumulative time writers have spent waiting for
	// table space to free up.
	CacheFullDelay time.Duration
	// RepeatedWriteDelay is the cumulative time writers have spent waiting
	// out MinWriteDelay on an already-tracked block.
	RepeatedWriteDelay time.Duration
	// OutOfMemoryErrors counts entry/zero-block allocation failures.
	OutOfMemoryErrors int64
}

// statCounters holds the mutable counters backing Stats, kept separate
// from Stats itself so Protector.Stats() can return a cheap value copy
// under the lock.
type statCounters struct {
	cacheDataHits      int64
	cacheFullDelay     time.Duration
	repeatedWriteDelay time.Duration
	outOfMemoryErrors  int64
}
