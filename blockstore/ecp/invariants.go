// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package ecp

import "fmt"

// checkInvariants verifies invariants I1-I5. It is only ever called when
// Config.DebugInvariants is set (tests enable it; a production build
// never does), and p.mu must already be held. It panics on violation: a
// debug-only assertion that is fatal rather than silently logged.
func (p *Protector) checkInvariants() {
	if !p.cfg.DebugInvariants {
		return
	}

	// One writer per block is structural and has no numbered check here:
	// only one entry per blockNum exists in the table, and the write state
	// machine never lets two goroutines hold the same entry in the writing
	// state concurrently (enforced by p.mu plus the writing-wait branch of
	// WriteBlock), so it needs no separate scan.

	writingCount := 0
	writtenInQueue := 0

	for blockNum, e := range p.table {
		if e.blockNum != blockNum {
			panic(fmt.Sprintf("ecp: invariant violated: table key %d holds entry for block %d", blockNum, e.blockNum))
		}

		switch e.state {
		case writing:
			writingCount++

			if e.timestamp != 0 {
				panic(fmt.Sprintf("ecp: invariant I1 violated: block %d is writing with nonzero timestamp", blockNum))
			}

			if e.link != nil {
				panic(fmt.Sprintf("ecp: invariant I1 violated: block %d is writing but linked into the expiry queue", blockNum))
			}
		case written:
			writtenInQueue++

			if e.timestamp == 0 {
				panic(fmt.Sprintf("ecp: invariant I1 violated: block %d is written with zero timestamp", blockNum))
			}

			if e.link == nil {
				panic(fmt.Sprintf("ecp: invariant I1 violated: block %d is written but absent from the expiry queue", blockNum))
			}
		}
	}

	if writtenInQueue != p.queue.len() {
		panic(fmt.Sprintf("ecp: invariant I2 violated: %d written entries but queue holds %d", writtenInQueue, p.queue.len()))
	}

	if len(p.table) != writingCount+p.queue.len() {
		panic(fmt.Sprintf("ecp: invariant I3 violated: |table|=%d != writing(%d)+queue(%d)", len(p.table), writingCount, p.queue.len()))
	}

	if !p.queue.timestampsNonDecreasing() {
		panic("ecp: invariant I4 violated: expiry queue timestamps are not non-decreasing")
	}

	if len(p.table) > p.cfg.CacheSize {
		panic(fmt.Sprintf("ecp: invariant I5 violated: |table|=%d > cache_size=%d", len(p.table), p.cfg.CacheSize))
	}
}
