// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package ecp

import (
	"time"

	kerr "github.com/kopexa-grc/ecprotect/errors"
)

// Config parameterizes a Protector, fixed at construction.
type Config struct {
	// BlockSize is the number of bytes per block. Must be > 0.
	BlockSize int `mapstructure:"block_size"`

	// MinWriteDelay is the minimum duration between the completion of one
	// write and the start of the next on the same block. Must be >= 0.
	MinWriteDelay time.Duration `mapstructure:"min_write_delay"`

	// CacheTime is how long an entry remains WRITTEN before it becomes
	// eligible for expiry. Must be >= MinWriteDelay.
	CacheTime time.Duration `mapstructure:"cache_time"`

	// CacheSize is the maximum number of entries tracked at once. Must be
	// >= 1.
	CacheSize int `mapstructure:"cache_size"`

	// DebugInvariants enables the opt-in invariant checker after every
	// state transition. Intended for tests, never production.
	DebugInvariants bool `mapstructure:"debug_invariants"`
}

// Validate checks the constraints.
func (c Config) Validate() error {
	if c.BlockSize <= 0 {
		return kerr.NewInvalidArgument("ecp: block_size must be > 0")
	}

	if c.MinWriteDelay < 0 {
		return kerr.NewInvalidArgument("ecp: min_write_delay must be >= 0")
	}

	if c.CacheTime < c.MinWriteDelay {
		return kerr.NewInvalidArgument("ecp: cache_time must be >= min_write_delay")
	}

	if c.CacheSize < 1 {
		return kerr.NewInvalidArgument("ecp: cache_size must be >= 1")
	}

	return nil
}
