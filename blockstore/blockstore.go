// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package blockstore defines the abstract block-store capability shared by
// every layer in the stack: read_block, write_block, detect_sizes, and
// destroy. Each layer (transport, eventual-consistency protection, data
// cache) implements Store and typically wraps an inner Store of the same
// shape.
package blockstore

import (
	"context"
	"crypto/md5" //nolint:gosec // digest, not a security primitive
	"sync"

	"github.com/kopexa-grc/ecprotect/ptr"
)

// Store is the block-store capability every layer in the stack implements.
//
// Implementations must be safe for concurrent use: any number of caller
// goroutines may invoke ReadBlock and WriteBlock concurrently for any block
// numbers.
type Store interface {
	// ReadBlock reads len(dst) bytes for blockNum into dst. If expectMD5
	// is non-nil, implementations that can detect staleness must return an
	// error for which errors.IsStale is true when the data read back does
	// not match.
	ReadBlock(ctx context.Context, blockNum int64, dst []byte, expectMD5 *[16]byte) error

	// WriteBlock writes len(src) bytes for blockNum. src == nil (or a slice
	// for which IsZeroBlock reports true) means "the all-zero block"; an
	// implementation may elide it to a delete at the backend. md5, if
	// non-nil, is the precomputed MD5 of src and may be used instead of
	// recomputing it.
	WriteBlock(ctx context.Context, blockNum int64, src []byte, md5 *[16]byte) error

	// DetectSizes probes the backend for the file size and block size it
	// was configured with.
	DetectSizes(ctx context.Context) (fileSize, blockSize int64, err error)

	// Destroy releases all resources held by the store. Callers must not
	// have any ReadBlock/WriteBlock calls outstanding when Destroy is
	// called.
	Destroy(ctx context.Context) error
}

var (
	zeroBlockOnce sync.Once
	zeroBlock     []byte
	zeroBlockMD5  [16]byte
)

// ZeroBlock returns a process-wide, read-only buffer of n zero bytes,
// lazily allocated on first use.
//
// A naive implementation might check the zero-block pointer outside a lock
// before acquiring it, which can race two callers into allocating it
// twice — benign in effect (both allocate the same all-zero content) but
// still a data race under the race detector. Guarding the allocation with
// sync.Once removes the race entirely without touching any other ECP
// semantics.
func ZeroBlock(n int) []byte {
	zeroBlockOnce.Do(func() {
		zeroBlock = make([]byte, n)
		zeroBlockMD5 = md5.Sum(zeroBlock) //nolint:gosec
	})

	if len(zeroBlock) != n {
		// Only reachable if a caller mixes block sizes within one process,
		// which violates the single-block_size-per-store contract; fall
		// back to a fresh buffer rather than handing back a mismatched one.
		return make([]byte, n)
	}

	return zeroBlock
}

// ZeroMD5 returns ZERO_MD5, the MD5 of a block of n zero bytes.
func ZeroMD5(n int) [16]byte {
	ZeroBlock(n)

	if len(zeroBlock) != n {
		return md5.Sum(make([]byte, n)) //nolint:gosec
	}

	return zeroBlockMD5
}

// MD5Ptr returns a pointer to sum, for callers that computed an MD5 value
// and need the *[16]byte ReadBlock/WriteBlock expect.
func MD5Ptr(sum [16]byte) *[16]byte {
	return ptr.To(sum)
}

// IsZeroBlock reports whether b is exactly the all-zero payload of its
// length, i.e. a candidate for zero elision.
func IsZeroBlock(b []byte) bool {
	if b == nil {
		return true
	}

	for _, c := range b {
		if c != 0 {
			return false
		}
	}

	return true
}
