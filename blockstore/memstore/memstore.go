// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package memstore is an in-memory implementation of blockstore.Store used
// as ECP's reference inner store in tests. Unlike a real object store it is
// always consistent by default — but it can be told to serve a stale view
// of a block, or to fail the next write to a block, so tests can exercise
// ECP's staleness rejection and write-failure handling without a real
// eventually-consistent backend.
package memstore

import (
	"context"
	"crypto/md5" //nolint:gosec // digest, not a security primitive
	"sync"

	"github.com/kopexa-grc/ecprotect/blockstore"
	kerr "github.com/kopexa-grc/ecprotect/errors"
)

// Store is a goroutine-safe, in-memory block store.
type Store struct {
	blockSize int
	fileSize  int64

	mu        sync.Mutex
	blocks    map[int64][]byte
	staleView map[int64][]byte
	failNext  map[int64]error
}

// New returns a Store configured for the given block and file size.
func New(blockSize int, fileSize int64) *Store {
	return &Store{
		blockSize: blockSize,
		fileSize:  fileSize,
		blocks:    make(map[int64][]byte),
		staleView: make(map[int64][]byte),
		failNext:  make(map[int64]error),
	}
}

var _ blockstore.Store = (*Store)(nil)

// ReadBlock returns the block's current bytes, or a stale view previously
// installed with SetStaleRead, zero-filled if the block was never written
// or was deleted. If expectMD5 is supplied and disagrees with the MD5 of
// the bytes actually served, ReadBlock returns a Stale error, exactly as
// the contract describes for the inner contract.
func (s *Store) ReadBlock(_ context.Context, blockNum int64, dst []byte, expectMD5 *[16]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.staleView[blockNum]
	if !ok {
		data = s.blocks[blockNum]
	}

	if data == nil {
		data = make([]byte, s.blockSize)
	}

	got := md5.Sum(data) //nolint:gosec

	if expectMD5 != nil && got != *expectMD5 {
		return kerr.NewStale("memstore: fetched data does not match expected MD5")
	}

	copy(dst[:s.blockSize], data)

	return nil
}

// WriteBlock stores a copy of src for blockNum, or deletes the block if
// src is nil (the zero-elision sentinel, ). If FailNextWrite
// was called for blockNum, this call consumes that one-shot failure and
// returns it instead of writing.
func (s *Store) WriteBlock(_ context.Context, blockNum int64, src []byte, _ *[16]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err, ok := s.failNext[blockNum]; ok {
		delete(s.failNext, blockNum)
		return err
	}

	if src == nil {
		delete(s.blocks, blockNum)
		return nil
	}

	cp := make([]byte, len(src))
	copy(cp, src)
	s.blocks[blockNum] = cp

	return nil
}

// DetectSizes returns the store's configured sizes.
func (s *Store) DetectSizes(_ context.Context) (fileSize, blockSize int64, err error) {
	return s.fileSize, int64(s.blockSize), nil
}

// Destroy discards all stored blocks.
func (s *Store) Destroy(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks = make(map[int64][]byte)
	s.staleView = make(map[int64][]byte)
	s.failNext = make(map[int64]error)

	return nil
}

// SetStaleRead makes the next reads of blockNum return data instead of
// whatever was most recently written, modeling a backend that has not yet
// converged after a write (eventual consistency). Pass nil
// to clear it.
func (s *Store) SetStaleRead(blockNum int64, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data == nil {
		delete(s.staleView, blockNum)
		return
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	s.staleView[blockNum] = cp
}

// FailNextWrite makes the next WriteBlock call for blockNum return err
// instead of writing. The failure is consumed after one use.
func (s *Store) FailNextWrite(blockNum int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failNext[blockNum] = err
}

// Has reports whether blockNum currently has stored bytes (used by tests
// to assert zero-elision deletes reached the backend).
func (s *Store) Has(blockNum int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.blocks[blockNum]

	return ok
}
