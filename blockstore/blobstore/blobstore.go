// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package blobstore adapts a blob.Bucket into blockstore.Store, giving ECP
// a production-shaped inner contract backed by Azure Blob Storage. It is
// the eventually-consistent backend ECP exists to protect callers from.
package blobstore

import (
	"context"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/kopexa-grc/ecprotect/blob"
	"github.com/kopexa-grc/ecprotect/blockstore"
	kerr "github.com/kopexa-grc/ecprotect/errors"
)

// sizesKey is the well-known key under which the store's configured file
// and block size are recorded, so a later process can DetectSizes without
// being told the sizes out of band.
const sizesKey = ".ecprotect/sizes.yaml"

type sizes struct {
	FileSize  int64 `yaml:"file_size"`
	BlockSize int64 `yaml:"block_size"`
}

// Store is a blockstore.Store backed by a blob.Bucket. Block numbers are
// mapped to keys of the form "blocks/<blockNum>", the number zero-padded
// to 20 digits.
type Store struct {
	bucket    *blob.Bucket
	blockSize int64
	fileSize  int64
}

var _ blockstore.Store = (*Store)(nil)

// New wraps bucket as a block store for a file of fileSize bytes split
// into blockSize-byte blocks, recording those sizes to the bucket so a
// later DetectSizes call (from a different process) can recover them.
func New(ctx context.Context, bucket *blob.Bucket, fileSize, blockSize int64) (*Store, error) {
	s := &Store{bucket: bucket, fileSize: fileSize, blockSize: blockSize}

	if err := s.writeSizes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Open wraps bucket as a block store, recovering the file and block size
// previously recorded by New.
func Open(ctx context.Context, bucket *blob.Bucket) (*Store, error) {
	r, err := bucket.NewRangeReader(ctx, sizesKey, 0, -1, nil)
	if err != nil {
		return nil, kerr.Newf(kerr.NotFound, err, "blobstore: no sizes recorded at %q; use New instead of Open", sizesKey)
	}
	defer r.Close()

	buf := make([]byte, r.Size())
	if _, err := readFull(r, buf); err != nil {
		return nil, kerr.Newf(kerr.UnexpectedFailure, err, "blobstore: failed to read sizes")
	}

	var sz sizes
	if err := yaml.Unmarshal(buf, &sz); err != nil {
		return nil, kerr.Newf(kerr.UnexpectedFailure, err, "blobstore: failed to decode sizes")
	}

	return &Store{bucket: bucket, fileSize: sz.FileSize, blockSize: sz.BlockSize}, nil
}

func (s *Store) writeSizes(ctx context.Context) error {
	out, err := yaml.Marshal(sizes{FileSize: s.fileSize, BlockSize: s.blockSize})
	if err != nil {
		return kerr.Newf(kerr.UnexpectedFailure, err, "blobstore: failed to encode sizes")
	}

	return s.bucket.Upload(ctx, sizesKey, bytesReader(out), &blob.WriterOptions{
		ContentType: "application/yaml",
	})
}

func key(blockNum int64) string {
	return fmt.Sprintf("blocks/%020d", blockNum)
}

// ReadBlock reads the block's bytes from the bucket. A missing key is
// treated as an all-zero block, matching the zero-elision write path. If
// expectMD5 is supplied, a mismatch against the bytes actually read
// surfaces as a Stale error.
func (s *Store) ReadBlock(ctx context.Context, blockNum int64, dst []byte, expectMD5 *[16]byte) error {
	r, err := s.bucket.NewRangeReader(ctx, key(blockNum), 0, int64(len(dst)), nil)
	if err != nil {
		if isNotFound(err) {
			zeroFill(dst)
			return nil
		}

		return kerr.NewIOError("blobstore: read failed", err)
	}
	defer r.Close()

	n, err := readFull(r, dst)
	if err != nil {
		return kerr.NewIOError("blobstore: read failed", err)
	}

	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}

	if expectMD5 != nil {
		got := md5sum(dst)
		if got != *expectMD5 {
			return kerr.NewStale("blobstore: fetched data does not match expected MD5")
		}
	}

	return nil
}

// WriteBlock writes src to the bucket, or deletes the key if src is nil,
// the zero sentinel (zero elision). A non-nil all-zero src is uploaded.
func (s *Store) WriteBlock(ctx context.Context, blockNum int64, src []byte, md5 *[16]byte) error {
	k := key(blockNum)

	if src == nil {
		if err := s.bucket.Delete(ctx, k); err != nil && !isNotFound(err) {
			return kerr.NewIOError("blobstore: delete failed", err)
		}

		return nil
	}

	opts := &blob.WriterOptions{ContentType: "application/octet-stream"}
	if md5 != nil {
		opts.ContentMD5 = md5[:]
	}

	if err := s.bucket.Upload(ctx, k, bytesReader(src), opts); err != nil {
		return kerr.NewIOError("blobstore: write failed", err)
	}

	return nil
}

// DetectSizes returns the sizes this store was opened or created with.
func (s *Store) DetectSizes(_ context.Context) (fileSize, blockSize int64, err error) {
	return s.fileSize, s.blockSize, nil
}

// Destroy deletes every block and the sizes record.
func (s *Store) Destroy(ctx context.Context) error {
	n := s.fileSize / s.blockSize
	if s.fileSize%s.blockSize != 0 {
		n++
	}

	for i := int64(0); i < n; i++ {
		if err := s.bucket.Delete(ctx, key(i)); err != nil && !isNotFound(err) {
			return kerr.NewIOError("blobstore: destroy failed", err)
		}
	}

	if err := s.bucket.Delete(ctx, sizesKey); err != nil && !isNotFound(err) {
		return kerr.NewIOError("blobstore: destroy failed", err)
	}

	return nil
}

func zeroFill(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
}
