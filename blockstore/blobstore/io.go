// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package blobstore

import (
	"bytes"
	"crypto/md5" //nolint:gosec // digest, not a security primitive
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	kerr "github.com/kopexa-grc/ecprotect/errors"
)

// isNotFound reports whether err represents a missing blob. The azurestore
// driver does not translate Azure SDK errors: Bucket.Delete returns them
// as is, and blob/error.go's wrapError keeps them as the wrapped cause of
// the kerr.Error it returns, so a bloberror code is the common case; a
// kerr.NotFound code is also accepted for a driver that does translate it.
func isNotFound(err error) bool {
	return bloberror.HasCode(err, bloberror.BlobNotFound) || kerr.Code(err) == kerr.NotFound
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

// readFull reads from r until dst is full or r is exhausted, returning the
// number of bytes read. Unlike io.ReadFull it does not treat a short read
// as an error: a block near the end of a file is legitimately shorter than
// BlockSize.
func readFull(r io.Reader, dst []byte) (int, error) {
	total := 0

	for total < len(dst) {
		n, err := r.Read(dst[total:])
		total += n

		if err == io.EOF {
			return total, nil
		}

		if err != nil {
			return total, err
		}

		if n == 0 {
			return total, nil
		}
	}

	return total, nil
}

func md5sum(b []byte) [16]byte {
	return md5.Sum(b) //nolint:gosec
}
