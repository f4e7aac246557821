// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package blob

import (
	"context"
	"io"
	"time"

	"github.com/kopexa-grc/ecprotect/blob/driver"
)

// Reader reads bytes from a blob.
//
// It implements io.ReadCloser, and must be closed after reads are done.
type Reader struct {
	b     driver.Bucket
	r     driver.Reader
	key   string
	ctx   context.Context
	dopts *driver.ReaderOptions

	baseOffset  int64
	baseLength  int64
	savedOffset int64

	closed bool
}

// Read implements io.Reader. io.EOF is returned unwrapped, as the io.Reader
// contract requires; any other driver error is wrapped like the rest of
// Bucket's methods.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if err == nil || err == io.EOF { //nolint:errorlint // io.EOF is a sentinel, never wrapped
		return n, err
	}

	return n, wrapError(r.b, err, r.key)
}

// Close implements io.Closer.
func (r *Reader) Close() error {
	r.closed = true
	return wrapError(r.b, r.r.Close(), r.key)
}

// Size returns the size of the blob object.
func (r *Reader) Size() int64 {
	return r.r.Attributes().Size
}

// ModTime returns the last modified time of the blob object.
func (r *Reader) ModTime() time.Time {
	return r.r.Attributes().ModTime
}

// ContentType returns the MIME type of the blob object.
func (r *Reader) ContentType() string {
	return r.r.Attributes().ContentType
}

// WriteTo reads from r and writes to w until there's no more data or an
// error occurs. It implements io.WriterTo, allowing io.Copy(w, r) to skip an
// intermediate read buffer when the driver reader supports Download.
func (r *Reader) WriteTo(w io.Writer) (int64, error) {
	if dl, ok := r.r.(driver.Downloader); ok {
		if err := dl.Download(w); err != nil {
			return 0, wrapError(r.b, err, r.key)
		}

		return r.Size(), nil
	}

	return io.Copy(w, struct{ io.Reader }{r})
}
