// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package ecp implements the eventual-consistency protection layer: a
// concurrent, time-indexed state machine over per-block entries that
// combines a write-rate limiter, an in-flight write registry, and a
// bounded MD5 cache that rejects stale reads.
package ecp

import (
	"context"
	"crypto/md5" //nolint:gosec // digest, not a security primitive
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kopexa-grc/ecprotect/blockstore"
	"github.com/kopexa-grc/ecprotect/ctxutil"
	kerr "github.com/kopexa-grc/ecprotect/errors"
	"github.com/kopexa-grc/ecprotect/graceful"
)

// writeCorrelationID is the ctxutil key WriteBlock stores its per-call
// correlation ID under, so the inner store's own logging can tie a
// backend-side log line back to the ECP call that triggered it.
type writeCorrelationID string

// Protector wraps an inner blockstore.Store and implements
// blockstore.Store itself, shielding callers from the inner store's
// eventual consistency.
type Protector struct {
	cfg   Config
	inner blockstore.Store
	log   zerolog.Logger

	mu        sync.Mutex
	spaceCond *sync.Cond
	table     map[int64]*entry
	queue     *expiryQueue
	stats     statCounters
	destroyed bool

	// allocEntry creates a fresh entry, or reports an allocation failure.
	// Overridable in tests to exercise the out-of-memory path; Go's
	// allocator does not itself return recoverable errors.
	allocEntry func() (*entry, error)
}

// Option configures a Protector at construction time.
type Option func(*Protector)

// WithLogger sets the logger used for ECP's own diagnostic output (the
// stale expect_md5 warning, and scavenger/debug tracing). It defaults to
// the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Protector) { p.log = l }
}

// New constructs a Protector wrapping inner, per the configuration in cfg.
func New(cfg Config, inner blockstore.Store, opts ...Option) (*Protector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Protector{
		cfg:        cfg,
		inner:      inner,
		log:        log.Logger,
		table:      make(map[int64]*entry),
		queue:      newExpiryQueue(),
		allocEntry: func() (*entry, error) { return &entry{}, nil },
	}
	p.spaceCond = sync.NewCond(&p.mu)

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

var (
	_ blockstore.Store      = (*Protector)(nil)
	_ graceful.Shutdownable = (*Protector)(nil)
)

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// ReadBlock implements the read path.
func (p *Protector) ReadBlock(ctx context.Context, blockNum int64, dst []byte, expectMD5 *[16]byte) error {
	p.mu.Lock()

	p.scavenge(nowMillis())

	e, ok := p.table[blockNum]
	if !ok {
		p.mu.Unlock()
		return p.inner.ReadBlock(ctx, blockNum, dst, expectMD5)
	}

	if e.state == writing {
		copyLiveInto(dst, e.data, p.cfg.BlockSize)
		p.stats.cacheDataHits++
		p.mu.Unlock()

		return nil
	}

	storedMD5 := e.md5
	if storedMD5 == blockstore.ZeroMD5(p.cfg.BlockSize) {
		zeroFill(dst)
		p.stats.cacheDataHits++
		p.mu.Unlock()

		return nil
	}

	if expectMD5 != nil && *expectMD5 != storedMD5 {
		p.log.Warn().
			Int64("block_num", blockNum).
			Msg("ecp: caller-supplied expect_md5 disagrees with the stored MD5 for a WRITTEN entry; proceeding with the stored value")
	}

	p.mu.Unlock()

	return p.inner.ReadBlock(ctx, blockNum, dst, &storedMD5)
}

// copyLiveInto fills dst from a live WRITING payload, or zeros if data
// represents the zero sentinel (nil).
func copyLiveInto(dst, data []byte, blockSize int) {
	if data == nil {
		zeroFill(dst)
		return
	}

	copy(dst[:blockSize], data)
}

func zeroFill(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
}

// WriteBlock implements the write state machine.
func (p *Protector) WriteBlock(ctx context.Context, blockNum int64, src []byte, md5sum *[16]byte) error {
	writeID := writeCorrelationID(uuid.NewString())
	ctx = ctxutil.With(ctx, writeID)

	wlog := p.log.With().Str("write_id", string(writeID)).Int64("block_num", blockNum).Logger()
	wlog.Debug().Msg("ecp: write_block enter")

	effSrc, effMD5 := preprocessWrite(src, md5sum, p.cfg.BlockSize)

	p.mu.Lock()

	for {
		now := nowMillis()
		p.scavenge(now)

		e, ok := p.table[blockNum]

		switch {
		case !ok:
			if len(p.table) == p.cfg.CacheSize {
				start := time.Now()
				p.waitForSpace(now)
				p.stats.cacheFullDelay += time.Since(start)

				continue
			}

			ne, err := p.allocEntry()
			if err != nil {
				p.stats.outOfMemoryErrors++
				p.mu.Unlock()

				return kerr.NewOutOfMemory("ecp: failed to allocate entry")
			}

			ne.blockNum = blockNum
			ne.toWriting(effSrc)
			p.table[blockNum] = ne

			return p.commit(ctx, ne, blockNum, effSrc, effMD5)

		case e.state == writing:
			// A concurrent write already owns this block. There is no
			// condition signalled on writing -> written, so this is a pure
			// timed sleep for min_write_delay: it conservatively overshoots
			// (the in-flight write may finish sooner) but bounds the wait
			// without plumbing a signal through the commit path.
			start := time.Now()
			p.sleep(p.cfg.MinWriteDelay)
			p.stats.repeatedWriteDelay += time.Since(start)

			continue

		default: // written
			deadline := e.timestamp + p.cfg.MinWriteDelay.Milliseconds()
			if now < deadline {
				start := time.Now()
				p.sleep(time.Duration(deadline-now) * time.Millisecond)
				p.stats.repeatedWriteDelay += time.Since(start)

				continue
			}

			p.queue.remove(e)
			e.toWriting(effSrc)

			return p.commit(ctx, e, blockNum, effSrc, effMD5)
		}
	}
}

// preprocessWrite runs the per-call preprocessing with the lock not held:
// resolve the zero sentinel, or compute the MD5 if the caller didn't
// supply one.
func preprocessWrite(src []byte, md5sum *[16]byte, blockSize int) ([]byte, [16]byte) {
	if blockstore.IsZeroBlock(src) {
		return nil, blockstore.ZeroMD5(blockSize)
	}

	if md5sum != nil {
		return src, *md5sum
	}

	return src, md5.Sum(src) //nolint:gosec
}

// commit performs the write's commit sequence: release the lock, call the
// inner write, reacquire, and transition the entry on success or discard
// it on failure. e must already be in the table with state == writing
// when commit is called, and the caller must be holding p.mu.
func (p *Protector) commit(ctx context.Context, e *entry, blockNum int64, src []byte, effMD5 [16]byte) error {
	p.mu.Unlock()

	err := p.inner.WriteBlock(ctx, blockNum, src, &effMD5)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		delete(p.table, blockNum)
		p.spaceCond.Signal()
		p.checkInvariants()

		return err
	}

	e.toWritten(nowMillis(), effMD5)
	p.queue.pushBack(e)
	p.checkInvariants()

	return nil
}

// sleep releases p.mu, sleeps for d (a no-op if d <= 0), and reacquires
// p.mu. It implements the write path's fixed-duration waits: these are
// never signalled early, by design, since nothing in the state machine
// can make a rate-limit window close sooner than its configured delay.
func (p *Protector) sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	p.mu.Unlock()
	time.Sleep(d)
	p.mu.Lock()
}

// waitForSpace blocks until an entry is evicted or fails (spaceCond is
// signalled or broadcast) or until a timer fires, whichever comes first.
// The timer is set for the moment the expiry queue's head would expire; if
// the queue is empty (every tracked block is WRITING), it is set for
// cache_time from now.
// p.mu must be held; it is released while waiting and reacquired before
// return, and the caller must re-check the predicate after waking.
func (p *Protector) waitForSpace(now int64) {
	d := p.cfg.CacheTime

	if head := p.queue.front(); head != nil {
		deadline := head.timestamp + p.cfg.CacheTime.Milliseconds()
		d = time.Duration(deadline-now) * time.Millisecond
	}

	if d <= 0 {
		d = time.Millisecond
	}

	timer := time.AfterFunc(d, func() {
		p.mu.Lock()
		p.spaceCond.Broadcast()
		p.mu.Unlock()
	})
	defer timer.Stop()

	p.spaceCond.Wait()
}

// scavenge removes every WRITTEN entry whose cache_time has elapsed.
// p.mu must be held.
func (p *Protector) scavenge(now int64) {
	removed := 0

	for {
		head := p.queue.front()
		if head == nil || head.timestamp+p.cfg.CacheTime.Milliseconds() > now {
			break
		}

		p.queue.remove(head)
		delete(p.table, head.blockNum)
		removed++

		p.log.Debug().Int64("block_num", head.blockNum).Msg("ecp: scavenger evicted expired entry")
	}

	switch removed {
	case 0:
	case 1:
		p.spaceCond.Signal()
	default:
		p.spaceCond.Broadcast()
	}

	p.checkInvariants()
}

// DetectSizes delegates transparently to the inner store.
func (p *Protector) DetectSizes(ctx context.Context) (fileSize, blockSize int64, err error) {
	return p.inner.DetectSizes(ctx)
}

// Destroy releases all entries and synchronization primitives, then
// destroys the inner store. Callers must ensure no ReadBlock/WriteBlock
// call is outstanding.
func (p *Protector) Destroy(ctx context.Context) error {
	p.mu.Lock()

	if p.destroyed {
		p.mu.Unlock()
		return nil
	}

	p.destroyed = true
	p.table = make(map[int64]*entry)
	p.queue = newExpiryQueue()

	p.mu.Unlock()

	return p.inner.Destroy(ctx)
}

// Shutdown adapts Destroy to graceful.Shutdownable, so a Protector can be
// registered with a graceful.Closer alongside other long-lived resources.
func (p *Protector) Shutdown(ctx context.Context) error {
	return p.Destroy(ctx)
}

// Stats returns a point-in-time snapshot of the statistics surface.
func (p *Protector) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		CurrentCacheSize:   len(p.table),
		CacheDataHits:      p.stats.cacheDataHits,
		CacheFullDelay:     p.stats.cacheFullDelay,
		RepeatedWriteDelay: p.stats.repeatedWriteDelay,
		OutOfMemoryErrors:  p.stats.outOfMemoryErrors,
	}
}
