// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package metrics_test

import (
	"context"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopexa-grc/ecprotect/blockstore/ecp"
	"github.com/kopexa-grc/ecprotect/blockstore/memstore"
	"github.com/kopexa-grc/ecprotect/metrics"
)

func TestProtectorCollectorReportsCacheSize(t *testing.T) {
	inner := memstore.New(8, 64)
	p, err := ecp.New(ecp.Config{
		BlockSize:     8,
		MinWriteDelay: 0,
		CacheTime:     time.Hour,
		CacheSize:     4,
	}, inner)
	require.NoError(t, err)
	defer p.Destroy(context.Background())

	require.NoError(t, p.WriteBlock(context.Background(), 0, []byte("12345678"), nil))

	registry := metrics.NewRegistry()
	registry.MustRegister(metrics.NewProtectorCollector(p))

	families, err := registry.Gather()
	require.NoError(t, err)

	got := findMetric(t, families, "ecprotect_cache_size")
	assert.InDelta(t, 1, got.GetGauge().GetValue(), 0)
}

func TestProtectorCollectorReportsCacheDataHits(t *testing.T) {
	inner := memstore.New(8, 64)
	p, err := ecp.New(ecp.Config{
		BlockSize:     8,
		MinWriteDelay: 0,
		CacheTime:     time.Hour,
		CacheSize:     4,
	}, inner)
	require.NoError(t, err)
	defer p.Destroy(context.Background())

	// A WRITTEN zero block is served locally and counts as a cache hit; a
	// WRITTEN non-zero block would be fetched from the inner store instead.
	require.NoError(t, p.WriteBlock(context.Background(), 0, make([]byte, 8), nil))
	require.NoError(t, p.ReadBlock(context.Background(), 0, make([]byte, 8), nil))

	registry := metrics.NewRegistry()
	registry.MustRegister(metrics.NewProtectorCollector(p))

	families, err := registry.Gather()
	require.NoError(t, err)

	got := findMetric(t, families, "ecprotect_cache_data_hits_total")
	assert.InDelta(t, 1, got.GetCounter().GetValue(), 0)
}

func findMetric(t *testing.T, families []*dto.MetricFamily, name string) *dto.Metric {
	t.Helper()

	for _, f := range families {
		if f.GetName() == name {
			require.Len(t, f.GetMetric(), 1)
			return f.GetMetric()[0]
		}
	}

	t.Fatalf("metric %s not found", name)

	return nil
}
