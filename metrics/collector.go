// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kopexa-grc/ecprotect/blockstore/ecp"
)

// Metric names.
const (
	MetricCacheSize          = "cache_size"
	MetricCacheDataHitsTotal = "cache_data_hits_total"
	MetricCacheFullDelay     = "cache_full_delay_seconds_total"
	MetricRepeatedWriteDelay = "repeated_write_delay_seconds_total"
	MetricOutOfMemoryErrors  = "out_of_memory_errors_total"
)

// Metric help messages.
const (
	HelpCacheSize          = "Number of block entries currently tracked by the protection layer."
	HelpCacheDataHitsTotal = "Reads served directly from a live or cached entry, without a call to the inner store."
	HelpCacheFullDelay     = "Cumulative time writers have spent waiting for table space to free up."
	HelpRepeatedWriteDelay = "Cumulative time writers have spent waiting out the minimum write delay on an already-tracked block."
	HelpOutOfMemoryErrors  = "Entry or zero-block allocation failures."
)

// ProtectorCollector adapts a *ecp.Protector's Stats snapshot into
// Prometheus metrics, polling the protector on every scrape rather than
// keeping its own counters.
type ProtectorCollector struct {
	protector *ecp.Protector

	cacheSize          *prometheus.Desc
	cacheDataHitsTotal *prometheus.Desc
	cacheFullDelay     *prometheus.Desc
	repeatedWriteDelay *prometheus.Desc
	outOfMemoryErrors  *prometheus.Desc
}

var _ prometheus.Collector = (*ProtectorCollector)(nil)

// NewProtectorCollector returns a collector that reports p's Stats under
// this package's Namespace on every scrape.
func NewProtectorCollector(p *ecp.Protector) *ProtectorCollector {
	return &ProtectorCollector{
		protector: p,
		cacheSize: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", MetricCacheSize), HelpCacheSize, nil, nil,
		),
		cacheDataHitsTotal: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", MetricCacheDataHitsTotal), HelpCacheDataHitsTotal, nil, nil,
		),
		cacheFullDelay: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", MetricCacheFullDelay), HelpCacheFullDelay, nil, nil,
		),
		repeatedWriteDelay: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", MetricRepeatedWriteDelay), HelpRepeatedWriteDelay, nil, nil,
		),
		outOfMemoryErrors: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", MetricOutOfMemoryErrors), HelpOutOfMemoryErrors, nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ProtectorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cacheSize
	ch <- c.cacheDataHitsTotal
	ch <- c.cacheFullDelay
	ch <- c.repeatedWriteDelay
	ch <- c.outOfMemoryErrors
}

// Collect implements prometheus.Collector.
func (c *ProtectorCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.protector.Stats()

	ch <- prometheus.MustNewConstMetric(c.cacheSize, prometheus.GaugeValue, float64(s.CurrentCacheSize))
	ch <- prometheus.MustNewConstMetric(c.cacheDataHitsTotal, prometheus.CounterValue, float64(s.CacheDataHits))
	ch <- prometheus.MustNewConstMetric(c.cacheFullDelay, prometheus.CounterValue, s.CacheFullDelay.Seconds())
	ch <- prometheus.MustNewConstMetric(c.repeatedWriteDelay, prometheus.CounterValue, s.RepeatedWriteDelay.Seconds())
	ch <- prometheus.MustNewConstMetric(c.outOfMemoryErrors, prometheus.CounterValue, float64(s.OutOfMemoryErrors))
}
