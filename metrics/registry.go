// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

// Package metrics exposes the ecp statistics surface as Prometheus
// metrics, on top of a minimal Registry wrapper around the standard
// client_golang collector registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kopexa-grc/ecprotect/wellknown"
)

// Namespace is the Prometheus namespace all metrics registered through this
// package fall under.
const Namespace = wellknown.PrometheusNamespace

// Registry is a shallow wrapper around a prometheus Registry with a helper
// to obtain an HTTP handler for it.
type Registry struct {
	*prometheus.Registry
}

// NewRegistry returns a new registry with the default process/Go collectors
// registered.
func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)

	return &Registry{Registry: r}
}

// Handler returns an HTTP handler for this registry. Should be mounted at
// "/metrics" by whatever serves it; metrics itself never starts a server.
func (r *Registry) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(r, promhttp.HandlerFor(r, promhttp.HandlerOpts{}))
}
