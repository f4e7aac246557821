// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package wellknown

// PrometheusNamespace is the name of the Prometheus namespace all metrics
// produced by this module fall under.
const PrometheusNamespace = "ecprotect"
