// Copyright (c) Kopexa GmbH
// SPDX-License-Identifier: BUSL-1.1

package azurestore

const (
	InfoBlobSuffix string = ".info"
)

const (
	maxRetryDelay = 5000
	retryDelay    = 100
	maxRetries    = 5
)
