// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "time"

var _ Metrics = NoMetrics{}

type NoMetrics struct{}

func (NoMetrics) Observe(string, time.Time, error) {}

func (NoMetrics) ObserveContractFailures(int) {}
