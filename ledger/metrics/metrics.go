// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/utxoledger/utils/metric"
	"github.com/ava-labs/utxoledger/utils/wrappers"
)

const (
	CheckBuilder          = "builder"
	CheckPlatform         = "platform"
	CheckContracts        = "contracts"
	CheckNotarySignatures = "notary_signatures"
	CheckNotaryLegitimacy = "notary_legitimacy"
	CheckFinalized        = "finalized"

	ResultSuccess = "success"
	ResultFailure = "failure"

	checkLabel  = "check"
	resultLabel = "result"
)

var _ Metrics = (*metrics)(nil)

// Metrics records the outcome of transaction verification checks.
type Metrics interface {
	// Observe records that [check] started at [start] and finished with [err].
	Observe(check string, start time.Time, err error)

	// ObserveContractFailures records the number of contract verification
	// failures reported for one transaction.
	ObserveContractFailures(count int)
}

type metrics struct {
	verifications    *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	contractFailures prometheus.Histogram
}

func New(namespace string, registerer prometheus.Registerer) (Metrics, error) {
	m := &metrics{
		verifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verifications",
				Help:      "number of verification checks run, by check and result",
			},
			[]string{checkLabel, resultLabel},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "verification_duration",
				Help:      "time spent running a verification check (ns)",
				Buckets:   metric.NanosecondsBuckets,
			},
			[]string{checkLabel},
		),
		contractFailures: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "contract_failures",
			Help:      "number of contract verification failures per rejected transaction",
			Buckets:   metric.FailureCountBuckets,
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.verifications),
		registerer.Register(m.duration),
		registerer.Register(m.contractFailures),
	)
	return m, errs.Err
}

func (m *metrics) Observe(check string, start time.Time, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.duration.With(prometheus.Labels{
		checkLabel: check,
	}).Observe(float64(time.Since(start)))
	m.verifications.With(prometheus.Labels{
		checkLabel:  check,
		resultLabel: result,
	}).Inc()
}

func (m *metrics) ObserveContractFailures(count int) {
	m.contractFailures.Observe(float64(count))
}
