// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("non-nil error")

func TestObserve(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	mIntf, err := New("ledger", registry)
	require.NoError(err)
	m := mIntf.(*metrics)

	start := time.Now()
	m.Observe(CheckPlatform, start, nil)
	m.Observe(CheckPlatform, start, nil)
	m.Observe(CheckPlatform, start, errTest)
	m.Observe(CheckContracts, start, errTest)

	require.Equal(float64(2), testutil.ToFloat64(m.verifications.WithLabelValues(CheckPlatform, ResultSuccess)))
	require.Equal(float64(1), testutil.ToFloat64(m.verifications.WithLabelValues(CheckPlatform, ResultFailure)))
	require.Equal(float64(1), testutil.ToFloat64(m.verifications.WithLabelValues(CheckContracts, ResultFailure)))
	require.Zero(testutil.ToFloat64(m.verifications.WithLabelValues(CheckContracts, ResultSuccess)))

	// one series per check
	require.Equal(2, testutil.CollectAndCount(m.duration))

	m.ObserveContractFailures(3)
	require.Equal(1, testutil.CollectAndCount(m.contractFailures))

	families, err := registry.Gather()
	require.NoError(err)
	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.ElementsMatch(
		[]string{
			"ledger_verifications",
			"ledger_verification_duration",
			"ledger_contract_failures",
		},
		names,
	)
}

func TestDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New("ledger", registry)
	require.NoError(err)

	_, err = New("ledger", registry)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(err, &alreadyRegistered)
}
