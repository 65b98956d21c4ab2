// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verifier

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/utxoledger/cache"
	"github.com/ava-labs/utxoledger/cache/metercacher"
	"github.com/ava-labs/utxoledger/ledger/contract"
	"github.com/ava-labs/utxoledger/ledger/metrics"
	"github.com/ava-labs/utxoledger/ledger/notary"
	"github.com/ava-labs/utxoledger/ledger/txs"
	"github.com/ava-labs/utxoledger/ledger/verify"
	"github.com/ava-labs/utxoledger/trace"
	"github.com/ava-labs/utxoledger/utils/crypto/keys"
	"github.com/ava-labs/utxoledger/utils/logging"
)

const keyIDCacheNamespace = "key_id_cache"

// Verifier runs the verification checks of transactions with logging, metrics
// and tracing. It is safe for concurrent use.
type Verifier struct {
	config     Config
	log        logging.Logger
	metrics    metrics.Metrics
	tracer     trace.Tracer
	dispatcher *contract.Dispatcher
	service    notary.SignatureService
	keyIDs     notary.KeyIDCache
}

func New(
	config Config,
	log logging.Logger,
	registerer prometheus.Registerer,
	tracer trace.Tracer,
	loader contract.Loader,
	service notary.SignatureService,
) (*Verifier, error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}

	m, err := metrics.New(config.MetricsNamespace, registerer)
	if err != nil {
		return nil, err
	}

	cacheNamespace := keyIDCacheNamespace
	if config.MetricsNamespace != "" {
		cacheNamespace = config.MetricsNamespace + "_" + keyIDCacheNamespace
	}
	keyIDCache, err := metercacher.New[notary.KeyIDCacheKey, notary.KeyIDs](
		cacheNamespace,
		registerer,
		cache.NewLRU[notary.KeyIDCacheKey, notary.KeyIDs](config.KeyIDCacheSize),
	)
	if err != nil {
		return nil, err
	}

	return &Verifier{
		config:     config,
		log:        log,
		metrics:    m,
		tracer:     tracer,
		dispatcher: contract.NewDispatcher(loader, log),
		service:    service,
		keyIDs:     notary.NewCachedKeyIDCache(keyIDCache),
	}, nil
}

// VerifyBuilder runs the pre-signing checks of [b].
func (v *Verifier) VerifyBuilder(ctx context.Context, b *txs.Builder) error {
	_, span := v.tracer.Start(ctx, "verifier.VerifyBuilder")
	defer span.End()

	start := time.Now()
	err := verify.VerifyBuilder(b)
	v.observe(span, metrics.CheckBuilder, start, err)
	return err
}

// VerifyLedgerTransaction runs the platform checks of [tx] and, if they pass,
// the contracts of [tx].
func (v *Verifier) VerifyLedgerTransaction(ctx context.Context, tx *txs.LedgerTransaction) error {
	ctx, span := v.tracer.Start(ctx, "verifier.VerifyLedgerTransaction", oteltrace.WithAttributes(
		attribute.Stringer("txID", tx.ID()),
	))
	defer span.End()

	if err := v.verifyPlatformChecks(ctx, tx); err != nil {
		return err
	}
	return v.verifyContracts(ctx, tx)
}

// VerifyNotarySignatures checks that [signatures] are valid and fulfil
// [notaryKey]. Key IDs are cached across calls.
func (v *Verifier) VerifyNotarySignatures(
	ctx context.Context,
	tx txs.NotarizedTransaction,
	notaryKey keys.PublicKey,
	signatures []notary.DigitalSignatureAndMetadata,
) error {
	_, span := v.tracer.Start(ctx, "verifier.VerifyNotarySignatures", oteltrace.WithAttributes(
		attribute.Stringer("txID", tx.ID()),
		attribute.Int("numSignatures", len(signatures)),
	))
	defer span.End()

	start := time.Now()
	err := notary.VerifyNotarySignatures(tx, notaryKey, signatures, v.keyIDs, v.service)
	v.observe(span, metrics.CheckNotarySignatures, start, err, zap.Stringer("txID", tx.ID()))
	return err
}

// VerifyNotaryAllowed checks that the notary of [tx] is listed in [params].
func (v *Verifier) VerifyNotaryAllowed(
	ctx context.Context,
	tx txs.NotarizedTransaction,
	params *notary.SignedGroupParameters,
) error {
	_, span := v.tracer.Start(ctx, "verifier.VerifyNotaryAllowed", oteltrace.WithAttributes(
		attribute.Stringer("txID", tx.ID()),
	))
	defer span.End()

	start := time.Now()
	err := notary.VerifyNotaryAllowed(tx, params)
	v.observe(span, metrics.CheckNotaryLegitimacy, start, err, zap.Stringer("txID", tx.ID()))
	return err
}

// VerifyFinalized runs the platform checks of [tx] and then verifies its
// contracts and the notary [signatures] over it. If both of the latter fail,
// either error may be returned.
func (v *Verifier) VerifyFinalized(
	ctx context.Context,
	tx *txs.LedgerTransaction,
	signatures []notary.DigitalSignatureAndMetadata,
) error {
	ctx, span := v.tracer.Start(ctx, "verifier.VerifyFinalized", oteltrace.WithAttributes(
		attribute.Stringer("txID", tx.ID()),
		attribute.Bool("concurrent", v.config.ConcurrentVerification),
	))
	defer span.End()

	start := time.Now()
	err := v.verifyFinalized(ctx, tx, signatures)
	v.observe(span, metrics.CheckFinalized, start, err, zap.Stringer("txID", tx.ID()))
	return err
}

func (v *Verifier) verifyFinalized(
	ctx context.Context,
	tx *txs.LedgerTransaction,
	signatures []notary.DigitalSignatureAndMetadata,
) error {
	if err := v.verifyPlatformChecks(ctx, tx); err != nil {
		return err
	}

	notaryKey := tx.Notary().Key
	if !v.config.ConcurrentVerification {
		if err := v.verifyContracts(ctx, tx); err != nil {
			return err
		}
		return v.VerifyNotarySignatures(ctx, tx, notaryKey, signatures)
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return v.verifyContracts(egCtx, tx)
	})
	eg.Go(func() error {
		return v.VerifyNotarySignatures(egCtx, tx, notaryKey, signatures)
	})
	return eg.Wait()
}

func (v *Verifier) verifyPlatformChecks(ctx context.Context, tx *txs.LedgerTransaction) error {
	_, span := v.tracer.Start(ctx, "verifier.verifyPlatformChecks")
	defer span.End()

	start := time.Now()
	err := verify.NewLedgerTransactionVerifier(tx).VerifyPlatformChecks(tx.Notary())
	v.observe(span, metrics.CheckPlatform, start, err, zap.Stringer("txID", tx.ID()))
	return err
}

func (v *Verifier) verifyContracts(ctx context.Context, tx *txs.LedgerTransaction) error {
	_, span := v.tracer.Start(ctx, "verifier.verifyContracts")
	defer span.End()

	start := time.Now()
	err := v.dispatcher.Verify(tx)
	v.observe(span, metrics.CheckContracts, start, err, zap.Stringer("txID", tx.ID()))

	var verificationErr *contract.VerificationError
	if errors.As(err, &verificationErr) {
		span.SetAttributes(attribute.Int("numFailures", len(verificationErr.Failures)))
		v.metrics.ObserveContractFailures(len(verificationErr.Failures))
	}
	return err
}

func (v *Verifier) observe(span oteltrace.Span, check string, start time.Time, err error, fields ...zap.Field) {
	v.metrics.Observe(check, start, err)
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, check+" verification failed")
	v.log.Debug("verification failed",
		append(
			fields,
			zap.String("check", check),
			zap.Error(err),
		)...,
	)
}
