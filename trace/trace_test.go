// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewDisabled(t *testing.T) {
	require := require.New(t)

	tracer, err := New(Config{})
	require.NoError(err)
	require.Equal(Noop, tracer)

	_, span := tracer.Start(context.Background(), "noop")
	require.False(span.SpanContext().IsValid())
	span.End()
	require.NoError(tracer.Close())
}

func TestNewUnknownExporter(t *testing.T) {
	_, err := New(Config{
		ExporterConfig: ExporterConfig{
			Type: ExporterType(10),
		},
	})
	require.ErrorIs(t, err, ErrUnknownExporterType)
}

func TestTracerExportsSampledSpans(t *testing.T) {
	tests := []struct {
		name          string
		sampleRate    float64
		expectedSpans int
	}{
		{
			name:          "always sample",
			sampleRate:    1,
			expectedSpans: 2,
		},
		{
			name:          "never sample",
			sampleRate:    0,
			expectedSpans: 0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			exporter := tracetest.NewInMemoryExporter()
			tracer := newTracer(Config{TraceSampleRate: test.sampleRate}, exporter)

			ctx, parent := tracer.Start(context.Background(), "parent")
			_, child := tracer.Start(ctx, "child")
			child.End()
			parent.End()

			require.NoError(tracer.tp.ForceFlush(context.Background()))
			require.Len(exporter.GetSpans(), test.expectedSpans)
			require.NoError(tracer.Close())
		})
	}
}

func TestExporterTypeJSON(t *testing.T) {
	tests := []struct {
		json         string
		exporterType ExporterType
		expectedErr  error
	}{
		{json: `"grpc"`, exporterType: GRPC},
		{json: `"HTTP"`, exporterType: HTTP},
		{json: `"disabled"`, exporterType: Disabled},
		{json: `""`, exporterType: Disabled},
		{json: `"null"`, exporterType: Disabled},
		{json: `"kafka"`, expectedErr: ErrUnknownExporterType},
		{json: `grpc`, expectedErr: errInvalidFormat},
	}
	for _, test := range tests {
		t.Run(test.json, func(t *testing.T) {
			require := require.New(t)

			var exporterType ExporterType
			err := exporterType.UnmarshalJSON([]byte(test.json))
			require.ErrorIs(err, test.expectedErr)
			if test.expectedErr != nil {
				return
			}
			require.Equal(test.exporterType, exporterType)

			b, err := json.Marshal(exporterType)
			require.NoError(err)
			roundTripped, err := ExporterTypeFromString(string(b[1 : len(b)-1]))
			require.NoError(err)
			require.Equal(exporterType, roundTripped)
		})
	}
}
