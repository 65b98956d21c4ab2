// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ava-labs/utxoledger/ledger/verifier"
	"github.com/ava-labs/utxoledger/trace"
	"github.com/ava-labs/utxoledger/utils/logging"
)

// BuildFlagSet returns the flags shared by every command of the module.
func BuildFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	AddFlags(fs)
	return fs
}

// AddFlags registers the shared flags on [fs].
func AddFlags(fs *pflag.FlagSet) {
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Ignored if %s is empty", ConfigFileKey))

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, logging.Info.String(), "The log display level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, logging.Plain.String(), "The structure of log format. Should be one of {plain, colors, json}")
	fs.String(LogDirKey, "", "Logging directory. If empty, logs are only displayed")
	fs.Bool(LogDisableDisplayKey, false, "Whether to disable displaying logs on stdout")
	fs.Uint(LogMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated")
	fs.Uint(LogMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files")
	fs.Uint(LogMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files")
	fs.Bool(LogCompressKey, false, "Enables the compression of rotated log files through gzip")

	// Verification
	fs.String(MetricsNamespaceKey, verifier.DefaultConfig.MetricsNamespace, "Namespace of the verification metrics")
	fs.Int(KeyIDCacheSizeKey, verifier.DefaultConfig.KeyIDCacheSize, "Number of notary keys whose leaf key IDs are cached")
	fs.Bool(ConcurrentVerificationKey, verifier.DefaultConfig.ConcurrentVerification, "If true, contracts and notary signatures of finalized transactions are verified concurrently")

	// Tracing
	fs.String(TracingExporterTypeKey, trace.Disabled.String(), fmt.Sprintf("Type of exporter to use for tracing. Options are [%s, %s, %s]", trace.Disabled, trace.GRPC, trace.HTTP))
	fs.String(TracingEndpointKey, "localhost:4317", "The endpoint to send trace data to")
	fs.Bool(TracingInsecureKey, true, "If true, don't use TLS when sending trace data")
	fs.Float64(TracingSampleRateKey, 0.1, "The fraction of traces to sample. If >= 1, always sample. If <= 0, never sample")
	fs.StringToString(TracingHeadersKey, map[string]string{}, "The headers to provide the trace indexer")
}
