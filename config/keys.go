// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey = "config-file"

	LogLevelKey          = "log-level"
	LogDisplayLevelKey   = "log-display-level"
	LogFormatKey         = "log-format"
	LogDirKey            = "log-dir"
	LogDisableDisplayKey = "log-disable-display"
	LogMaxSizeKey        = "log-rotater-max-size"
	LogMaxFilesKey       = "log-rotater-max-files"
	LogMaxAgeKey         = "log-rotater-max-age"
	LogCompressKey       = "log-rotater-compress-enabled"

	MetricsNamespaceKey       = "metrics-namespace"
	KeyIDCacheSizeKey         = "key-id-cache-size"
	ConcurrentVerificationKey = "concurrent-verification-enabled"

	TracingExporterTypeKey = "tracing-exporter-type"
	TracingEndpointKey     = "tracing-endpoint"
	TracingInsecureKey     = "tracing-insecure"
	TracingSampleRateKey   = "tracing-sample-rate"
	TracingHeadersKey      = "tracing-headers"
)
