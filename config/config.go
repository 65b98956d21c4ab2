// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/utxoledger/ledger/verifier"
	"github.com/ava-labs/utxoledger/trace"
	"github.com/ava-labs/utxoledger/utils/logging"
)

const EnvPrefix = "utxoledger"

var errInvalidSampleRate = errors.New("tracing sample rate must be in [0, 1]")

type Config struct {
	Logging  logging.Config  `json:"logging"`
	Tracing  trace.Config    `json:"tracing"`
	Verifier verifier.Config `json:"verifier"`
}

// BuildViper parses [args] into [fs] and returns a viper instance reading, in
// order of precedence, flags, UTXOLEDGER_ prefixed environment variables and
// the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		v.SetConfigFile(os.ExpandEnv(v.GetString(ConfigFileKey)))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func GetConfig(v *viper.Viper) (Config, error) {
	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	tracingConfig, err := getTracingConfig(v)
	if err != nil {
		return Config{}, err
	}
	verifierConfig := verifier.Config{
		MetricsNamespace:       v.GetString(MetricsNamespaceKey),
		KeyIDCacheSize:         v.GetInt(KeyIDCacheSizeKey),
		ConcurrentVerification: v.GetBool(ConcurrentVerificationKey),
	}
	if err := verifierConfig.Verify(); err != nil {
		return Config{}, err
	}
	return Config{
		Logging:  loggingConfig,
		Tracing:  tracingConfig,
		Verifier: verifierConfig,
	}, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	config := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			Directory: os.ExpandEnv(v.GetString(LogDirKey)),
			MaxSize:   int(v.GetUint(LogMaxSizeKey)),
			MaxFiles:  int(v.GetUint(LogMaxFilesKey)),
			MaxAge:    int(v.GetUint(LogMaxAgeKey)),
			Compress:  v.GetBool(LogCompressKey),
		},
		DisableWriterDisplaying: v.GetBool(LogDisableDisplayKey),
		LoggerName:              EnvPrefix,
	}

	var err error
	config.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return logging.Config{}, err
	}
	config.DisplayLevel, err = logging.ToLevel(v.GetString(LogDisplayLevelKey))
	if err != nil {
		return logging.Config{}, err
	}
	config.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	return config, err
}

func getTracingConfig(v *viper.Viper) (trace.Config, error) {
	exporterType, err := trace.ExporterTypeFromString(v.GetString(TracingExporterTypeKey))
	if err != nil {
		return trace.Config{}, err
	}

	sampleRate := v.GetFloat64(TracingSampleRateKey)
	if sampleRate < 0 || sampleRate > 1 {
		return trace.Config{}, fmt.Errorf("%w: %f", errInvalidSampleRate, sampleRate)
	}

	return trace.Config{
		ExporterConfig: trace.ExporterConfig{
			Type:     exporterType,
			Endpoint: v.GetString(TracingEndpointKey),
			Insecure: v.GetBool(TracingInsecureKey),
			Headers:  v.GetStringMapString(TracingHeadersKey),
		},
		TraceSampleRate: sampleRate,
		AppName:         trace.DefaultAppName,
	}, nil
}
