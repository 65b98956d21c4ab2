// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// notarykey composes a notary key from secp256k1 public keys and prints the
// ID of every leaf under a digest algorithm.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ava-labs/utxoledger/config"
	"github.com/ava-labs/utxoledger/utils/logging"
)

func main() {
	fs := config.BuildFlagSet("notarykey")
	addFlags(fs)

	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't parse flags: %s\n", err)
		os.Exit(1)
	}

	cfg, err := config.GetConfig(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't load config: %s\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLoggerFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't create logger: %s\n", err)
		os.Exit(1)
	}
	defer log.Stop()

	keyCfg, err := getKeyConfig(v)
	if err != nil {
		log.Error("invalid key configuration", zap.Error(err))
		os.Exit(1)
	}

	report, err := describe(keyCfg)
	if err != nil {
		log.Error("couldn't describe notary key", zap.Error(err))
		os.Exit(1)
	}

	log.Info("composed notary key",
		zap.Stringer("key", report.Key),
		zap.Int("numLeaves", len(report.Leaves)),
		zap.String("algorithm", keyCfg.Algorithm),
	)
	fmt.Println(report)
}
