// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotatingWriterConfig describes the on-disk log file. An empty Directory
// disables file output.
type RotatingWriterConfig struct {
	Directory   string `json:"directory"`
	MaxSize     int    `json:"maxSize"` // in megabytes
	MaxFiles    int    `json:"maxFiles"`
	MaxAge      int    `json:"maxAge"` // in days
	Compress    bool   `json:"compress"`
	FileNameTag string `json:"fileNameTag"`
}

// Config defines the configuration of a logger
type Config struct {
	RotatingWriterConfig
	DisableWriterDisplaying bool   `json:"disableWriterDisplaying"`
	LogFormat               Format `json:"logFormat"`
	LogLevel                Level  `json:"logLevel"`
	DisplayLevel            Level  `json:"displayLevel"`
	LoggerName              string `json:"loggerName"`
}

// NewLoggerFromConfig builds a logger that displays to stdout at
// [config.DisplayLevel] and, if a directory is configured, writes a rotated log
// file at [config.LogLevel].
func NewLoggerFromConfig(config Config) (Logger, error) {
	cores := make([]WrappedCore, 0, 2)

	consoleCore := NewWrappedCore(config.DisplayLevel, nopCloser{Writer: os.Stdout}, config.LogFormat.Encoder())
	consoleCore.WriterDisabled = config.DisableWriterDisplaying
	cores = append(cores, consoleCore)

	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, 0o750); err != nil {
			return nil, err
		}
		name := config.FileNameTag
		if name == "" {
			name = "main"
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, name+".log"),
			MaxSize:    config.MaxSize,
			MaxAge:     config.MaxAge,
			MaxBackups: config.MaxFiles,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, JSON.Encoder()))
	}
	return NewLogger(config.LoggerName, cores...), nil
}
