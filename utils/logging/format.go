// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Format modes available
const (
	Plain Format = iota
	Colors
	JSON
)

var (
	ErrUnknownFormat = errors.New("unknown format")

	levelToColor = map[Level]string{
		Fatal: "\033[31m", // red
		Error: "\033[38;5;208m",
		Warn:  "\033[33m", // yellow
		Info:  "\033[0m",
		Trace: "\033[95m",
		Debug: "\033[94m",
		Verbo: "\033[92m",
	}

	defaultEncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("[01-02|15:04:05.000]"),
		EncodeName:     zapcore.FullNameEncoder,
	}
)

// Format of logged messages
type Format int

// ToFormat chooses a format mode
func ToFormat(f string) (Format, error) {
	switch strings.ToUpper(f) {
	case "PLAIN":
		return Plain, nil
	case "COLORS":
		return Colors, nil
	case "JSON":
		return JSON, nil
	default:
		return Plain, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Colors:
		return "colors"
	case JSON:
		return "json"
	default:
		return "unknown"
	}
}

// Encoder returns the zap encoder that renders messages in this format.
func (f Format) Encoder() zapcore.Encoder {
	switch f {
	case JSON:
		config := defaultEncoderConfig
		config.EncodeLevel = jsonLevelEncoder
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(config)
	case Colors:
		config := defaultEncoderConfig
		config.EncodeLevel = colorLevelEncoder
		return zapcore.NewConsoleEncoder(config)
	default:
		config := defaultEncoderConfig
		config.EncodeLevel = levelEncoder
		return zapcore.NewConsoleEncoder(config)
	}
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).AlignedString())
}

func jsonLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).LowerString())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	lvl := Level(l)
	color, ok := levelToColor[lvl]
	if !ok {
		color = levelToColor[Info]
	}
	enc.AppendString(color + lvl.AlignedString() + "\033[0m")
}
