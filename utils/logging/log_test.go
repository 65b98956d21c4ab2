// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestLog(t *testing.T) {
	log := NewLogger("", NewWrappedCore(Info, Discard, Plain.Encoder()))

	recovered := new(bool)
	panicFunc := func() {
		panic("DON'T PANIC!")
	}
	exitFunc := func() {
		*recovered = true
	}
	log.RecoverAndExit(panicFunc, exitFunc)

	require.True(t, *recovered)
}

func TestLogLevelFiltering(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("verifier", NewWrappedCore(Info, buf, JSON.Encoder()))

	log.Debug("hidden")
	log.Info("shown", zap.String("tx", "abc"))
	require.NotContains(buf.String(), "hidden")
	require.Contains(buf.String(), "shown")
	require.Contains(buf.String(), `"tx":"abc"`)
	require.Contains(buf.String(), `"level":"info"`)
	require.Contains(buf.String(), `"logger":"verifier"`)

	require.False(log.Enabled(Debug))
	log.SetLevel(Debug)
	require.True(log.Enabled(Debug))
	log.Debug("now shown")
	require.Contains(buf.String(), "now shown")

	log.Stop()
	require.True(buf.closed)
}

func TestLogWith(t *testing.T) {
	require := require.New(t)

	buf := &bufferCloser{}
	log := NewLogger("", NewWrappedCore(Verbo, buf, Plain.Encoder()))
	log.With(zap.String("check", "structural")).Verbo("child")
	require.Contains(buf.String(), "VERBO")
	require.Contains(buf.String(), "structural")
}

func TestNewLoggerFromConfig(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	log, err := NewLoggerFromConfig(Config{
		RotatingWriterConfig: RotatingWriterConfig{
			Directory:   dir,
			MaxSize:     1,
			FileNameTag: "ledger",
		},
		DisableWriterDisplaying: true,
		LogFormat:               Plain,
		LogLevel:                Info,
		DisplayLevel:            Off,
	})
	require.NoError(err)

	log.Info("persisted message")
	log.Stop()

	contents, err := os.ReadFile(filepath.Join(dir, "ledger.log"))
	require.NoError(err)
	require.True(strings.Contains(string(contents), "persisted message"))
}

func TestNoLog(t *testing.T) {
	require := require.New(t)

	var log Logger = NoLog{}
	n, err := log.Write([]byte("abc"))
	require.NoError(err)
	require.Equal(3, n)
	require.False(log.Enabled(Fatal))
	require.Equal(log, log.With(zap.Int("k", 1)))
}
