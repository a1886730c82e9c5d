// Package testutil holds shared test helpers for the noise packages: log
// routing, reproducible sample points and range assertions.
package testutil

import (
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/noise/internal/logging"
)

// TestConfig holds configuration for test setup
type TestConfig struct {
	// EnableLogCapture routes log output to t.Log instead of discarding it
	EnableLogCapture bool
	// TempDir is created before the test runs when set
	TempDir string
}

// DefaultTestConfig discards logs and creates no directories.
func DefaultTestConfig() *TestConfig {
	return &TestConfig{}
}

// SetupTest installs a test logger as both the package logger and the
// process default. The returned function restores the previous loggers.
//
//	cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
//	defer cleanup()
func SetupTest(t *testing.T, config *TestConfig) func() {
	t.Helper()

	previous, previousDefault := logging.Logger, log.Default()

	var out io.Writer = io.Discard
	if config.EnableLogCapture {
		out = testWriter{t: t}
	}
	logging.Configure(logging.Options{Level: logging.DebugLevel, Format: "logfmt", Output: out})

	if config.TempDir != "" {
		require.NoError(t, os.MkdirAll(config.TempDir, 0o755))
	}

	return func() {
		logging.Logger = previous
		log.SetDefault(previousDefault)
	}
}

// testWriter adapts testing.T to implement io.Writer for log output
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	tw.t.Log(string(p))
	return len(p), nil
}
