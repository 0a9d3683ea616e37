// cmd/cli/main_test.go
package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerHonorsLevel(t *testing.T) {
	ctx := context.Background()

	out := &bytes.Buffer{}
	logger := newLogger(out, slog.LevelDebug)
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
	logger.Debug("debug-level message", "k", "v")
	assert.Contains(t, out.String(), "debug-level message")

	quiet := &bytes.Buffer{}
	logger = newLogger(quiet, slog.LevelError)
	assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
	logger.Info("should be suppressed")
	assert.False(t, strings.Contains(quiet.String(), "should be suppressed"))
}
