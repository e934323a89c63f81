// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/deckgen-api/internal/config"
	"github.com/phrazzld/deckgen-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	tests := []struct {
		level       string
		debugLogged bool
		infoLogged  bool
	}{
		{level: "debug", debugLogged: true, infoLogged: true},
		{level: "info", debugLogged: false, infoLogged: true},
		{level: "ERROR", debugLogged: false, infoLogged: false},
		{level: "bogus", debugLogged: false, infoLogged: true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l := logger.New(buf, config.ServerConfig{LogLevel: tc.level, LogFormat: "json"})

			l.Debug("debug message")
			l.Info("info message")

			out := buf.String()
			assert.Equal(t, tc.debugLogged, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.infoLogged, strings.Contains(out, "info message"))
		})
	}
}

func TestNewJSONOutput(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, config.ServerConfig{LogLevel: "info", LogFormat: "json"})

	l.Info("deck created", "deck_id", "abc")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "deck created", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["deck_id"])
	assert.Equal(t, "INFO", entries[0]["level"])
}

func TestNewTextOutput(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	l := logger.New(buf, config.ServerConfig{LogLevel: "info", LogFormat: "text"})

	l.Info("hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "msg=hello")
	assert.Contains(t, out, "k=v")
	assert.False(t, json.Valid([]byte(strings.TrimSpace(out))))
}

func TestContextLogger(t *testing.T) {
	buf, l := logger.NewTestLogger(t)
	fallback := slog.New(slog.NewJSONHandler(&logger.TestLogBuffer{}, nil))

	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	assert.NotNil(t, logger.FromContext(context.Background()))

	ctx := logger.WithLogger(context.Background(), l.With("trace_id", "t-1"))
	logger.FromContextOrDefault(ctx, fallback).Info("inside request")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t-1", entries[0]["trace_id"])
}
