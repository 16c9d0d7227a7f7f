// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLegacyLevel(t *testing.T) {
	tests := []struct {
		in   int
		want slog.Level
	}{
		{LegacyLevelCrit, LevelCrit},
		{LegacyLevelError, LevelError},
		{LegacyLevelWarn, LevelWarn},
		{LegacyLevelInfo, LevelInfo},
		{LegacyLevelDebug, LevelDebug},
		{LegacyLevelTrace, LevelTrace},
		{9, LevelTrace},
		{-1, LevelCrit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromLegacyLevel(tt.in), "legacy level %d", tt.in)
	}
}

func TestParseLevel(t *testing.T) {
	for _, lvl := range []slog.Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelCrit} {
		got, ok := ParseLevel(LevelString(lvl))
		assert.True(t, ok)
		assert.Equal(t, lvl, got)
	}
	_, ok := ParseLevel("verbose")
	assert.False(t, ok)
}

func TestTerminalHandler(t *testing.T) {
	var (
		buf bytes.Buffer
		lvl slog.LevelVar
	)
	lvl.Set(LevelInfo)
	l := NewLogger(NewTerminalHandlerWithLevel(&buf, &lvl, false)).With("pkg", "tracker")

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("snapshot recorded", "count", 3, "note", "two words")
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "INFO ["))
	assert.Contains(t, out, "snapshot recorded")
	assert.Contains(t, out, "pkg=tracker")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, `note="two words"`)

	buf.Reset()
	lvl.Set(LevelDebug)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestJSONHandler(t *testing.T) {
	var (
		buf bytes.Buffer
		lvl slog.LevelVar
	)
	lvl.Set(LevelTrace)
	NewLogger(JSONHandlerWithLevel(&buf, &lvl)).Trace("deep", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "trace", rec["lvl"])
	assert.Equal(t, "deep", rec["msg"])
	assert.Equal(t, "v", rec["k"])
	assert.Contains(t, rec, "t")
}

func TestWithContextFollowsDefault(t *testing.T) {
	prev := Root()
	defer SetDefault(prev)

	l := WithContext("pkg", "api")

	var (
		buf bytes.Buffer
		lvl slog.LevelVar
	)
	lvl.Set(LevelInfo)
	SetDefault(NewLogger(NewTerminalHandlerWithLevel(&buf, &lvl, false)))

	l.Info("late bound", "odd")
	assert.Contains(t, buf.String(), "pkg=api")
	assert.Contains(t, buf.String(), errorKey)
}
