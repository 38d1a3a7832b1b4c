// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	buf := &bytes.Buffer{}
	lg := slog.New(NewHandler(buf))

	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	lg.Warn("shown", "nodes", 50)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "nodes=50")
	// a buffer is not a terminal, so level names are not escaped
	assert.Contains(t, buf.String(), "level=WARN")

	UserLevel = slog.LevelDebug
	lg.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "#ff5252", LevelColor(slog.LevelError))
	assert.Equal(t, "#ffb300", LevelColor(slog.LevelWarn))
	assert.Equal(t, "#7df9ff", LevelColor(slog.LevelInfo))
	assert.Equal(t, "#9e9e9e", LevelColor(slog.LevelDebug))
}
