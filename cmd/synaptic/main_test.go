// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSnapshot(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "net.png")
	_, err := run(t, "snapshot", "-q", "-o", fn, "--width", "80", "--height", "60", "--frames", "3", "--seed", "9", "-n", "12", "--glow", "2")
	require.NoError(t, err)

	f, err := os.Open(fn)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 80, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestSnapshotBadColor(t *testing.T) {
	_, err := run(t, "snapshot", "-q", "-o", filepath.Join(t.TempDir(), "x.png"), "--color", "Rainbow")
	assert.Error(t, err)
}

func TestConfigInitShow(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "synaptic.yaml")
	out, err := run(t, "config", "init", fn)
	require.NoError(t, err)
	assert.Contains(t, out, fn)

	_, err = run(t, "config", "init", fn)
	assert.Error(t, err)

	cfg, err := config.Load(fn)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg.ColorSource = colors.SourceActivation
	require.NoError(t, cfg.Save(fn))
	out, err = run(t, "config", "show", "-q", "-c", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "ColorSource")
	assert.Contains(t, out, "Activation")
}
