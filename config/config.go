// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the scene,
// which is read from TOML or YAML files, CLI flags, and
// remote clients, and is always clamped rather than rejected.
package config

import (
	"fmt"

	"cogentcore.org/synaptic/camera"
	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/math32"
)

// Limits of the clamped configuration values.
const (
	MinSpeed        = 0.1
	MaxSpeed        = 5
	MinCreationRate = 0.1
	MaxCreationRate = 60
	MinFPS          = 1
	MaxFPS          = 240
)

// Config is the configuration of the scene.
type Config struct {

	// NodeCount is the number of nodes in the network.
	NodeCount int `default:"50"`

	// ConnectionCount is the number of connection trials
	// made when building the network.
	ConnectionCount int `default:"100"`

	// Speed scales the rotation and activation rates.
	// It is 0 or in [0.1, 5].
	Speed float32 `default:"1"`

	// Zoom is the zoom level, in [0, 100].
	Zoom float32 `default:"50"`

	// AutoCreate adds a node to the network every 1/CreationRate seconds.
	AutoCreate bool

	// CreationRate is the number of nodes added per second
	// when AutoCreate is on.
	CreationRate float32 `default:"1"`

	// Playing is whether the animation is running.
	Playing bool `default:"true"`

	// ColorSource is the source of node colors.
	ColorSource colors.Sources

	// ZoomPolicy is the formula mapping zoom to camera distance.
	ZoomPolicy camera.ZoomPolicies

	// FPS is the frame rate of the animation.
	FPS float32 `default:"60"`

	// Seed is the seed for node positions and connections.
	// 0 uses a random seed.
	Seed int64
}

// Default returns a new config with default values.
func Default() Config {
	cfg := Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets the default values.
func (cfg *Config) Defaults() {
	cfg.NodeCount = 50
	cfg.ConnectionCount = 100
	cfg.Speed = 1
	cfg.Zoom = 50
	cfg.AutoCreate = false
	cfg.CreationRate = 1
	cfg.Playing = true
	cfg.ColorSource = colors.SourceDensity
	cfg.ZoomPolicy = camera.ZoomLinear
	cfg.FPS = 60
	cfg.Seed = 0
}

// Clamp brings all values into their valid ranges.
func (cfg *Config) Clamp() {
	cfg.NodeCount = max(cfg.NodeCount, 0)
	cfg.ConnectionCount = max(cfg.ConnectionCount, 0)
	if math32.IsNaN(cfg.Speed) || cfg.Speed <= 0 {
		cfg.Speed = 0
	} else {
		cfg.Speed = math32.Clamp(cfg.Speed, MinSpeed, MaxSpeed)
	}
	cfg.Zoom = camera.ClampZoom(cfg.Zoom)
	cfg.CreationRate = clampNaN(cfg.CreationRate, MinCreationRate, MaxCreationRate)
	cfg.FPS = clampNaN(cfg.FPS, MinFPS, MaxFPS)
	if cfg.ColorSource < 0 || cfg.ColorSource >= colors.SourcesN {
		cfg.ColorSource = colors.SourceDensity
	}
	if cfg.ZoomPolicy < 0 || cfg.ZoomPolicy >= camera.ZoomPoliciesN {
		cfg.ZoomPolicy = camera.ZoomLinear
	}
}

// Clamped returns a clamped copy of the config.
func (cfg Config) Clamped() Config {
	cfg.Clamp()
	return cfg
}

// StructureChanged returns whether the other config requires
// the network to be rebuilt.
func (cfg *Config) StructureChanged(other *Config) bool {
	return cfg.NodeCount != other.NodeCount || cfg.ConnectionCount != other.ConnectionCount
}

func (cfg *Config) String() string {
	return fmt.Sprintf("config.Config{Nodes: %d, Connections: %d, Speed: %g, Zoom: %g, Playing: %v, AutoCreate: %v @ %g/s, Color: %v, ZoomPolicy: %v}",
		cfg.NodeCount, cfg.ConnectionCount, cfg.Speed, cfg.Zoom, cfg.Playing, cfg.AutoCreate, cfg.CreationRate, cfg.ColorSource, cfg.ZoomPolicy)
}

// clampNaN clamps x to [lo, hi], mapping NaN to lo.
func clampNaN(x, lo, hi float32) float32 {
	if math32.IsNaN(x) {
		return lo
	}
	return math32.Clamp(x, lo, hi)
}
