// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"cogentcore.org/synaptic/base/logx"
	"cogentcore.org/synaptic/config"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// flags are the flags shared by all commands.
type flags struct {
	verbose     bool
	veryVerbose bool
	quiet       bool
	configFile  string
}

func rootCmd() *cobra.Command {
	fl := &flags{}
	cmd := &cobra.Command{
		Use:   "synaptic",
		Short: "synaptic renders and serves an animated 3D network",
		Long: "synaptic builds a random network of nodes and connections, colors nodes by\n" +
			"their connection density or activation, and renders it as PNG snapshots\n" +
			"or streams it to browser clients over WebSocket.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(fl.veryVerbose, fl.verbose, fl.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&fl.veryVerbose, "vv", false, "log debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only log errors")
	pf.StringVarP(&fl.configFile, "config", "c", "", "config file (.toml, .yaml or .yml); ~ is expanded")

	cmd.AddCommand(
		snapshotCmd(fl),
		serveCmd(fl),
		configCmd(fl),
	)
	return cmd
}

// loadConfig loads the config file given by the flags, if any,
// and applies the scene flags that were set on the command line.
func loadConfig(cmd *cobra.Command, fl *flags, sf *sceneFlags) (config.Config, error) {
	fn, err := homedir.Expand(fl.configFile)
	if err != nil {
		return config.Default(), err
	}
	fl.configFile = fn
	cfg, err := config.Load(fn)
	if err != nil {
		return cfg, err
	}
	if sf != nil {
		if err := sf.apply(cmd, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg.Clamped(), nil
}

// sceneFlags are command line overrides of config values.
type sceneFlags struct {
	nodes       int
	connections int
	speed       float32
	zoom        float32
	seed        int64
	colorSource string
	zoomPolicy  string
}

func (sf *sceneFlags) add(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&sf.nodes, "nodes", "n", 50, "number of nodes")
	f.IntVar(&sf.connections, "connections", 100, "number of connection trials")
	f.Float32Var(&sf.speed, "speed", 1, "rotation and activation speed (0.1 to 5)")
	f.Float32Var(&sf.zoom, "zoom", 50, "zoom level (0 to 100)")
	f.Int64Var(&sf.seed, "seed", 0, "random seed (0 for random)")
	f.StringVar(&sf.colorSource, "color", "Density", "node color source (Density or Activation)")
	f.StringVar(&sf.zoomPolicy, "zoom-policy", "Linear", "zoom formula (Linear or Inverse)")
}

// apply sets the config values of the flags that were changed.
func (sf *sceneFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("nodes") {
		cfg.NodeCount = sf.nodes
	}
	if f.Changed("connections") {
		cfg.ConnectionCount = sf.connections
	}
	if f.Changed("speed") {
		cfg.Speed = sf.speed
	}
	if f.Changed("zoom") {
		cfg.Zoom = sf.zoom
	}
	if f.Changed("seed") {
		cfg.Seed = sf.seed
	}
	if f.Changed("color") {
		if err := cfg.ColorSource.SetString(sf.colorSource); err != nil {
			return err
		}
	}
	if f.Changed("zoom-policy") {
		if err := cfg.ZoomPolicy.SetString(sf.zoomPolicy); err != nil {
			return err
		}
	}
	return nil
}
