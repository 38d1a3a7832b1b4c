// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/synaptic/anim"
	"cogentcore.org/synaptic/render/raster"
	"cogentcore.org/synaptic/scene"
	"github.com/spf13/cobra"
)

func snapshotCmd(fl *flags) *cobra.Command {
	sf := &sceneFlags{}
	var (
		output string
		width  int
		height int
		frames int
		glow   float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the network after a number of frames to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fl, sf)
			if err != nil {
				return err
			}
			cfg.Playing = false
			cfg.AutoCreate = false

			rs := raster.New(width, height)
			rs.Glow = glow
			start := time.Now()
			sc := scene.New(cfg, rs, scene.WithClock(func() time.Time { return start }))
			sc.Handle(scene.ResizeEvent{Width: width, Height: height})
			sc.Mount()
			defer sc.Unmount()
			step := anim.Interval(cfg.FPS)
			for i := 1; i <= frames; i++ {
				sc.Tick(start.Add(time.Duration(i) * step))
			}
			if err := rs.SavePNG(output); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}
			slog.Info("snapshot saved", "file", output, "frames", frames, "graph", sc.Graph.String())
			return nil
		},
	}
	sf.add(cmd)
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "synaptic.png", "output PNG file")
	f.IntVar(&width, "width", 960, "image width in pixels")
	f.IntVar(&height, "height", 640, "image height in pixels")
	f.IntVar(&frames, "frames", 60, "number of animation frames to run before rendering")
	f.Float64Var(&glow, "glow", 0, "radius in pixels of the glow under nodes (0 for none)")
	return cmd
}
