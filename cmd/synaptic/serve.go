// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"cogentcore.org/synaptic/base/errors"
	"cogentcore.org/synaptic/config"
	"cogentcore.org/synaptic/render/raster"
	"cogentcore.org/synaptic/render/wsock"
	"cogentcore.org/synaptic/scene"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd(fl *flags) *cobra.Command {
	sf := &sceneFlags{}
	var (
		addr   string
		watch  bool
		png    bool
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scene and stream its frames to WebSocket clients",
		Long: "serve runs the scene and streams each frame as JSON to clients connected\n" +
			"to /ws, which may send pointer, resize, wheel and config messages back.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, fl, sf)
			if err != nil {
				return err
			}
			var watcher *config.Watcher
			if watch && fl.configFile != "" {
				watcher, err = config.NewWatcher(fl.configFile, cfg)
				if err != nil {
					return err
				}
			}

			hub := wsock.NewHub(nil)
			renderers := scene.Renderers{hub}
			mux := http.NewServeMux()
			mux.Handle("/ws", hub)
			if png {
				rs := raster.New(width, height)
				renderers = append(renderers, rs)
				mux.HandleFunc("/frame.png", func(w http.ResponseWriter, r *http.Request) {
					w.Header().Set("Content-Type", "image/png")
					errors.Log(rs.EncodePNG(w))
				})
			}
			sc := scene.New(cfg, renderers)
			hub.Sink = sc.Send

			ctx, stop := signal.NotifyContext(runContext(cmd), os.Interrupt)
			defer stop()
			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return sc.Run(ctx)
			})
			g.Go(func() error {
				return wsock.Serve(ctx, addr, mux)
			})
			if watcher != nil {
				g.Go(func() error {
					return watcher.Run(ctx, func(cfg config.Config) {
						sc.Send(scene.ConfigEvent{Config: cfg})
					})
				})
			}
			return g.Wait()
		},
	}
	sf.add(cmd)
	f := cmd.Flags()
	f.StringVarP(&addr, "addr", "a", "localhost:8080", "address to listen on")
	f.BoolVarP(&watch, "watch", "w", true, "reload the config file when it changes")
	f.BoolVar(&png, "png", false, "also render frames to an image served at /frame.png")
	f.IntVar(&width, "width", 960, "width of /frame.png in pixels")
	f.IntVar(&height, "height", 640, "height of /frame.png in pixels")
	return cmd
}

// runContext returns the context of the command, or a background context.
func runContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
