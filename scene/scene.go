// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene ties the network, view, camera, picker and frame
// loops together into a scene that is driven by one goroutine,
// and dispatches a description of each frame to a [Renderer].
package scene

import (
	"log/slog"
	"time"

	"cogentcore.org/synaptic/anim"
	"cogentcore.org/synaptic/base/errors"
	"cogentcore.org/synaptic/base/randx"
	"cogentcore.org/synaptic/camera"
	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/config"
	"cogentcore.org/synaptic/graph"
	"cogentcore.org/synaptic/picker"
	"cogentcore.org/synaptic/view"
)

// Renderer renders the description of a frame.
type Renderer interface {
	Render(d *Description) error
}

// Releaser is implemented by renderers that hold resources
// to be released when the scene is unmounted.
type Releaser interface {
	Release()
}

// RendererFunc is a function that implements [Renderer].
type RendererFunc func(d *Description) error

func (rf RendererFunc) Render(d *Description) error {
	return rf(d)
}

// Option is an option for [New].
type Option func(sc *Scene)

// WithRand sets the random source used to build the network,
// overriding the seed in the config.
func WithRand(rnd randx.Rand) Option {
	return func(sc *Scene) {
		sc.rand = rnd
	}
}

// WithClock sets the function returning the current time,
// used as the start time of the activation signal.
func WithClock(now func() time.Time) Option {
	return func(sc *Scene) {
		sc.now = now
	}
}

// WithOnSelect sets the [Scene.OnSelect] function.
func WithOnSelect(fn func(id graph.NodeID, ok bool)) Option {
	return func(sc *Scene) {
		sc.OnSelect = fn
	}
}

// Scene is the state of the network scene. Except for [Scene.Send],
// its methods must only be called from one goroutine, which is the
// one calling [Scene.Run] once it is running.
type Scene struct {

	// Config is the current clamped configuration.
	Config config.Config

	// Graph is the current network. It is replaced as a whole
	// when the node or connection count changes.
	Graph *graph.Graph

	// View is the zoom, rotation and selection state.
	View *view.State

	// Camera is the camera looking at the network.
	Camera *camera.Camera

	// Mapper resolves the colors of nodes.
	Mapper colors.Mapper

	// Picker applies pointer events to nodes.
	Picker *picker.Picker

	// Loop is the animation frame loop.
	Loop *anim.Loop

	// Creator is the loop that adds a node on each of its frames
	// when auto creation is on.
	Creator *anim.Loop

	// Renderer is where frame descriptions are dispatched.
	Renderer Renderer

	// OnSelect, if set, is called when the selected node changes,
	// with ok false when there is no selected node.
	OnSelect func(id graph.NodeID, ok bool)

	// WheelStep is the zoom change per unit of wheel delta.
	WheelStep float32 `default:"5"`

	// ids issues node ids across all rebuilds of the network
	ids graph.IDAllocator

	rand    randx.Rand
	now     func() time.Time
	start   time.Time
	events  chan Event
	done    chan struct{}
	mounted bool

	// selected is the last selection reported to OnSelect
	selected graph.NodeID
}

// New returns a new unmounted scene with the given config,
// rendering to the given renderer, which may be nil.
func New(cfg config.Config, r Renderer, opts ...Option) *Scene {
	cfg.Clamp()
	sc := &Scene{
		Config:    cfg,
		View:      view.New(cfg.Zoom),
		Camera:    camera.New(cfg.ZoomPolicy, cfg.Zoom),
		Mapper:    colors.Mapper{Source: cfg.ColorSource},
		Picker:    picker.New(),
		Renderer:  r,
		WheelStep: 5,
		now:       time.Now,
		events:    make(chan Event, 256),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(sc)
	}
	if sc.rand == nil {
		sc.rand = randx.New(cfg.Seed)
	}
	sc.Graph = graph.New(&sc.ids, sc.rand)
	sc.Loop = anim.NewLoop("frames", cfg.FPS, sc.Tick)
	sc.Creator = anim.NewLoop("creator", cfg.CreationRate, sc.createNode)
	return sc
}

// IsMounted returns whether the scene is mounted.
func (sc *Scene) IsMounted() bool {
	return sc.mounted
}

// Mount builds the initial network, starts the animation loop if
// playing and the creator loop if auto creation is on, and renders
// the first frame.
func (sc *Scene) Mount() {
	if sc.mounted {
		return
	}
	sc.mounted = true
	sc.start = sc.now()
	sc.Graph = graph.Build(&sc.ids, sc.rand, sc.Config.NodeCount, sc.Config.ConnectionCount)
	sc.Camera.SetZoom(sc.View.Zoom)
	sc.updateLoops()
	slog.Info("scene mounted", "graph", sc.Graph.String(), "playing", sc.Config.Playing, "autoCreate", sc.Config.AutoCreate)
	sc.render()
}

// Unmount stops both loops, tears down the network, clears the
// selection and releases the resources of the renderer.
// It is safe to call more than once.
func (sc *Scene) Unmount() {
	if !sc.mounted {
		return
	}
	sc.mounted = false
	sc.Loop.Stop()
	sc.Creator.Stop()
	sc.Graph.Teardown()
	sc.View.ResetSelection()
	sc.updateSelected()
	if rl, ok := sc.Renderer.(Releaser); ok {
		rl.Release()
	}
	slog.Info("scene unmounted", "frames", sc.Loop.Frames)
}

// Apply applies the given config, which is clamped first.
// A change in node or connection count replaces the network with a
// newly built one; all other values take effect immediately.
func (sc *Scene) Apply(cfg config.Config) {
	cfg.Clamp()
	prev := sc.Config
	sc.Config = cfg
	if cfg.Seed != prev.Seed && cfg.Seed != 0 {
		sc.rand.Seed(cfg.Seed)
	}
	if sc.mounted && prev.StructureChanged(&cfg) {
		sc.rebuild()
	}
	sc.View.SetZoom(cfg.Zoom)
	sc.Mapper.Source = cfg.ColorSource
	sc.Camera.Policy = cfg.ZoomPolicy
	sc.Camera.SetZoom(sc.View.Zoom)
	sc.Loop.SetRate(cfg.FPS)
	sc.Creator.SetRate(cfg.CreationRate)
	if sc.mounted {
		sc.updateLoops()
	}
	slog.Debug("config applied", "config", cfg.String())
}

// rebuild replaces the network with a fully built new one
// in a single assignment, and then tears down the old one.
func (sc *Scene) rebuild() {
	ng := graph.Build(&sc.ids, sc.rand, sc.Config.NodeCount, sc.Config.ConnectionCount)
	old := sc.Graph
	sc.Graph = ng
	old.Teardown()
	sc.View.ResetSelection()
	sc.updateSelected()
	slog.Info("network rebuilt", "graph", ng.String())
}

// updateLoops starts or stops the loops according to the config.
func (sc *Scene) updateLoops() {
	if sc.Config.Playing {
		sc.Loop.Start()
	} else {
		sc.Loop.Stop()
	}
	if sc.Config.AutoCreate {
		sc.Creator.Start()
	} else {
		sc.Creator.Stop()
	}
}

// SetZoom sets the zoom level of the view and config, clamped to [0, 100].
func (sc *Scene) SetZoom(zoom float32) {
	sc.View.SetZoom(zoom)
	sc.Config.Zoom = sc.View.Zoom
	sc.Camera.SetZoom(sc.View.Zoom)
}

// Tick runs one animation frame: it advances the rotation, recolors
// every node that is neither hovered nor clicked from the active
// color source, places the camera for the current zoom, and renders.
func (sc *Scene) Tick(now time.Time) {
	anim.Rotate(sc.View, sc.Config.Speed)
	elapsed := now.Sub(sc.start)
	for i, nd := range sc.Graph.Nodes() {
		if nd.ID == sc.View.Hovered || sc.View.IsClicked(nd.ID) {
			continue
		}
		act := colors.Activation(elapsed, sc.Config.Speed, i)
		nd.Color = sc.Mapper.NodeColor(sc.Graph.ConnectionCount(nd.ID), act)
		nd.Highlight = graph.Normal
	}
	sc.Camera.SetZoom(sc.View.Zoom)
	sc.render()
}

// createNode is the frame handler of the creator loop.
// It applies all pending events first, so that a rebuild
// requested in the same turn happens before the node is added.
// When the animation loop is paused, the new node is rendered
// right away.
func (sc *Scene) createNode(now time.Time) {
	sc.drain()
	if !sc.Creator.IsRunning() {
		return
	}
	nd := sc.Graph.AddNode()
	slog.Debug("node created", "id", nd.ID, "nodes", sc.Graph.Len())
	if !sc.Loop.IsRunning() {
		sc.render()
	}
}

// Selected returns the hovered node if any, otherwise the
// last clicked node if it is still clicked.
func (sc *Scene) Selected() (graph.NodeID, bool) {
	return sc.View.Selected()
}

// updateSelected calls OnSelect if the selection has changed.
func (sc *Scene) updateSelected() {
	id, ok := sc.View.Selected()
	if id == sc.selected {
		return
	}
	sc.selected = id
	slog.Debug("selection changed", "id", id)
	if sc.OnSelect != nil {
		sc.OnSelect(id, ok)
	}
}

// render dispatches the description of the current frame.
// Renderer errors are logged and do not stop the scene.
func (sc *Scene) render() {
	if sc.Renderer == nil {
		return
	}
	errors.Log(sc.Renderer.Render(sc.Describe()))
}

// Renderers is a [Renderer] that renders each frame
// to all of its renderers in turn.
type Renderers []Renderer

func (rs Renderers) Render(d *Description) error {
	var errs []error
	for _, r := range rs {
		if err := r.Render(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Release releases all of the renderers that are [Releaser]s.
func (rs Renderers) Release() {
	for _, r := range rs {
		if rl, ok := r.(Releaser); ok {
			rl.Release()
		}
	}
}
