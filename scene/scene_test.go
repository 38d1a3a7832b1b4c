// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"errors"
	"testing"
	"time"

	"cogentcore.org/synaptic/anim"
	"cogentcore.org/synaptic/base/randx"
	"cogentcore.org/synaptic/colors"
	"cogentcore.org/synaptic/config"
	"cogentcore.org/synaptic/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a renderer that keeps every description.
type recorder struct {
	frames   []*Description
	released int
	err      error
}

func (rc *recorder) Render(d *Description) error {
	rc.frames = append(rc.frames, d)
	return rc.err
}

func (rc *recorder) Release() {
	rc.released++
}

func (rc *recorder) last() *Description {
	return rc.frames[len(rc.frames)-1]
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.NodeCount = 20
	cfg.ConnectionCount = 40
	return cfg
}

// newTestScene returns a scene with manual pacers for both loops.
func newTestScene(t *testing.T, cfg config.Config) (*Scene, *recorder, *anim.Manual, *anim.Manual) {
	rc := &recorder{}
	sc := New(cfg, rc, WithRand(randx.NewSysRand(3)), WithClock(func() time.Time { return epoch }))
	frames, creator := anim.NewManual(), anim.NewManual()
	sc.Loop.NewPacer = func(float32) anim.Pacer { return frames }
	sc.Creator.NewPacer = func(float32) anim.Pacer { return creator }
	return sc, rc, frames, creator
}

func TestMount(t *testing.T) {
	sc, rc, _, _ := newTestScene(t, testConfig())
	assert.False(t, sc.IsMounted())
	assert.Equal(t, 0, sc.Graph.Len())

	sc.Mount()
	assert.True(t, sc.IsMounted())
	assert.Equal(t, 20, sc.Graph.Len())
	assert.LessOrEqual(t, sc.Graph.NumConnections(), 40)
	assert.True(t, sc.Loop.IsRunning())
	assert.False(t, sc.Creator.IsRunning())
	require.Len(t, rc.frames, 1)
	assert.Len(t, rc.last().Nodes, 20)

	g := sc.Graph
	sc.Mount()
	assert.Same(t, g, sc.Graph)
}

func TestTick(t *testing.T) {
	cfg := testConfig()
	cfg.Speed = 2
	sc, rc, _, _ := newTestScene(t, cfg)
	sc.Mount()
	sc.Tick(epoch.Add(time.Second))

	assert.InDelta(t, 2*anim.RotationRate, sc.View.RotationX, 1e-6)
	assert.InDelta(t, 2*anim.RotationRate, sc.View.RotationY, 1e-6)
	for _, nd := range sc.Graph.Nodes() {
		assert.Equal(t, colors.ForConnections(sc.Graph.ConnectionCount(nd.ID)), nd.Color)
	}
	d := rc.last()
	assert.Len(t, d.Lines, sc.Graph.NumConnections())
	assert.Equal(t, colors.Background, d.Background)
	assert.Equal(t, sc.View.RotationX, d.RotationX)
	assert.InDelta(t, sc.Camera.DistanceForZoom(50), d.Camera.Pos.Z, 1e-6)
	for i, np := range d.Nodes {
		nd := sc.Graph.Nodes()[i]
		assert.Equal(t, nd.ID, np.ID)
		assert.Equal(t, sc.View.WorldPos(nd.Pos), np.Pos)
	}
}

func TestTickActivation(t *testing.T) {
	cfg := testConfig()
	cfg.ColorSource = colors.SourceActivation
	sc, _, _, _ := newTestScene(t, cfg)
	sc.Mount()
	now := epoch.Add(1500 * time.Millisecond)
	sc.Tick(now)
	for i, nd := range sc.Graph.Nodes() {
		assert.Equal(t, colors.ForActivation(colors.Activation(1500*time.Millisecond, 1, i)), nd.Color)
	}
}

func TestTickSkipsHighlighted(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	sc.Mount()
	nodes := sc.Graph.Nodes()
	sc.View.Hovered = nodes[0].ID
	nodes[0].Color = colors.Highlight
	sc.View.ToggleClicked(nodes[1].ID)
	nodes[1].Color = colors.Highlight

	sc.Tick(epoch)
	assert.Equal(t, colors.Highlight, nodes[0].Color)
	assert.Equal(t, colors.Highlight, nodes[1].Color)
}

func TestApplyRebuild(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	sc.Mount()
	old := sc.Graph
	lastID := sc.Graph.Nodes()[19].ID

	cfg := sc.Config
	cfg.NodeCount = 8
	sc.Apply(cfg)
	assert.NotSame(t, old, sc.Graph)
	assert.Equal(t, 0, old.Len())
	assert.Equal(t, 8, sc.Graph.Len())
	assert.Greater(t, sc.Graph.Nodes()[0].ID, lastID)

	g := sc.Graph
	cfg.Zoom = 80
	cfg.Speed = 3
	sc.Apply(cfg)
	assert.Same(t, g, sc.Graph)
	assert.Equal(t, float32(80), sc.View.Zoom)
	assert.InDelta(t, sc.Camera.DistanceForZoom(80), sc.Camera.Distance(), 1e-5)
}

func TestApplyClamps(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	sc.Mount()
	cfg := sc.Config
	cfg.NodeCount = -4
	cfg.Zoom = 300
	sc.Apply(cfg)
	assert.Equal(t, 0, sc.Graph.Len())
	assert.Equal(t, 0, sc.Graph.NumConnections())
	assert.Equal(t, float32(100), sc.View.Zoom)
}

func TestApplyPlaying(t *testing.T) {
	sc, _, frames, _ := newTestScene(t, testConfig())
	sc.Mount()
	cfg := sc.Config
	cfg.Playing = false
	sc.Apply(cfg)
	assert.False(t, sc.Loop.IsRunning())
	assert.Nil(t, sc.Loop.C())
	assert.False(t, frames.Fire(epoch))

	cfg.Playing = true
	cfg.AutoCreate = true
	sc.Apply(cfg)
	assert.True(t, sc.Loop.IsRunning())
	assert.True(t, sc.Creator.IsRunning())
}

func TestApplyBeforeMount(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	cfg := sc.Config
	cfg.NodeCount = 5
	sc.Apply(cfg)
	assert.Equal(t, 0, sc.Graph.Len())
	assert.False(t, sc.Loop.IsRunning())
	sc.Mount()
	assert.Equal(t, 5, sc.Graph.Len())
}

func TestCreateNodeAfterRebuild(t *testing.T) {
	cfg := testConfig()
	cfg.AutoCreate = true
	sc, _, _, _ := newTestScene(t, cfg)
	sc.Mount()
	sc.Creator.Tick(epoch)
	assert.Equal(t, 21, sc.Graph.Len())
	assert.Equal(t, 0, sc.Graph.ConnectionCount(sc.Graph.Nodes()[20].ID))

	// a pending rebuild is applied before the node is added
	cfg.NodeCount = 5
	require.True(t, sc.Send(ConfigEvent{Config: cfg}))
	sc.Creator.Tick(epoch)
	assert.Equal(t, 6, sc.Graph.Len())

	// a pending stop of auto creation prevents the add
	cfg.AutoCreate = false
	sc.Send(ConfigEvent{Config: cfg})
	sc.createNode(epoch)
	assert.Equal(t, 6, sc.Graph.Len())
}

func TestPointerSelect(t *testing.T) {
	cfg := testConfig()
	cfg.NodeCount = 1
	cfg.ConnectionCount = 0
	var selected []graph.NodeID
	sc, _, _, _ := newTestScene(t, cfg)
	sc.OnSelect = func(id graph.NodeID, ok bool) {
		selected = append(selected, id)
	}
	sc.Mount()
	nd := sc.Graph.Nodes()[0]
	ndc := sc.Camera.Project(sc.View.WorldPos(nd.Pos))

	sc.Handle(PointerEvent{Kind: PointerMove, X: ndc.X, Y: ndc.Y})
	assert.Equal(t, nd.ID, sc.View.Hovered)
	assert.Equal(t, colors.Highlight, nd.Color)

	sc.Handle(PointerEvent{Kind: PointerClick, X: ndc.X, Y: ndc.Y})
	assert.True(t, sc.View.IsClicked(nd.ID))

	sc.Handle(PointerEvent{Kind: PointerMove, X: 0.99, Y: 0.99})
	id, ok := sc.Selected()
	assert.True(t, ok)
	assert.Equal(t, nd.ID, id)

	sc.Handle(PointerEvent{Kind: PointerClick, X: ndc.X, Y: ndc.Y})
	sc.Handle(PointerEvent{Kind: PointerMove, X: 0.99, Y: 0.99})
	_, ok = sc.Selected()
	assert.False(t, ok)
	assert.Equal(t, []graph.NodeID{nd.ID, graph.NoNode}, selected)
}

func TestResizeWheel(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	sc.Mount()
	sc.Handle(ResizeEvent{Width: 1000, Height: 500})
	assert.Equal(t, float32(2), sc.Camera.Aspect)

	sc.Handle(WheelEvent{Delta: 2})
	assert.Equal(t, float32(40), sc.View.Zoom)
	assert.Equal(t, float32(40), sc.Config.Zoom)
	sc.Handle(WheelEvent{Delta: -100})
	assert.Equal(t, float32(100), sc.View.Zoom)
	assert.InDelta(t, sc.Camera.DistanceForZoom(100), sc.Camera.Distance(), 1e-5)
}

func TestRenderWhilePaused(t *testing.T) {
	cfg := testConfig()
	cfg.Playing = false
	sc, rc, _, _ := newTestScene(t, cfg)
	sc.Mount()
	n := len(rc.frames)
	sc.Handle(WheelEvent{Delta: 1})
	assert.Len(t, rc.frames, n+1)
}

func TestCreateNodeWhilePaused(t *testing.T) {
	cfg := testConfig()
	cfg.Playing = false
	cfg.AutoCreate = true
	sc, rc, _, _ := newTestScene(t, cfg)
	sc.Mount()
	n := len(rc.frames)
	sc.Creator.Tick(epoch)
	require.Len(t, rc.frames, n+1)
	assert.Len(t, rc.last().Nodes, 21)
}

func TestConfigPatch(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	sc.Mount()
	sc.Handle(WheelEvent{Delta: -6})
	require.Equal(t, float32(80), sc.Config.Zoom)
	g := sc.Graph
	id := g.Nodes()[0].ID
	sc.View.ToggleClicked(id)

	sc.Handle(ConfigPatchEvent{Patch: []byte(`{"speed":2,"colorSource":"Activation"}`)})
	assert.Equal(t, float32(2), sc.Config.Speed)
	assert.Equal(t, colors.SourceActivation, sc.Config.ColorSource)
	assert.Equal(t, float32(80), sc.View.Zoom)
	assert.Same(t, g, sc.Graph)
	assert.True(t, sc.View.IsClicked(id))

	// an invalid patch leaves the config unchanged
	prev := sc.Config
	sc.Handle(ConfigPatchEvent{Patch: []byte(`{"colorSource":"Rainbow"}`)})
	assert.Equal(t, prev, sc.Config)

	sc.Handle(ConfigPatchEvent{Patch: []byte(`{"nodeCount":5}`)})
	assert.Equal(t, 5, sc.Graph.Len())
	assert.NotSame(t, g, sc.Graph)
	assert.Equal(t, float32(80), sc.View.Zoom)
}

func TestDescribeNeighbors(t *testing.T) {
	sc, _, _, _ := newTestScene(t, testConfig())
	sc.Mount()
	assert.Empty(t, sc.Describe().Neighbors)

	var nd *graph.Node
	for _, n := range sc.Graph.Nodes() {
		if sc.Graph.ConnectionCount(n.ID) > 0 {
			nd = n
			break
		}
	}
	require.NotNil(t, nd)
	sc.View.Hovered = nd.ID
	d := sc.Describe()
	assert.Equal(t, nd.ID, d.Selected)
	assert.NotEmpty(t, d.Neighbors)
	assert.Equal(t, sc.Graph.Neighbors(nd.ID), d.Neighbors)
}

func TestRenderErrorKeepsRunning(t *testing.T) {
	sc, rc, _, _ := newTestScene(t, testConfig())
	rc.err = errors.New("device lost")
	sc.Mount()
	sc.Tick(epoch)
	sc.Tick(epoch)
	assert.Len(t, rc.frames, 3)
}

func TestUnmount(t *testing.T) {
	cfg := testConfig()
	cfg.AutoCreate = true
	sc, rc, frames, creator := newTestScene(t, cfg)
	sc.Mount()
	g := sc.Graph
	sc.Unmount()
	assert.False(t, sc.IsMounted())
	assert.False(t, sc.Loop.IsRunning())
	assert.False(t, sc.Creator.IsRunning())
	assert.False(t, frames.Fire(epoch))
	assert.False(t, creator.Fire(epoch))
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 1, rc.released)
	sc.Unmount()
	assert.Equal(t, 1, rc.released)
}

func TestRun(t *testing.T) {
	descs := make(chan *Description, 16)
	sc := New(testConfig(), RendererFunc(func(d *Description) error {
		descs <- d
		return nil
	}), WithRand(randx.NewSysRand(5)))
	frames := anim.NewManual()
	sc.Loop.NewPacer = func(float32) anim.Pacer { return frames }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- sc.Run(ctx) }()

	next := func() *Description {
		select {
		case d := <-descs:
			return d
		case <-time.After(5 * time.Second):
			t.Fatal("no frame rendered")
			return nil
		}
	}
	first := next()
	assert.Len(t, first.Nodes, 20)

	cfg := testConfig()
	cfg.NodeCount = 4
	require.True(t, sc.Send(ConfigEvent{Config: cfg}))

	// the event and a frame may be handled in either order
	var d *Description
	for range 10 {
		require.True(t, frames.Fire(time.Now()))
		d = next()
		if len(d.Nodes) == 4 {
			break
		}
	}
	assert.Len(t, d.Nodes, 4)
	assert.Positive(t, d.Frame)

	cancel()
	assert.NoError(t, <-done)
	assert.False(t, sc.Send(WheelEvent{Delta: 1}))
}

func TestRenderers(t *testing.T) {
	a, b := &recorder{}, &recorder{err: errors.New("b failed")}
	rs := Renderers{a, b}
	assert.Error(t, rs.Render(&Description{}))
	assert.Len(t, a.frames, 1)
	assert.Len(t, b.frames, 1)
	rs.Release()
	assert.Equal(t, 1, a.released)
	assert.Equal(t, 1, b.released)
}
