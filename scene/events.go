// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/synaptic/config"
)

// Event is an inbound event handled on the scene goroutine:
// one of [ConfigEvent], [ConfigPatchEvent], [PointerEvent],
// [ResizeEvent] or [WheelEvent].
type Event interface {
	isEvent()
}

// ConfigEvent applies a new config.
type ConfigEvent struct {
	Config config.Config
}

// ConfigPatchEvent changes only the config fields present in a JSON
// object, decoded over the current config of the scene. Fields not in
// the patch keep their current values, including a zoom changed by
// the wheel, so a patch only rebuilds the network when it changes
// the node or connection count.
type ConfigPatchEvent struct {
	Patch json.RawMessage
}

// PointerKinds are the kinds of pointer events.
type PointerKinds int32

const (
	// PointerMove is a pointer move, which sets the hovered node.
	PointerMove PointerKinds = iota

	// PointerClick is a click, which toggles the clicked state of a node.
	PointerClick

	// PointerKindsN is the number of pointer kinds.
	PointerKindsN
)

var pointerKindNames = [PointerKindsN]string{"Move", "Click"}

// String returns the name of the pointer kind.
func (pk PointerKinds) String() string {
	if pk < 0 || pk >= PointerKindsN {
		return fmt.Sprintf("PointerKinds(%d)", int32(pk))
	}
	return pointerKindNames[pk]
}

// SetString sets the pointer kind from its name (case insensitive).
func (pk *PointerKinds) SetString(s string) error {
	for i, nm := range pointerKindNames {
		if strings.EqualFold(nm, s) {
			*pk = PointerKinds(i)
			return nil
		}
	}
	return fmt.Errorf("scene.PointerKinds: %q is not a valid pointer kind", s)
}

// PointerEvent is a pointer move or click at normalized device
// coordinates, with X and Y in [-1, 1] and Y up.
type PointerEvent struct {
	Kind PointerKinds
	X, Y float32
}

// ResizeEvent is a change in the size of the viewport, in pixels.
type ResizeEvent struct {
	Width, Height int
}

// WheelEvent is a scroll of the wheel: positive deltas zoom out.
type WheelEvent struct {
	Delta float32
}

func (ConfigEvent) isEvent()      {}
func (ConfigPatchEvent) isEvent() {}
func (PointerEvent) isEvent()     {}
func (ResizeEvent) isEvent()      {}
func (WheelEvent) isEvent()       {}

// Send queues the given event for the scene goroutine. It may be
// called from any goroutine. It returns false if the scene has
// stopped running.
func (sc *Scene) Send(ev Event) bool {
	select {
	case <-sc.done:
		return false
	default:
	}
	select {
	case sc.events <- ev:
		return true
	case <-sc.done:
		return false
	}
}

// Run mounts the scene if needed and runs it until the context is
// done: it handles sent events, animation frames and creator frames,
// one at a time. The scene is unmounted when Run returns.
// Run must be called at most once.
func (sc *Scene) Run(ctx context.Context) error {
	sc.Mount()
	defer close(sc.done)
	defer sc.Unmount()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-sc.events:
			sc.Handle(ev)
		case now := <-sc.Loop.C():
			sc.Loop.Tick(now)
		case now := <-sc.Creator.C():
			sc.Creator.Tick(now)
		}
	}
}

// drain handles all pending events.
func (sc *Scene) drain() {
	for {
		select {
		case ev := <-sc.events:
			sc.Handle(ev)
		default:
			return
		}
	}
}

// Handle handles the given event. When the animation loop is not
// running, the resulting state is rendered right away.
func (sc *Scene) Handle(ev Event) {
	switch ev := ev.(type) {
	case ConfigEvent:
		sc.Apply(ev.Config)
	case ConfigPatchEvent:
		cfg := sc.Config
		if len(ev.Patch) > 0 {
			if err := json.Unmarshal(ev.Patch, &cfg); err != nil {
				slog.Warn("scene: invalid config patch", "err", err)
				return
			}
		}
		sc.Apply(cfg)
	case PointerEvent:
		sc.handlePointer(ev)
	case ResizeEvent:
		sc.Camera.SetAspect(ev.Width, ev.Height)
	case WheelEvent:
		sc.SetZoom(sc.View.Zoom - ev.Delta*sc.WheelStep)
	default:
		slog.Warn("scene: unknown event", "event", fmt.Sprintf("%T", ev))
		return
	}
	if sc.mounted && !sc.Loop.IsRunning() {
		sc.render()
	}
}

func (sc *Scene) handlePointer(ev PointerEvent) {
	if !sc.mounted {
		return
	}
	ray := sc.Camera.Ray(ev.X, ev.Y)
	switch ev.Kind {
	case PointerMove:
		sc.Picker.Move(sc.Graph, sc.View, ray)
	case PointerClick:
		sc.Picker.Click(sc.Graph, sc.View, ray)
	}
	sc.updateSelected()
}
