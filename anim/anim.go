// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides the frame loop that drives the scene,
// and the per-frame rotation step.
package anim

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cogentcore.org/synaptic/view"
)

// States are the states of a [Loop].
type States int32

const (
	// Stopped is a loop that does not run frames.
	Stopped States = iota

	// Running is a loop that runs a frame for each pacer tick.
	Running

	// StatesN is the number of states.
	StatesN
)

var stateNames = [StatesN]string{"Stopped", "Running"}

// String returns the name of the state.
func (st States) String() string {
	if st < 0 || st >= StatesN {
		return fmt.Sprintf("States(%d)", int32(st))
	}
	return stateNames[st]
}

// SetString sets the state from its name (case insensitive).
func (st *States) SetString(s string) error {
	for i, nm := range stateNames {
		if strings.EqualFold(nm, s) {
			*st = States(i)
			return nil
		}
	}
	return fmt.Errorf("anim.States: %q is not a valid state", s)
}

// RotationRate is the rotation per frame in radians at speed 1.
const RotationRate = 0.005

// Rotate advances the rotation of the view by one frame at the given
// speed. The step is per frame, so the rotation rate in time depends
// on the frame rate.
func Rotate(vs *view.State, speed float32) {
	vs.Rotate(RotationRate * speed)
}

// Loop is a frame loop with an explicit Stopped or Running state.
// All of its methods must be called from the goroutine that receives
// from [Loop.C] and calls [Loop.Tick].
type Loop struct {

	// Name is used in log messages.
	Name string

	// Rate is the frame rate in frames per second.
	Rate float32

	// OnFrame is called for each frame while running.
	OnFrame func(now time.Time)

	// NewPacer makes the pacer when the loop starts.
	// It defaults to [NewTickerPacer].
	NewPacer func(rate float32) Pacer

	// Frames is the number of frames run since the loop was made.
	Frames uint64

	state States
	pacer Pacer
}

// NewLoop returns a new stopped loop at the given rate
// that calls the given function for each frame.
func NewLoop(name string, rate float32, onFrame func(now time.Time)) *Loop {
	return &Loop{Name: name, Rate: rate, OnFrame: onFrame}
}

// State returns the current state of the loop.
func (lp *Loop) State() States {
	return lp.state
}

// IsRunning returns whether the loop is running.
func (lp *Loop) IsRunning() bool {
	return lp.state == Running
}

// Start starts the loop if it is stopped, returning whether it did.
// Starting a running loop does nothing, so there is never more than
// one pacer per loop.
func (lp *Loop) Start() bool {
	if lp.state == Running {
		return false
	}
	np := lp.NewPacer
	if np == nil {
		np = NewTickerPacer
	}
	lp.pacer = np(lp.Rate)
	lp.state = Running
	slog.Debug("loop started", "loop", lp.Name, "rate", lp.Rate)
	return true
}

// Stop stops the loop. No frame runs after Stop returns,
// even if one is pending on the pacer channel.
func (lp *Loop) Stop() {
	if lp.pacer != nil {
		lp.pacer.Stop()
		lp.pacer = nil
	}
	if lp.state == Running {
		slog.Debug("loop stopped", "loop", lp.Name, "frames", lp.Frames)
	}
	lp.state = Stopped
}

// SetRate sets the frame rate, restarting the pacer if running.
func (lp *Loop) SetRate(rate float32) {
	if rate == lp.Rate {
		return
	}
	lp.Rate = rate
	if lp.state == Running {
		lp.Stop()
		lp.Start()
	}
}

// C returns the channel on which frames are delivered.
// It is nil when the loop is stopped, so that receiving from it
// in a select never proceeds.
func (lp *Loop) C() <-chan time.Time {
	if lp.pacer == nil {
		return nil
	}
	return lp.pacer.C()
}

// Tick runs one frame at the given time if the loop is running,
// returning whether it did.
func (lp *Loop) Tick(now time.Time) bool {
	if lp.state != Running {
		return false
	}
	lp.Frames++
	if lp.OnFrame != nil {
		lp.OnFrame(now)
	}
	return true
}
