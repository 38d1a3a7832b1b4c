// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"time"
)

// Pacer delivers frame times on a channel.
type Pacer interface {

	// C returns the channel on which frame times are delivered.
	C() <-chan time.Time

	// Stop stops the delivery of frames. No frames are delivered
	// after Stop returns, but a frame already delivered may remain
	// buffered on the channel.
	Stop()
}

// Interval returns the duration between frames for the given rate
// in frames per second. Rates <= 0 are treated as 1.
func Interval(rate float32) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	return time.Duration(float64(time.Second) / float64(rate))
}

// TickerPacer is a [Pacer] driven by a [time.Ticker].
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer returns a new [TickerPacer] at the given rate
// in frames per second.
func NewTickerPacer(rate float32) Pacer {
	return &TickerPacer{ticker: time.NewTicker(Interval(rate))}
}

func (tp *TickerPacer) C() <-chan time.Time {
	return tp.ticker.C
}

func (tp *TickerPacer) Stop() {
	tp.ticker.Stop()
}

// Manual is a [Pacer] whose frames are fired explicitly,
// for tests and for rendering a fixed number of frames.
type Manual struct {
	c       chan time.Time
	stopped bool
}

// NewManual returns a new [Manual] pacer that can buffer one frame.
func NewManual() *Manual {
	return &Manual{c: make(chan time.Time, 1)}
}

func (mp *Manual) C() <-chan time.Time {
	return mp.c
}

// Stop stops the pacer; subsequent [Manual.Fire] calls do nothing.
func (mp *Manual) Stop() {
	mp.stopped = true
}

// Fire delivers a frame at the given time if the pacer is not stopped
// and no frame is already pending. It returns whether it did so.
func (mp *Manual) Fire(now time.Time) bool {
	if mp.stopped {
		return false
	}
	select {
	case mp.c <- now:
		return true
	default:
		return false
	}
}
