// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides tick-driven value transitions used to fade
// tooltips in and out. A transition starts from a value, waits for
// its delay, then ramps linearly to its target value over its duration,
// and reports completion once. Transitions can be canceled, which
// stops them where they are without reporting completion.
package anim

import (
	"time"

	"cogentcore.org/tooltip/base/ordmap"
	"cogentcore.org/tooltip/math32"
)

// Handle identifies a started transition. The zero Handle never refers
// to a transition.
type Handle uint64

// Spec specifies a transition.
type Spec struct {

	// From is the value at the start of the transition,
	// held for the duration of the delay.
	From float32

	// To is the target value.
	To float32

	// Delay is how long to wait before the value starts changing.
	Delay time.Duration

	// Duration is how long the value takes to go from From to To.
	Duration time.Duration

	// Set is called with the current value every time it is updated,
	// including once with From when the transition starts.
	Set func(v float32)

	// Done is called once the value has reached To.
	// It is not called if the transition is canceled.
	Done func(h Handle)
}

// Animation is the running state of a transition.
type Animation struct {
	Spec

	// Handle is the handle of the animation.
	Handle Handle

	// Elapsed is the amount of time that has passed since the start,
	// including the delay.
	Elapsed time.Duration

	// Value is the current value.
	Value float32

	// Finished is set once the value has reached Spec.To; the animation
	// is then removed at the end of the current [Engine.Advance].
	Finished bool
}

// Progress returns the fraction of the ramp that has elapsed, in [0, 1].
// It is 0 during the delay.
func (a *Animation) Progress() float32 {
	t := a.Elapsed - a.Delay
	if t <= 0 {
		if a.Duration <= 0 && a.Elapsed >= a.Delay {
			return 1
		}
		return 0
	}
	if a.Duration <= 0 || t >= a.Duration {
		return 1
	}
	return float32(t) / float32(a.Duration)
}

// step advances the animation by delta and updates its value.
func (a *Animation) step(delta time.Duration) {
	a.Elapsed += delta
	p := a.Progress()
	v := math32.Lerp(a.From, a.To, p)
	if v != a.Value {
		a.Value = v
		if a.Set != nil {
			a.Set(v)
		}
	}
	if p >= 1 {
		a.Finished = true
	}
}

// Engine runs transitions. It is advanced once per frame by the pass
// loop with the time since the last frame, and is not safe for
// concurrent use.
type Engine struct {
	anims      ordmap.Map[Handle, *Animation]
	lastHandle Handle
}

// NewEngine returns a new engine with no running transitions.
func NewEngine() *Engine {
	return &Engine{}
}

// Start starts a new transition with the given spec, calling
// Spec.Set with Spec.From immediately, and returns its handle.
// The value first changes on the next [Engine.Advance].
func (en *Engine) Start(spec Spec) Handle {
	en.lastHandle++
	a := &Animation{Spec: spec, Handle: en.lastHandle, Value: spec.From}
	en.anims.Add(a.Handle, a)
	if a.Set != nil {
		a.Set(a.Value)
	}
	return a.Handle
}

// Cancel stops the given transition where it is, without calling
// Spec.Done. It returns false if the transition was not running.
func (en *Engine) Cancel(h Handle) bool {
	return en.anims.DeleteKey(h)
}

// Running returns whether the given transition is still running.
func (en *Engine) Running(h Handle) bool {
	return en.anims.Has(h)
}

// Animation returns the running state of the given transition.
func (en *Engine) Animation(h Handle) (*Animation, bool) {
	return en.anims.ValueByKeyTry(h)
}

// Len returns the number of running transitions.
func (en *Engine) Len() int {
	return en.anims.Len()
}

// Advance advances all running transitions by delta, in the order they
// were started. Completed transitions are removed, and their Spec.Done
// functions are called after all transitions have been stepped, so Done
// functions may freely start and cancel transitions.
func (en *Engine) Advance(delta time.Duration) {
	var done []*Animation
	for _, a := range en.anims.Values() {
		if !en.anims.Has(a.Handle) {
			continue // canceled by an earlier Set
		}
		a.step(delta)
		if a.Finished {
			done = append(done, a)
		}
	}
	for _, a := range done {
		en.anims.DeleteKey(a.Handle)
	}
	for _, a := range done {
		if a.Spec.Done != nil {
			a.Spec.Done(a.Handle)
		}
	}
}
