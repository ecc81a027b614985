// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input signals that drive tooltip visibility:
// pointer enter and leave, press, release and press cancel, each naming
// its target node, together with per-type listeners and a lock-free
// queue for handing events from an input goroutine to the pass loop.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
)

// Event is the interface for input signals.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Target returns the node the event is delivered to.
	Target() scene.NodeID

	// Pos returns the pointer position at the time of the event,
	// in the shared coordinate space of the node system.
	Pos() math32.Vector2

	// Time returns the time at which the event was generated.
	Time() time.Time

	// IsHandled returns whether this event has already been processed.
	IsHandled() bool

	// SetHandled marks the event as having been processed,
	// so that subsequent listeners are not called.
	SetHandled()
}

// Base is the basic concrete [Event] type.
type Base struct {

	// Typ is the type of event
	Typ Types

	// To is the node the event is delivered to
	To scene.NodeID

	// Where is the pointer position
	Where math32.Vector2

	// GenTime records the time when the event was first generated
	GenTime time.Time

	// Handled indicates that the event has been handled
	Handled bool
}

// New returns a new event of the given type targeting the given node
// with the given pointer position, generated now.
func New(typ Types, target scene.NodeID, pos math32.Vector2) *Base {
	return &Base{Typ: typ, To: target, Where: pos, GenTime: time.Now()}
}

func (ev *Base) Type() Types          { return ev.Typ }
func (ev *Base) Target() scene.NodeID { return ev.To }
func (ev *Base) Pos() math32.Vector2  { return ev.Where }
func (ev *Base) Time() time.Time      { return ev.GenTime }
func (ev *Base) IsHandled() bool      { return ev.Handled }
func (ev *Base) SetHandled()          { ev.Handled = true }

func (ev *Base) String() string {
	return fmt.Sprintf("%v{Target: %v, Pos: %v, Time: %v}", ev.Typ, ev.To, ev.Where, ev.GenTime.Format("04:05.000"))
}
