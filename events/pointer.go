// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
)

// Pointer turns raw pointer events, which have no target, into the
// targeted events of the nodes under the pointer. It tracks the hovered
// node to send [PointerEnter] and [PointerLeave], and the pressed node to
// send [Released] when the press ends over it or [PressCanceled] when it
// ends elsewhere.
type Pointer struct {

	// HitTest returns the node at the given position, if any.
	HitTest func(pos math32.Vector2) (scene.NodeID, bool)

	// Hovered is the node currently under the pointer.
	Hovered scene.NodeID

	// Pressed is the node the current press started on.
	Pressed scene.NodeID
}

// Handle processes one raw event of type [PointerMove], [Pressed] or
// [Released], calling send for each targeted event it produces, in order.
// A hover change is always sent before the event that caused it.
func (p *Pointer) Handle(ev Event, send func(Event)) {
	pos := ev.Pos()
	target, _ := p.HitTest(pos)
	if target != p.Hovered {
		if p.Hovered != scene.NoNode {
			send(New(PointerLeave, p.Hovered, pos))
		}
		p.Hovered = target
		if target != scene.NoNode {
			send(New(PointerEnter, target, pos))
		}
	}
	switch ev.Type() {
	case PointerMove:
		send(New(PointerMove, target, pos))
	case Pressed:
		p.Pressed = target
		if target != scene.NoNode {
			send(New(Pressed, target, pos))
		}
	case Released:
		switch {
		case p.Pressed == scene.NoNode:
		case p.Pressed == target:
			send(New(Released, target, pos))
		default:
			send(New(PressCanceled, p.Pressed, pos))
		}
		p.Pressed = scene.NoNode
	}
}

// Reset forgets the hovered and pressed nodes, sending [PointerLeave]
// to the hovered node and [PressCanceled] to the pressed node.
func (p *Pointer) Reset(pos math32.Vector2, send func(Event)) {
	if p.Pressed != scene.NoNode {
		send(New(PressCanceled, p.Pressed, pos))
		p.Pressed = scene.NoNode
	}
	if p.Hovered != scene.NoNode {
		send(New(PointerLeave, p.Hovered, pos))
		p.Hovered = scene.NoNode
	}
}
