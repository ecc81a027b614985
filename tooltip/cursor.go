// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import "cogentcore.org/tooltip/math32"

// Cursor describes a custom pointer cursor whose size and hotspot are known.
// Cursor avoidance only works for such cursors: system cursor metrics are
// not available.
type Cursor struct {

	// Pos is the pointer position, which is where the hotspot is drawn.
	Pos math32.Vector2

	// Size is the size of the cursor image.
	Size math32.Vector2

	// Hotspot is the position of the hotspot relative to the
	// top-left corner of the cursor image.
	Hotspot math32.Vector2
}

// Box returns the box covered by the cursor image.
func (c *Cursor) Box() math32.Box2 {
	return math32.B2PosSize(c.Pos.Sub(c.Hotspot), c.Size)
}

// AvoidResult is the outcome of cursor avoidance.
type AvoidResult int32

const (
	// AvoidNone means no correction was needed or possible.
	AvoidNone AvoidResult = iota

	// AvoidSlid means the tooltip was slid away from the reference node
	// along its anchor direction until it cleared the cursor.
	AvoidSlid

	// AvoidFlipped means the tooltip was moved to the mirror anchor.
	// It may still overlap the cursor, which is accepted.
	AvoidFlipped
)

func (r AvoidResult) String() string {
	switch r {
	case AvoidSlid:
		return "slid"
	case AvoidFlipped:
		return "flipped"
	default:
		return "none"
	}
}

// AvoidCursor moves a tooltip at pos off the cursor in g, if it overlaps it.
// The tooltip is first slid further along its anchor direction by the
// distance needed to clear the cursor. If the viewport in g leaves no room
// for that, the tooltip is placed at the mirror target instead, once.
// Without a known cursor it returns pos and tg unchanged.
func AvoidCursor(g *Geometry, tg Target, pos math32.Vector2) (math32.Vector2, Target, AvoidResult) {
	if g.Cursor == nil {
		return pos, tg, AvoidNone
	}
	box := math32.B2PosSize(pos, g.Size)
	cb := g.Cursor.Box()
	if !box.Overlaps(cb) {
		return pos, tg, AvoidNone
	}
	dir := tg.Anchor.Direction()
	need := clearance(box, cb, dir)
	if !g.HasViewport || need <= room(box, g.Viewport, dir) {
		return pos.Add(dir.MulScalar(need)), tg, AvoidSlid
	}
	mt := tg.Mirror()
	return mt.Resolve(g.Parent, g.Size), mt, AvoidFlipped
}

// clearance returns how far box must move along dir to stop overlapping obstacle.
func clearance(box, obstacle math32.Box2, dir math32.Vector2) float32 {
	switch {
	case dir.Y < 0:
		return box.Max.Y - obstacle.Min.Y
	case dir.Y > 0:
		return obstacle.Max.Y - box.Min.Y
	case dir.X < 0:
		return box.Max.X - obstacle.Min.X
	default:
		return obstacle.Max.X - box.Min.X
	}
}

// room returns how far box can move along dir and stay inside area.
func room(box, area math32.Box2, dir math32.Vector2) float32 {
	switch {
	case dir.Y < 0:
		return box.Min.Y - area.Min.Y
	case dir.Y > 0:
		return area.Max.Y - box.Max.Y
	case dir.X < 0:
		return box.Min.X - area.Min.X
	default:
		return area.Max.X - box.Max.X
	}
}
