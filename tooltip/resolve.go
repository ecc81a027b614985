// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import "cogentcore.org/tooltip/math32"

// Target is where a tooltip is placed relative to its reference node:
// the anchor point on the reference node, the alignment point on the
// tooltip, and the offset from the former to the latter.
type Target struct {

	// Anchor is the anchor point on the reference node.
	Anchor Anchor

	// Alignment is the alignment point on the tooltip's facing edge.
	Alignment Alignment

	// Offset is added to the anchor point before the alignment
	// point is placed on it.
	Offset math32.Vector2
}

// Mirror returns the target with its anchor on the opposite side of
// the reference node. The offset component along the anchor's axis is
// negated, so an offset that moved the tooltip away from the reference
// node still does so after the flip.
func (tg Target) Mirror() Target {
	ax := tg.Anchor.Axis()
	tg.Anchor = tg.Anchor.Mirror()
	tg.Offset.SetDim(ax, -tg.Offset.Dim(ax))
	return tg
}

// Resolve returns the top-left position of a tooltip of the given size
// such that its alignment point lands on the anchor point of parent
// plus the offset.
func (tg Target) Resolve(parent math32.Box2, size math32.Vector2) math32.Vector2 {
	return Resolve(parent, size, tg.Anchor, tg.Alignment, tg.Offset)
}

// AnchorPoint returns the anchor point on the given parent box.
func AnchorPoint(parent math32.Box2, anchor Anchor) math32.Vector2 {
	mn, mx, c := parent.Min, parent.Max, parent.Center()
	switch anchor {
	case TopLeft:
		return mn
	case TopCenter:
		return math32.Vec2(c.X, mn.Y)
	case TopRight:
		return math32.Vec2(mx.X, mn.Y)
	case LeftCenter:
		return math32.Vec2(mn.X, c.Y)
	case RightCenter:
		return math32.Vec2(mx.X, c.Y)
	case BottomLeft:
		return math32.Vec2(mn.X, mx.Y)
	case BottomCenter:
		return math32.Vec2(c.X, mx.Y)
	case BottomRight:
		return mx
	default: // CenterAlign*
		return c
	}
}

// AlignPoint returns the alignment point of a tooltip of the given size,
// relative to the tooltip's top-left corner.
func AlignPoint(size math32.Vector2, anchor Anchor, align Alignment) math32.Vector2 {
	f := align.fraction()
	switch anchor.Facing() {
	case SideBottom:
		return math32.Vec2(f*size.X, size.Y)
	case SideTop:
		return math32.Vec2(f*size.X, 0)
	case SideRight:
		return math32.Vec2(size.X, f*size.Y)
	default:
		return math32.Vec2(0, f*size.Y)
	}
}

// Resolve returns the desired top-left position of a tooltip of the given
// size, before any correction: the position that places the tooltip's
// alignment point on the parent's anchor point plus offset.
// It is total: zero-size boxes give a degenerate but defined result.
func Resolve(parent math32.Box2, size math32.Vector2, anchor Anchor, align Alignment, offset math32.Vector2) math32.Vector2 {
	return AnchorPoint(parent, anchor).Add(offset).Sub(AlignPoint(size, anchor, align))
}
