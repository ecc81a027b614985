// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import "cogentcore.org/tooltip/math32"

// CameraResult is the outcome of keeping a tooltip inside its camera viewport.
type CameraResult struct {

	// Pos is the corrected top-left position.
	Pos math32.Vector2

	// Target is the target after any flip.
	Target Target

	// Padding is the effective camera padding that was used.
	Padding float32

	// Pushed is the translation applied by the last push.
	Pushed math32.Vector2

	// Flipped is whether the anchor was flipped because the push
	// moved the tooltip onto the reference node.
	Flipped bool

	// Clamped is whether the top-left corner was clamped to the viewport
	// on the X and Y dimensions, because the tooltip is larger than the viewport.
	Clamped [2]bool
}

// EffectivePadding returns the camera padding actually used for a tooltip
// of the given size in the given viewport: the requested padding, reduced
// toward zero (never below) so that the tooltip and the padding on both
// sides fit in the viewport on each dimension.
func EffectivePadding(padding float32, size math32.Vector2, viewport math32.Box2) float32 {
	vs := viewport.Size()
	fit := math32.Min(vs.X-size.X, vs.Y-size.Y) / 2
	return math32.Clamp(padding, 0, math32.Max(fit, 0))
}

// Push returns the translation that moves box inside area, eliminating the
// penetration of each edge independently. For a box that fits in area
// this is the smallest such translation.
func Push(box, area math32.Box2) math32.Vector2 {
	var d math32.Vector2
	for _, dim := range []math32.Dims{math32.X, math32.Y} {
		lo := math32.Max(area.Min.Dim(dim)-box.Min.Dim(dim), 0)
		hi := math32.Min(area.Max.Dim(dim)-box.Max.Dim(dim), 0)
		d.SetDim(dim, lo+hi)
	}
	return d
}

// StayInCamera keeps a tooltip at pos inside the viewport in g, shrunk by
// the effective padding. It first pushes the tooltip inside. If the push
// moved the tooltip back toward the reference node and onto the padding
// zone around it, the target is flipped to its mirror and the tooltip is
// resolved and pushed once more. Finally, on each dimension where the
// tooltip is larger than the viewport, its top-left corner is clamped to
// the viewport's, so that its bottom and right edges may still overflow.
// Without a known viewport it returns pos and tg unchanged.
func StayInCamera(g *Geometry, tg Target, pos math32.Vector2, padding float32) CameraResult {
	res := CameraResult{Pos: pos, Target: tg}
	if !g.HasViewport {
		return res
	}
	res.Padding = EffectivePadding(padding, g.Size, g.Viewport)
	area := g.Viewport.ExpandByScalar(-res.Padding)

	res.Pushed = Push(math32.B2PosSize(pos, g.Size), area)
	res.Pos = pos.Add(res.Pushed)

	zone := g.Parent.ExpandByScalar(res.Padding)
	if res.Pushed.Dot(tg.Anchor.Direction()) < 0 && math32.B2PosSize(res.Pos, g.Size).Overlaps(zone) {
		res.Target = tg.Mirror()
		res.Flipped = true
		fpos := res.Target.Resolve(g.Parent, g.Size)
		res.Pushed = Push(math32.B2PosSize(fpos, g.Size), area)
		res.Pos = fpos.Add(res.Pushed)
	}

	vs := g.Viewport.Size()
	for _, dim := range []math32.Dims{math32.X, math32.Y} {
		if g.Size.Dim(dim) > vs.Dim(dim) {
			res.Pos.SetDim(dim, g.Viewport.Min.Dim(dim))
			res.Clamped[dim] = true
		}
	}
	return res
}
