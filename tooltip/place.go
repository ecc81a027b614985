// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"log/slog"

	"cogentcore.org/tooltip/math32"
)

// Geometry is the snapshot of node geometry read for one positioning pass.
type Geometry struct {

	// Parent is the box of the reference node.
	Parent math32.Box2

	// Size is the size of the tooltip, as measured by its own layout.
	Size math32.Vector2

	// Viewport is the viewport rectangle of the camera the reference
	// node renders to, if HasViewport is set.
	Viewport math32.Box2

	// HasViewport is whether the viewport is known.
	HasViewport bool

	// Cursor is the custom cursor, or nil if its size is unknown.
	Cursor *Cursor
}

// Placement is the result of placing a tooltip, with the position after
// each correction stage. Only Pos is ever written to the tooltip node.
type Placement struct {

	// Resolved is the desired position before any correction.
	Resolved math32.Vector2

	// Avoided is the position after cursor avoidance.
	Avoided math32.Vector2

	// Pos is the final position, after viewport containment.
	Pos math32.Vector2

	// Target is the final target, after any flips.
	Target Target

	// Avoid is the outcome of cursor avoidance.
	Avoid AvoidResult

	// Camera is the outcome of viewport containment.
	Camera CameraResult
}

// Box returns the final tooltip box.
func (pl *Placement) Box(size math32.Vector2) math32.Box2 {
	return math32.B2PosSize(pl.Pos, size)
}

// Place computes the final position of a tooltip with the given config
// and geometry. The stages always run in the same order: the position is
// resolved from the target, then moved off the cursor if
// [Config.AvoidCursor] is set, then kept inside the camera viewport if
// [Config.StayInCamera] is set.
func Place(cfg *Config, g *Geometry) Placement {
	pl := Placement{Target: cfg.Target()}
	pl.Resolved = pl.Target.Resolve(g.Parent, g.Size)
	pl.Avoided = pl.Resolved
	if cfg.AvoidCursor {
		pl.Avoided, pl.Target, pl.Avoid = AvoidCursor(g, pl.Target, pl.Resolved)
	}
	pl.Pos = pl.Avoided
	if cfg.StayInCamera {
		pl.Camera = StayInCamera(g, pl.Target, pl.Avoided, cfg.CameraPadding)
		pl.Pos = pl.Camera.Pos
		pl.Target = pl.Camera.Target
	}
	if DebugSettings.TracePlacement {
		slog.Info("tooltip placement", "resolved", pl.Resolved, "avoided", pl.Avoided, "avoid", pl.Avoid,
			"pos", pl.Pos, "anchor", pl.Target.Anchor, "flipped", pl.Camera.Flipped, "clamped", pl.Camera.Clamped)
	}
	return pl
}
