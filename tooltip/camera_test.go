// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"testing"

	"cogentcore.org/tooltip/math32"
	"github.com/stretchr/testify/assert"
)

func cameraGeometry(parent math32.Box2, size math32.Vector2) *Geometry {
	return &Geometry{Parent: parent, Size: size, Viewport: math32.B2(0, 0, 200, 200), HasViewport: true}
}

func TestPush(t *testing.T) {
	vp := math32.B2(0, 0, 200, 200)
	assert.Equal(t, math32.Vec2(-30, 0), Push(math32.B2XYWH(190, 10, 40, 10), vp))
	assert.Equal(t, math32.Vec2(5, 7), Push(math32.B2XYWH(-5, -7, 40, 10), vp))
	assert.Equal(t, math32.Vector2{}, Push(math32.B2XYWH(0, 190, 200, 10), vp))
}

func TestStayInCameraExample(t *testing.T) {
	g := cameraGeometry(math32.B2XYWH(150, 40, 50, 20), math32.Vec2(40, 10))
	tg := Target{Anchor: TopCenter, Alignment: Center}
	res := StayInCamera(g, tg, math32.Vec2(190, 10), 0)
	assert.Equal(t, math32.Vec2(160, 10), res.Pos)
	assert.False(t, res.Flipped)
	assert.Equal(t, tg, res.Target)
}

func TestEffectivePadding(t *testing.T) {
	vp := math32.B2(0, 0, 200, 200)
	size := math32.Vec2(40, 10)
	assert.Equal(t, float32(10), EffectivePadding(10, size, vp))
	assert.Equal(t, float32(80), EffectivePadding(100, size, vp))
	assert.Equal(t, float32(0), EffectivePadding(-5, size, vp))
	assert.Equal(t, float32(0), EffectivePadding(10, math32.Vec2(250, 10), vp))
	assert.Equal(t, float32(0), EffectivePadding(10, size, math32.Box2{}))
}

func TestStayInCameraFlip(t *testing.T) {
	parent := math32.B2XYWH(80, 5, 40, 20)
	size := math32.Vec2(40, 10)
	tg := Target{Anchor: TopCenter, Alignment: Center, Offset: math32.Vec2(0, -5)}
	start := tg.Resolve(parent, size)
	assert.Equal(t, math32.Vec2(80, -10), start)

	for _, pad := range []float32{0, 4} {
		res := StayInCamera(cameraGeometry(parent, size), tg, start, pad)
		assert.True(t, res.Flipped, "padding %v", pad)
		assert.Equal(t, BottomCenter, res.Target.Anchor)
		assert.Equal(t, math32.Vec2(0, 5), res.Target.Offset)
		assert.Equal(t, math32.Vec2(80, 30), res.Pos)
		assert.Equal(t, pad, res.Padding)
	}
}

func TestStayInCameraFlipUp(t *testing.T) {
	parent := math32.B2XYWH(80, 180, 40, 10)
	size := math32.Vec2(40, 20)
	tg := Target{Anchor: BottomCenter, Alignment: Center}
	res := StayInCamera(cameraGeometry(parent, size), tg, tg.Resolve(parent, size), 0)
	assert.True(t, res.Flipped)
	assert.Equal(t, TopCenter, res.Target.Anchor)
	assert.Equal(t, math32.Vec2(80, 160), res.Pos)
}

func TestStayInCameraSidewaysPush(t *testing.T) {
	parent := math32.B2XYWH(180, 100, 20, 20)
	size := math32.Vec2(40, 10)
	tg := Target{Anchor: TopCenter, Alignment: Center}
	res := StayInCamera(cameraGeometry(parent, size), tg, tg.Resolve(parent, size), 0)
	assert.False(t, res.Flipped)
	assert.Equal(t, math32.Vec2(160, 90), res.Pos)
	assert.Equal(t, math32.Vec2(-10, 0), res.Pushed)
}

func TestStayInCameraClamp(t *testing.T) {
	g := &Geometry{
		Parent:      math32.B2XYWH(40, 20, 20, 10),
		Size:        math32.Vec2(150, 20),
		Viewport:    math32.B2(0, 0, 100, 50),
		HasViewport: true,
	}
	tg := Target{Anchor: TopCenter, Alignment: Center}
	res := StayInCamera(g, tg, tg.Resolve(g.Parent, g.Size), 10)
	assert.Equal(t, float32(0), res.Padding)
	assert.Equal(t, [2]bool{true, false}, res.Clamped)
	assert.Equal(t, math32.Vec2(0, 0), res.Pos)
}

func TestStayInCameraContains(t *testing.T) {
	parent := math32.B2XYWH(90, 90, 20, 20)
	sizes := []math32.Vector2{math32.Vec2(40, 10), math32.Vec2(200, 200), math32.Vec2(0, 0), math32.Vec2(10, 150)}
	for _, size := range sizes {
		for _, a := range AnchorValues() {
			g := cameraGeometry(parent, size)
			tg := Target{Anchor: a, Alignment: Center}
			for x := float32(-100); x <= 300; x += 37 {
				for y := float32(-100); y <= 300; y += 41 {
					for _, pad := range []float32{0, 8} {
						res := StayInCamera(g, tg, math32.Vec2(x, y), pad)
						box := math32.B2PosSize(res.Pos, size)
						assert.True(t, g.Viewport.ContainsBox(box), "size %v anchor %v pos (%v, %v): %v", size, a, x, y, box)
						assert.True(t, g.Viewport.ExpandByScalar(-res.Padding).ContainsBox(box))
					}
				}
			}
		}
	}
}

func TestStayInCameraTooLarge(t *testing.T) {
	parent := math32.B2XYWH(90, 90, 20, 20)
	vp := math32.B2XYWH(10, 20, 200, 200)
	for _, size := range []math32.Vector2{math32.Vec2(250, 10), math32.Vec2(10, 250), math32.Vec2(300, 300)} {
		g := &Geometry{Parent: parent, Size: size, Viewport: vp, HasViewport: true}
		for _, a := range AnchorValues() {
			tg := Target{Anchor: a, Alignment: Start}
			res := StayInCamera(g, tg, tg.Resolve(parent, size), 5)
			if size.X > 200 {
				assert.Equal(t, vp.Min.X, res.Pos.X)
			} else {
				assert.True(t, res.Pos.X >= vp.Min.X && res.Pos.X+size.X <= vp.Max.X)
			}
			if size.Y > 200 {
				assert.Equal(t, vp.Min.Y, res.Pos.Y)
			} else {
				assert.True(t, res.Pos.Y >= vp.Min.Y && res.Pos.Y+size.Y <= vp.Max.Y)
			}
		}
	}
}

func TestStayInCameraNoViewport(t *testing.T) {
	g := &Geometry{Parent: math32.B2XYWH(0, 0, 10, 10), Size: math32.Vec2(40, 10)}
	tg := Target{Anchor: TopCenter}
	res := StayInCamera(g, tg, math32.Vec2(-500, -500), 5)
	assert.Equal(t, math32.Vec2(-500, -500), res.Pos)
	assert.False(t, res.Flipped)
}
