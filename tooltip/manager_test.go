// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"testing"
	"time"

	"cogentcore.org/tooltip/anim"
	"cogentcore.org/tooltip/events"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
	"cogentcore.org/tooltip/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testScene struct {
	tree   *scene.Tree
	engine *anim.Engine
	m      *Manager
	button scene.NodeID
}

func newTestScene(t *testing.T, cfg *Config) *testScene {
	t.Helper()
	ts := &testScene{tree: scene.NewTree(), engine: anim.NewEngine()}
	ts.tree.AddCamera("main", math32.B2(0, 0, 200, 200))
	root := ts.tree.Add(scene.NoNode, "root", math32.B2(0, 0, 200, 200))
	ts.button = ts.tree.Add(root, "button", math32.B2XYWH(100, 100, 50, 20))
	ts.tree.TooltipSizes[ts.button] = math32.Vec2(40, 10)
	ts.m = NewManager(ts.tree, ts.tree, ts.engine)
	ts.m.Add(ts.button, cfg)
	return ts
}

func (ts *testScene) send(typ events.Types) bool {
	return ts.m.HandleEvent(events.New(typ, ts.button, math32.Vec2(110, 105)))
}

func (ts *testScene) tooltipNode(t *testing.T) *scene.Node {
	t.Helper()
	inst, ok := ts.m.Instance(ts.button)
	require.True(t, ok)
	n, ok := ts.tree.Node(inst.Node)
	require.True(t, ok)
	return n
}

func (ts *testScene) hasTooltip() bool {
	for _, n := range ts.tree.Nodes() {
		if n.IsTooltip() {
			return true
		}
	}
	return false
}

func TestManagerInstant(t *testing.T) {
	ts := newTestScene(t, NewConfig())
	assert.Equal(t, Hidden, ts.m.State(ts.button))

	assert.True(t, ts.send(events.PointerEnter))
	assert.Equal(t, Visible, ts.m.State(ts.button))
	ts.m.Update()
	n := ts.tooltipNode(t)
	assert.Equal(t, float32(1), n.Opacity)
	assert.Equal(t, math32.B2XYWH(105, 90, 40, 10), n.Box)
	assert.Equal(t, ts.button, n.Source)
	assert.Equal(t, "main", n.Camera)

	inst, _ := ts.m.Instance(ts.button)
	assert.True(t, inst.Placed)
	assert.Equal(t, math32.Vec2(105, 90), inst.Placement.Pos)

	ts.send(events.PointerLeave)
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	_, ok := ts.m.Instance(ts.button)
	assert.False(t, ok)
	assert.False(t, ts.hasTooltip())
}

func TestManagerSingleInstance(t *testing.T) {
	ts := newTestScene(t, NewConfig().SetFadeIn(0, 100*time.Millisecond))
	ts.send(events.PointerEnter)
	inst, ok := ts.m.Instance(ts.button)
	require.True(t, ok)
	n := ts.tree.Len()
	ts.send(events.PointerEnter)
	ts.send(events.Pressed)
	again, _ := ts.m.Instance(ts.button)
	assert.Equal(t, inst.Node, again.Node)
	assert.Equal(t, n, ts.tree.Len())
	assert.Equal(t, 1, ts.engine.Len())
}

func TestManagerRequiredState(t *testing.T) {
	ts := newTestScene(t, NewConfig().SetState(states.Hovered, states.Focused))
	ts.send(events.PointerEnter)
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	assert.False(t, ts.hasTooltip())

	ts.tree.SetState(ts.button, true, states.Hovered)
	ts.send(events.PointerEnter)
	assert.Equal(t, Hidden, ts.m.State(ts.button))

	ts.tree.SetState(ts.button, true, states.Focused, states.Selected)
	ts.send(events.PointerEnter)
	assert.Equal(t, Visible, ts.m.State(ts.button))
}

func TestManagerFades(t *testing.T) {
	cfg := NewConfig().SetFadeIn(100*time.Millisecond, 200*time.Millisecond).SetFadeOut(0, 100*time.Millisecond)
	ts := newTestScene(t, cfg)

	ts.send(events.PointerEnter)
	assert.Equal(t, FadingIn, ts.m.State(ts.button))
	assert.Equal(t, float32(0), ts.tooltipNode(t).Opacity)

	ts.engine.Advance(50 * time.Millisecond)
	assert.Equal(t, float32(0), ts.tooltipNode(t).Opacity)
	ts.engine.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.25, ts.tooltipNode(t).Opacity, 1e-5)

	ts.send(events.PointerLeave)
	assert.Equal(t, FadingOut, ts.m.State(ts.button))
	assert.InDelta(t, 0.25, ts.tooltipNode(t).Opacity, 1e-5)
	assert.Equal(t, 1, ts.engine.Len())

	ts.engine.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.125, ts.tooltipNode(t).Opacity, 1e-5)

	ts.send(events.PointerLeave)
	ts.send(events.Released)
	assert.Equal(t, FadingOut, ts.m.State(ts.button))

	ts.engine.Advance(50 * time.Millisecond)
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	assert.False(t, ts.hasTooltip())
	assert.Equal(t, 0, ts.engine.Len())
}

func TestManagerFadeInCompletes(t *testing.T) {
	ts := newTestScene(t, NewConfig().SetFadeIn(0, 100*time.Millisecond))
	ts.send(events.PointerEnter)
	ts.engine.Advance(60 * time.Millisecond)
	assert.Equal(t, FadingIn, ts.m.State(ts.button))
	ts.engine.Advance(60 * time.Millisecond)
	assert.Equal(t, Visible, ts.m.State(ts.button))
	assert.Equal(t, float32(1), ts.tooltipNode(t).Opacity)
}

func TestManagerEnterWhileFadingOut(t *testing.T) {
	cfg := NewConfig().SetFadeIn(0, 100*time.Millisecond).SetFadeOut(0, 100*time.Millisecond)
	ts := newTestScene(t, cfg)
	ts.send(events.PointerEnter)
	ts.engine.Advance(200 * time.Millisecond)
	require.Equal(t, Visible, ts.m.State(ts.button))
	inst, _ := ts.m.Instance(ts.button)
	node := inst.Node

	ts.send(events.PointerLeave)
	ts.engine.Advance(40 * time.Millisecond)
	assert.InDelta(t, 0.6, ts.tooltipNode(t).Opacity, 1e-5)

	ts.send(events.PointerEnter)
	assert.Equal(t, FadingIn, ts.m.State(ts.button))
	inst, _ = ts.m.Instance(ts.button)
	assert.Equal(t, node, inst.Node)
	assert.InDelta(t, 0.6, ts.tooltipNode(t).Opacity, 1e-5)

	ts.engine.Advance(50 * time.Millisecond)
	assert.InDelta(t, 0.8, ts.tooltipNode(t).Opacity, 1e-5)
	ts.engine.Advance(50 * time.Millisecond)
	assert.Equal(t, Visible, ts.m.State(ts.button))
	assert.Equal(t, 1, countTooltips(ts.tree))
}

func countTooltips(tree *scene.Tree) int {
	n := 0
	for _, nd := range tree.Nodes() {
		if nd.IsTooltip() {
			n++
		}
	}
	return n
}

func TestManagerStaleFadeCompletion(t *testing.T) {
	ts := newTestScene(t, NewConfig().SetFadeIn(0, 100*time.Millisecond).SetFadeOut(0, 100*time.Millisecond))
	ts.send(events.PointerEnter)
	s := ts.m.sources.ValueByKey(ts.button)
	stale := s.inst.fadeIn
	ts.m.transition(s, signalFadeInDone, stale+100)
	assert.Equal(t, FadingIn, s.state)

	ts.send(events.PointerLeave)
	ts.m.transition(s, signalFadeInDone, stale)
	assert.Equal(t, FadingOut, s.state)
	ts.m.transition(s, signalFadeOutDone, stale)
	assert.Equal(t, FadingOut, s.state)
	assert.True(t, ts.hasTooltip())
}

func TestManagerPress(t *testing.T) {
	ts := newTestScene(t, NewConfig())
	ts.send(events.Pressed)
	assert.Equal(t, Visible, ts.m.State(ts.button))
	ts.send(events.Released)
	assert.Equal(t, Hidden, ts.m.State(ts.button))

	ts.send(events.Pressed)
	ts.send(events.PressCanceled)
	assert.Equal(t, Hidden, ts.m.State(ts.button))

	ts = newTestScene(t, NewConfig().SetRemoveOnPress(true))
	ts.send(events.PointerEnter)
	assert.Equal(t, Visible, ts.m.State(ts.button))
	ts.send(events.Pressed)
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	ts.send(events.Pressed)
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	assert.False(t, ts.hasTooltip())

	cfg := NewConfig()
	cfg.ShowOnPress = false
	ts = newTestScene(t, cfg)
	ts.send(events.Pressed)
	assert.Equal(t, Hidden, ts.m.State(ts.button))
}

func TestManagerReferenceGone(t *testing.T) {
	tree := scene.NewTree()
	tree.AddCamera("main", math32.B2(0, 0, 200, 200))
	button := tree.Add(scene.NoNode, "button", math32.B2XYWH(10, 150, 50, 20))
	label := tree.Add(scene.NoNode, "label", math32.B2XYWH(100, 100, 50, 20))
	tree.TooltipSizes[button] = math32.Vec2(40, 10)
	m := NewManager(tree, tree, anim.NewEngine())
	m.AddReference(button, label, NewConfig().SetFadeOut(0, time.Second))

	m.HandleEvent(events.New(events.PointerEnter, button, math32.Vec2(20, 155)))
	m.Update()
	inst, ok := m.Instance(button)
	require.True(t, ok)
	assert.Equal(t, label, inst.Reference)
	assert.Equal(t, math32.Vec2(105, 90), inst.Placement.Pos)

	tree.Delete(label)
	m.Update()
	assert.Equal(t, Hidden, m.State(button))
	assert.Equal(t, 0, countTooltips(tree))
	assert.Equal(t, []scene.NodeID{button}, m.Sources())

	m.HandleEvent(events.New(events.PointerEnter, button, math32.Vec2(20, 155)))
	assert.Equal(t, Hidden, m.State(button))
	assert.Equal(t, 0, countTooltips(tree))
}

func TestManagerEnterAfterReferenceGone(t *testing.T) {
	tree := scene.NewTree()
	tree.AddCamera("main", math32.B2(0, 0, 200, 200))
	button := tree.Add(scene.NoNode, "button", math32.B2XYWH(10, 150, 50, 20))
	label := tree.Add(scene.NoNode, "label", math32.B2XYWH(100, 100, 50, 20))
	tree.TooltipSizes[button] = math32.Vec2(40, 10)
	engine := anim.NewEngine()
	m := NewManager(tree, tree, engine)
	m.AddReference(button, label, NewConfig().SetFadeIn(0, 100*time.Millisecond).SetFadeOut(0, 100*time.Millisecond))

	enter := events.New(events.PointerEnter, button, math32.Vec2(20, 155))
	m.HandleEvent(enter)
	engine.Advance(200 * time.Millisecond)
	require.Equal(t, Visible, m.State(button))

	m.HandleEvent(events.New(events.PointerLeave, button, math32.Vec2(20, 155)))
	engine.Advance(40 * time.Millisecond)
	require.Equal(t, FadingOut, m.State(button))

	tree.Delete(label)
	m.HandleEvent(events.New(events.PointerEnter, button, math32.Vec2(20, 155)))
	assert.Equal(t, Hidden, m.State(button))
	_, ok := m.Instance(button)
	assert.False(t, ok)
	assert.Equal(t, 0, countTooltips(tree))
	assert.Equal(t, 0, engine.Len())
}

func TestManagerSourceGone(t *testing.T) {
	ts := newTestScene(t, NewConfig().SetFadeOut(0, time.Second))
	ts.send(events.PointerEnter)
	require.True(t, ts.hasTooltip())
	ts.tree.Delete(ts.button)
	ts.m.Update()
	assert.Empty(t, ts.m.Sources())
	assert.False(t, ts.hasTooltip())
	assert.False(t, ts.m.Remove(ts.button))
}

func TestManagerTooltipNodeGone(t *testing.T) {
	ts := newTestScene(t, NewConfig())
	ts.send(events.PointerEnter)
	inst, _ := ts.m.Instance(ts.button)
	ts.tree.Delete(inst.Node)
	ts.m.Update()
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	ts.send(events.PointerEnter)
	assert.Equal(t, Visible, ts.m.State(ts.button))
}

func TestManagerReplace(t *testing.T) {
	ts := newTestScene(t, NewConfig())
	ts.send(events.PointerEnter)
	require.True(t, ts.hasTooltip())
	ts.m.Add(ts.button, NewConfig().SetAnchor(BottomCenter))
	assert.False(t, ts.hasTooltip())
	assert.Equal(t, Hidden, ts.m.State(ts.button))
	cfg, ok := ts.m.Config(ts.button)
	require.True(t, ok)
	assert.Equal(t, BottomCenter, cfg.Anchor)
	assert.Len(t, ts.m.Sources(), 1)
}

func TestManagerConfigCopied(t *testing.T) {
	cfg := NewConfig()
	ts := newTestScene(t, cfg)
	cfg.Anchor = LeftCenter
	got, _ := ts.m.Config(ts.button)
	assert.Equal(t, TopCenter, got.Anchor)
}

func TestManagerAvoidCursor(t *testing.T) {
	ts := newTestScene(t, NewConfig().SetAnchor(BottomCenter).SetOffset(math32.Vec2(0, -15)))
	ts.m.CursorSize = math32.Vec2(16, 16)
	ts.m.HandleEvent(events.New(events.PointerEnter, ts.button, math32.Vec2(120, 105)))
	ts.m.Update()
	inst, _ := ts.m.Instance(ts.button)
	assert.Equal(t, math32.Vec2(105, 105), inst.Placement.Resolved)
	assert.Equal(t, AvoidSlid, inst.Placement.Avoid)
	assert.Equal(t, math32.Vec2(105, 121), inst.Placement.Pos)
	assert.Equal(t, math32.Vec2(105, 121), ts.tooltipNode(t).Box.Min)

	ts.m.CursorSize = math32.Vector2{}
	ts.m.Update()
	inst, _ = ts.m.Instance(ts.button)
	assert.Equal(t, AvoidNone, inst.Placement.Avoid)
	assert.Equal(t, math32.Vec2(105, 105), inst.Placement.Pos)
}

func TestManagerFollowsLayout(t *testing.T) {
	ts := newTestScene(t, NewConfig())
	ts.send(events.PointerEnter)
	ts.m.Update()
	ts.tree.SetBox(ts.button, math32.B2XYWH(20, 50, 50, 20))
	ts.m.Update()
	assert.Equal(t, math32.B2XYWH(25, 40, 40, 10), ts.tooltipNode(t).Box)
}

func TestManagerHandleEvent(t *testing.T) {
	ts := newTestScene(t, NewConfig())
	other := ts.tree.Add(scene.NoNode, "other", math32.B2XYWH(0, 0, 10, 10))
	assert.False(t, ts.m.HandleEvent(events.New(events.PointerEnter, other, math32.Vec2(3, 4))))
	assert.Equal(t, math32.Vec2(3, 4), ts.m.Pointer)
	assert.True(t, ts.m.HandleEvent(events.New(events.PointerMove, ts.button, math32.Vec2(101, 102))))
	assert.Equal(t, Hidden, ts.m.State(ts.button))

	ls := events.Listeners{}
	ts.m.Listen(&ls)
	e := events.New(events.PointerEnter, ts.button, math32.Vec2(110, 110))
	ls.Call(e)
	assert.Equal(t, Visible, ts.m.State(ts.button))
	assert.False(t, e.IsHandled())
}
