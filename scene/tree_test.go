// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() (*Tree, NodeID, NodeID, NodeID) {
	t := NewTree()
	t.AddCamera("main", math32.B2(0, 0, 200, 200))
	root := t.Add(NoNode, "root", math32.B2(0, 0, 200, 200))
	panel := t.Add(root, "panel", math32.B2XYWH(20, 20, 100, 100))
	button := t.Add(panel, "button", math32.B2XYWH(100, 100, 50, 20))
	return t, root, panel, button
}

func TestTreeBasics(t *testing.T) {
	tr, root, panel, button := testTree()
	assert.Equal(t, 3, tr.Len())

	n, ok := tr.Node(panel)
	require.True(t, ok)
	assert.Equal(t, root, n.Parent)
	assert.Equal(t, []NodeID{button}, n.Children)
	assert.Equal(t, float32(1), n.Opacity)

	bn, ok := tr.ByName("button")
	require.True(t, ok)
	assert.Equal(t, button, bn.ID)

	box, ok := tr.Box(button)
	require.True(t, ok)
	assert.Equal(t, math32.B2XYWH(100, 100, 50, 20), box)

	tr.SetState(button, true, states.Hovered)
	assert.True(t, tr.States(button).HasFlag(states.Hovered))
	assert.Equal(t, states.States(0), tr.States(NodeID(99)))

	orphan := tr.Add(NodeID(99), "orphan", math32.Box2{})
	on, _ := tr.Node(orphan)
	assert.Equal(t, NoNode, on.Parent)
}

func TestTreeViewport(t *testing.T) {
	tr, root, panel, button := testTree()
	vp, ok := tr.Viewport(button)
	require.True(t, ok)
	assert.Equal(t, math32.B2(0, 0, 200, 200), vp)

	tr.AddCamera("side", math32.B2(200, 0, 400, 100))
	n, _ := tr.Node(panel)
	n.Camera = "side"
	cam, ok := tr.CameraOf(button)
	require.True(t, ok)
	assert.Equal(t, "side", cam)
	cam, _ = tr.CameraOf(root)
	assert.Equal(t, "main", cam)

	n.Camera = "missing"
	_, ok = tr.Viewport(button)
	assert.False(t, ok)
	_, ok = tr.Viewport(NodeID(99))
	assert.False(t, ok)
}

func TestTreeDelete(t *testing.T) {
	tr, root, panel, button := testTree()
	assert.True(t, tr.Delete(panel))
	assert.False(t, tr.Exists(panel))
	assert.False(t, tr.Exists(button))
	assert.True(t, tr.Exists(root))
	rn, _ := tr.Node(root)
	assert.Empty(t, rn.Children)
	assert.False(t, tr.Delete(panel))

	id := tr.Add(root, "new", math32.Box2{})
	assert.Greater(t, id, button)
}

func TestTreeTooltip(t *testing.T) {
	tr, _, _, button := testTree()
	tr.TooltipSizes[button] = math32.Vec2(40, 10)
	tip := tr.SpawnTooltip(button)
	n, ok := tr.Node(tip)
	require.True(t, ok)
	assert.True(t, n.IsTooltip())
	assert.Equal(t, button, n.Source)
	assert.Equal(t, float32(0), n.Opacity)
	assert.Equal(t, "main", n.Camera)
	assert.Equal(t, math32.Vec2(40, 10), n.Box.Size())

	tr.SetPosition(tip, math32.Vec2(105, 85))
	assert.Equal(t, math32.B2XYWH(105, 85, 40, 10), n.Box)
	tr.SetOpacity(tip, 2)
	assert.Equal(t, float32(1), n.Opacity)

	id, ok := tr.NodeAt(math32.Vec2(110, 90))
	require.True(t, ok)
	assert.NotEqual(t, tip, id)

	tr.DespawnTooltip(tip)
	assert.False(t, tr.Exists(tip))
}

func TestTreeNodeAt(t *testing.T) {
	tr, root, panel, button := testTree()
	id, ok := tr.NodeAt(math32.Vec2(110, 110))
	require.True(t, ok)
	assert.Equal(t, button, id)
	id, _ = tr.NodeAt(math32.Vec2(30, 30))
	assert.Equal(t, panel, id)
	id, _ = tr.NodeAt(math32.Vec2(190, 190))
	assert.Equal(t, root, id)
	_, ok = tr.NodeAt(math32.Vec2(500, 500))
	assert.False(t, ok)
}
