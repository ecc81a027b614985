// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a minimal in-memory node tree: node boxes in a
// shared coordinate space, parent-of relations, node states, opacity,
// and the cameras whose viewports nodes are rendered into.
// It is the node system that tooltips are placed against, and it can
// spawn and despawn the node subtree of a tooltip.
package scene

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/tooltip/base/ordmap"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/states"
)

// NodeID identifies a node in a [Tree]. IDs are never reused,
// so a stale ID fails every lookup once its node is deleted.
type NodeID uint64

// NoNode is the zero NodeID, which never refers to a node.
const NoNode NodeID = 0

func (id NodeID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Node is one node in a [Tree].
type Node struct {

	// ID is the unique id of the node.
	ID NodeID

	// Name is an optional user-facing name.
	Name string

	// Parent is the parent node, or [NoNode] for a root node.
	Parent NodeID

	// Children are the child nodes in the order they were added.
	Children []NodeID

	// Box is the layout box of the node in the shared coordinate space.
	Box math32.Box2

	// States are the current GUI states of the node.
	States states.States

	// Opacity is the opacity of the node and its subtree, in [0, 1].
	Opacity float32

	// Camera is the name of the camera this node renders to.
	// If empty, the camera of the nearest ancestor that has one is used.
	Camera string

	// Source is the node whose tooltip this node is, for spawned tooltip nodes.
	Source NodeID
}

// IsTooltip returns whether this node was spawned as a tooltip.
func (n *Node) IsTooltip() bool {
	return n.Source != NoNode
}

// Tree is an in-memory node tree. It is not safe for concurrent use:
// all access happens from the single pass loop.
type Tree struct {

	// Cameras are the named camera viewport rectangles.
	Cameras map[string]math32.Box2

	// DefaultCamera is the camera used by nodes that have
	// no camera on themselves or any ancestor.
	DefaultCamera string

	// TooltipSizes are the measured sizes of tooltip content per source node,
	// used as the box size of spawned tooltip nodes.
	TooltipSizes map[NodeID]math32.Vector2

	nodes  ordmap.Map[NodeID, *Node]
	lastID NodeID
}

// NewTree returns a new empty tree.
func NewTree() *Tree {
	return &Tree{
		Cameras:      map[string]math32.Box2{},
		TooltipSizes: map[NodeID]math32.Vector2{},
	}
}

// AddCamera adds or replaces a camera with the given viewport rectangle.
// The first camera added becomes the [Tree.DefaultCamera].
func (t *Tree) AddCamera(name string, viewport math32.Box2) {
	if t.Cameras == nil {
		t.Cameras = map[string]math32.Box2{}
	}
	t.Cameras[name] = viewport
	if t.DefaultCamera == "" {
		t.DefaultCamera = name
	}
}

// Add adds a new fully opaque node with the given parent, name and box,
// returning its id. A parent of [NoNode] makes a root node.
func (t *Tree) Add(parent NodeID, name string, box math32.Box2) NodeID {
	t.lastID++
	n := &Node{ID: t.lastID, Name: name, Parent: parent, Box: box, Opacity: 1}
	if p, ok := t.Node(parent); ok {
		p.Children = append(p.Children, n.ID)
	} else if parent != NoNode {
		slog.Warn("scene: adding node with missing parent as root", "node", n.ID, "parent", parent)
		n.Parent = NoNode
	}
	t.nodes.Add(n.ID, n)
	return n.ID
}

// Node returns the node with the given id, if it exists.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	return t.nodes.ValueByKeyTry(id)
}

// ByName returns the first node with the given name.
func (t *Tree) ByName(name string) (*Node, bool) {
	for _, kv := range t.nodes.Order {
		if kv.Value.Name == name {
			return kv.Value, true
		}
	}
	return nil, false
}

// Nodes returns all nodes in the order they were added.
func (t *Tree) Nodes() []*Node {
	return t.nodes.Values()
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return t.nodes.Len()
}

// Exists returns whether the node with the given id still exists.
func (t *Tree) Exists(id NodeID) bool {
	return t.nodes.Has(id)
}

// Box returns the layout box of the given node.
func (t *Tree) Box(id NodeID) (math32.Box2, bool) {
	n, ok := t.Node(id)
	if !ok {
		return math32.Box2{}, false
	}
	return n.Box, true
}

// SetBox sets the layout box of the given node, as a layout pass would.
func (t *Tree) SetBox(id NodeID, box math32.Box2) {
	if n, ok := t.Node(id); ok {
		n.Box = box
	}
}

// CameraOf returns the name of the camera the given node renders to.
func (t *Tree) CameraOf(id NodeID) (string, bool) {
	for n, ok := t.Node(id); ok; n, ok = t.Node(n.Parent) {
		if n.Camera != "" {
			return n.Camera, true
		}
	}
	if !t.Exists(id) || t.DefaultCamera == "" {
		return "", false
	}
	return t.DefaultCamera, true
}

// Viewport returns the viewport rectangle of the camera the given node
// renders to. It returns false if the node or its camera is unknown.
func (t *Tree) Viewport(id NodeID) (math32.Box2, bool) {
	cam, ok := t.CameraOf(id)
	if !ok {
		return math32.Box2{}, false
	}
	vp, ok := t.Cameras[cam]
	return vp, ok
}

// States returns the current states of the given node.
func (t *Tree) States(id NodeID) states.States {
	if n, ok := t.Node(id); ok {
		return n.States
	}
	return 0
}

// SetState sets or clears the given states on the given node.
func (t *Tree) SetState(id NodeID, on bool, s ...states.States) {
	if n, ok := t.Node(id); ok {
		n.States.SetFlag(on, s...)
	}
}

// SetPosition moves the given node so that its top-left corner is at pos,
// keeping its size.
func (t *Tree) SetPosition(id NodeID, pos math32.Vector2) {
	if n, ok := t.Node(id); ok {
		n.Box = n.Box.MoveTo(pos)
	}
}

// SetOpacity sets the opacity of the given node.
func (t *Tree) SetOpacity(id NodeID, opacity float32) {
	if n, ok := t.Node(id); ok {
		n.Opacity = math32.Clamp(opacity, 0, 1)
	}
}

// Delete deletes the given node and its whole subtree.
// It returns false if the node does not exist.
func (t *Tree) Delete(id NodeID) bool {
	n, ok := t.Node(id)
	if !ok {
		return false
	}
	for _, c := range slices.Clone(n.Children) {
		t.Delete(c)
	}
	if p, ok := t.Node(n.Parent); ok {
		for i, c := range p.Children {
			if c == id {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
	}
	delete(t.TooltipSizes, id)
	return t.nodes.DeleteKey(id)
}

// SpawnTooltip adds a new root tooltip node for the given source,
// rendering to the source's camera, sized by [Tree.TooltipSizes]
// and initially transparent.
func (t *Tree) SpawnTooltip(source NodeID) NodeID {
	id := t.Add(NoNode, "tooltip", math32.B2PosSize(math32.Vector2{}, t.TooltipSizes[source]))
	n, _ := t.Node(id)
	n.Source = source
	n.Opacity = 0
	n.Camera, _ = t.CameraOf(source)
	return id
}

// DespawnTooltip deletes the given tooltip node and its subtree.
func (t *Tree) DespawnTooltip(id NodeID) {
	t.Delete(id)
}

// NodeAt returns the deepest non-tooltip node whose box contains pos,
// preferring later added nodes when boxes overlap.
func (t *Tree) NodeAt(pos math32.Vector2) (NodeID, bool) {
	best := NoNode
	bestDepth := -1
	for i := len(t.nodes.Order) - 1; i >= 0; i-- {
		n := t.nodes.Order[i].Value
		if n.IsTooltip() || !n.Box.ContainsPoint(pos) {
			continue
		}
		if d := t.depth(n); d > bestDepth {
			best, bestDepth = n.ID, d
		}
	}
	return best, best != NoNode
}

func (t *Tree) depth(n *Node) int {
	d := 0
	for p, ok := t.Node(n.Parent); ok; p, ok = t.Node(p.Parent) {
		d++
	}
	return d
}
