// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/tooltip/anim"
	"cogentcore.org/tooltip/cursorimg"
	"cogentcore.org/tooltip/events"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
	"cogentcore.org/tooltip/states"
	"cogentcore.org/tooltip/tooltip"
)

// demoScene is a scene file loaded into a node tree with its tooltips
// registered on a manager, ready to be driven by a pass loop.
type demoScene struct {
	tree      *scene.Tree
	engine    *anim.Engine
	manager   *tooltip.Manager
	listeners events.Listeners
	pointer   events.Pointer

	// cursor is the custom cursor image, if the scene has one.
	cursor *cursorimg.Cursor
}

// loadScene opens and builds the given scene file.
func loadScene(filename string) (*demoScene, error) {
	f, err := tooltip.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	ds, err := newDemoScene(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	slog.Info("loaded scene", "file", filename, "nodes", ds.tree.Len(), "tooltips", len(ds.manager.Sources()))
	return ds, nil
}

func newDemoScene(f *tooltip.File) (*demoScene, error) {
	ds := &demoScene{tree: scene.NewTree(), engine: anim.NewEngine()}
	ds.manager = tooltip.NewManager(ds.tree, ds.tree, ds.engine)
	if err := f.Build(ds.tree, ds.manager); err != nil {
		return nil, err
	}
	var err error
	if ds.cursor, err = f.CursorImage(); err != nil {
		return nil, err
	}
	ds.pointer.HitTest = ds.tree.NodeAt
	ds.manager.Listen(&ds.listeners)
	// listeners are called last added first, so node states
	// are updated before the manager sees the event
	ds.listeners.Add(events.PointerEnter, func(e events.Event) { ds.tree.SetState(e.Target(), true, states.Hovered) })
	ds.listeners.Add(events.PointerLeave, func(e events.Event) { ds.tree.SetState(e.Target(), false, states.Hovered) })
	ds.listeners.Add(events.Pressed, func(e events.Event) { ds.tree.SetState(e.Target(), true, states.Active) })
	ds.listeners.Add(events.Released, func(e events.Event) { ds.tree.SetState(e.Target(), false, states.Active) })
	ds.listeners.Add(events.PressCanceled, func(e events.Event) { ds.tree.SetState(e.Target(), false, states.Active) })
	return ds, nil
}

// raw handles one raw pointer event, dispatching the targeted
// events it produces to the listeners.
func (ds *demoScene) raw(e events.Event) {
	ds.pointer.Handle(e, ds.listeners.Call)
}

// bounds returns the union of the camera viewports and root node boxes.
func (ds *demoScene) bounds() (math32.Box2, bool) {
	var bb math32.Box2
	has := false
	add := func(b math32.Box2) {
		if !has {
			bb, has = b, true
			return
		}
		bb = bb.Union(b)
	}
	for _, vp := range ds.tree.Cameras {
		add(vp)
	}
	for _, n := range ds.tree.Nodes() {
		if n.Parent == scene.NoNode && !n.IsTooltip() {
			add(n.Box)
		}
	}
	sz := bb.Size()
	return bb, has && sz.X > 0 && sz.Y > 0
}

// name returns the name of the given node, or its id.
func (ds *demoScene) name(id scene.NodeID) string {
	if n, ok := ds.tree.Node(id); ok && n.Name != "" {
		return n.Name
	}
	return id.String()
}
