// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"log/slog"

	"cogentcore.org/tooltip/anim"
	"cogentcore.org/tooltip/base/ordmap"
	"cogentcore.org/tooltip/events"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
	"cogentcore.org/tooltip/states"
)

// Nodes is the node system that tooltips are placed against.
// It is implemented by [scene.Tree].
type Nodes interface {

	// Exists returns whether the node still exists.
	Exists(id scene.NodeID) bool

	// Box returns the current layout box of the node.
	Box(id scene.NodeID) (math32.Box2, bool)

	// Viewport returns the viewport rectangle of the camera
	// the node renders to, if it is known.
	Viewport(id scene.NodeID) (math32.Box2, bool)

	// States returns the current states of the node.
	States(id scene.NodeID) states.States

	// SetPosition moves the node so that its top-left corner is at pos.
	SetPosition(id scene.NodeID, pos math32.Vector2)

	// SetOpacity sets the opacity of the node and its subtree.
	SetOpacity(id scene.NodeID, opacity float32)
}

// Spawner creates and removes the node subtree of a tooltip.
// It is implemented by [scene.Tree].
type Spawner interface {

	// SpawnTooltip creates the tooltip node subtree for the given source
	// and returns its root node.
	SpawnTooltip(source scene.NodeID) scene.NodeID

	// DespawnTooltip removes the given tooltip node subtree.
	DespawnTooltip(id scene.NodeID)
}

// Animator runs opacity transitions. It is implemented by [anim.Engine].
type Animator interface {

	// Start starts a transition and returns its handle.
	Start(spec anim.Spec) anim.Handle

	// Cancel stops a transition where it is, without completing it.
	Cancel(h anim.Handle) bool
}

// Instance is a spawned tooltip of a source.
type Instance struct {

	// Node is the root node of the tooltip.
	Node scene.NodeID

	// Source is the node the tooltip belongs to.
	Source scene.NodeID

	// Reference is the node the tooltip is placed against.
	// It is only looked up by id, and its disappearance removes the tooltip.
	Reference scene.NodeID

	// Opacity is the current opacity of the tooltip.
	Opacity float32

	// Placement is the result of the last positioning pass.
	Placement Placement

	// Placed is whether the tooltip has been positioned at least once.
	Placed bool

	fadeIn  anim.Handle
	fadeOut anim.Handle
}

// source is a registered tooltip source.
type source struct {
	id        scene.NodeID
	reference scene.NodeID
	config    *Config
	state     State
	inst      *Instance
}

// signal is an input to the lifecycle state machine.
type signal int32

const (
	signalEnter signal = iota
	signalLeave
	signalPress
	signalRelease
	signalPressCancel
	signalFadeInDone
	signalFadeOutDone
	signalGone
)

var signalNames = [...]string{"enter", "leave", "press", "release", "press-cancel", "fade-in-done", "fade-out-done", "gone"}

func (s signal) String() string {
	return signalNames[s]
}

// Manager runs the tooltips of all registered sources: it decides from
// input events when each tooltip is spawned, faded and despawned, and
// positions the tooltips in [Manager.Update]. There is at most one tooltip
// instance per source. A Manager is driven from a single pass loop and
// is not safe for concurrent use.
type Manager struct {

	// Nodes is the node system.
	Nodes Nodes

	// Spawner creates and removes tooltip nodes.
	Spawner Spawner

	// Animator runs the fades.
	Animator Animator

	// CursorSize is the size of the current custom cursor.
	// If it is zero, the cursor size is unknown and cursor
	// avoidance does nothing.
	CursorSize math32.Vector2

	// CursorHotspot is the hotspot of the current custom cursor,
	// relative to its top-left corner.
	CursorHotspot math32.Vector2

	// Pointer is the last known pointer position.
	Pointer math32.Vector2

	sources ordmap.Map[scene.NodeID, *source]
}

// NewManager returns a new manager using the given collaborators.
func NewManager(nodes Nodes, spawner Spawner, animator Animator) *Manager {
	return &Manager{Nodes: nodes, Spawner: spawner, Animator: animator}
}

// Add registers a tooltip with the given config for the given source,
// placed against the source itself. See [Manager.AddReference].
func (m *Manager) Add(src scene.NodeID, cfg *Config) {
	m.AddReference(src, src, cfg)
}

// AddReference registers a tooltip with the given config for the given
// source, placed against the given reference node. The config is copied.
// Registering a source again replaces its config and removes any tooltip
// it currently has.
func (m *Manager) AddReference(src, reference scene.NodeID, cfg *Config) {
	if s, ok := m.sources.ValueByKeyTry(src); ok {
		m.despawn(s)
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	m.sources.Add(src, &source{id: src, reference: reference, config: cfg.Clone()})
}

// Remove unregisters the given source, immediately removing its tooltip
// regardless of any fade-out. It is called when the source is destroyed.
// It returns false if the source was not registered.
func (m *Manager) Remove(src scene.NodeID) bool {
	s, ok := m.sources.ValueByKeyTry(src)
	if !ok {
		return false
	}
	m.transition(s, signalGone, 0)
	return m.sources.DeleteKey(src)
}

// Sources returns the registered sources in the order they were added.
func (m *Manager) Sources() []scene.NodeID {
	return m.sources.Keys()
}

// Config returns the config of the given source.
func (m *Manager) Config(src scene.NodeID) (*Config, bool) {
	s, ok := m.sources.ValueByKeyTry(src)
	if !ok {
		return nil, false
	}
	return s.config, true
}

// State returns the visibility state of the tooltip of the given source.
func (m *Manager) State(src scene.NodeID) State {
	if s, ok := m.sources.ValueByKeyTry(src); ok {
		return s.state
	}
	return Hidden
}

// Instance returns the current tooltip instance of the given source, if any.
func (m *Manager) Instance(src scene.NodeID) (*Instance, bool) {
	s, ok := m.sources.ValueByKeyTry(src)
	if !ok || s.inst == nil {
		return nil, false
	}
	return s.inst, true
}

// Listen adds listeners for the tooltip input events to ls,
// each forwarding to [Manager.HandleEvent].
func (m *Manager) Listen(ls *events.Listeners) {
	for _, typ := range []events.Types{events.PointerEnter, events.PointerLeave, events.Pressed, events.Released, events.PressCanceled, events.PointerMove} {
		ls.Add(typ, func(e events.Event) { m.HandleEvent(e) })
	}
}

// HandleEvent processes one input event, returning whether it targeted
// a registered source. Events are not marked as handled, so other
// listeners still receive them.
func (m *Manager) HandleEvent(e events.Event) bool {
	m.Pointer = e.Pos()
	s, ok := m.sources.ValueByKeyTry(e.Target())
	if !ok {
		return false
	}
	switch e.Type() {
	case events.PointerEnter:
		m.transition(s, signalEnter, 0)
	case events.PointerLeave:
		m.transition(s, signalLeave, 0)
	case events.Pressed:
		m.transition(s, signalPress, 0)
	case events.Released:
		m.transition(s, signalRelease, 0)
	case events.PressCanceled:
		m.transition(s, signalPressCancel, 0)
	}
	return true
}

// transition is the single entry point of the lifecycle state machine.
// The handle is that of the fade reporting completion, for fade signals.
func (m *Manager) transition(s *source, sig signal, h anim.Handle) {
	from := s.state
	switch sig {
	case signalGone:
		m.despawn(s)
	case signalEnter:
		switch s.state {
		case Hidden, FadingOut:
			m.show(s)
		}
	case signalPress:
		switch {
		case s.config.RemoveOnPress && (s.state == FadingIn || s.state == Visible):
			m.hide(s)
		case s.config.ShowOnPress && !s.config.RemoveOnPress && (s.state == Hidden || s.state == FadingOut):
			m.show(s)
		}
	case signalLeave, signalRelease, signalPressCancel:
		if s.state == FadingIn || s.state == Visible {
			m.hide(s)
		}
	case signalFadeInDone:
		if s.state == FadingIn && s.inst.fadeIn == h {
			s.inst.fadeIn = 0
			s.state = Visible
		}
	case signalFadeOutDone:
		if s.state == FadingOut && s.inst.fadeOut == h {
			s.inst.fadeOut = 0
			m.despawn(s)
		}
	}
	if DebugSettings.TraceLifecycle && s.state != from {
		slog.Info("tooltip lifecycle", "source", s.id, "signal", sig, "from", from, "to", s.state)
	}
}

// show spawns the tooltip if needed and fades it in, provided the
// source has all the required states and the reference node exists.
// A tooltip whose reference node is gone is despawned instead.
// A fade-out in progress is canceled and the fade-in starts from
// the opacity it reached.
func (m *Manager) show(s *source) {
	if !m.Nodes.States(s.id).HasAll(s.config.State) {
		return
	}
	if !m.Nodes.Exists(s.reference) {
		m.despawn(s)
		return
	}
	if s.inst == nil {
		s.inst = &Instance{Node: m.Spawner.SpawnTooltip(s.id), Source: s.id, Reference: s.reference}
		m.setOpacity(s.inst, 0)
	}
	inst := s.inst
	m.cancel(&inst.fadeOut)
	if s.config.FadeIn.IsInstant() {
		m.setOpacity(inst, 1)
		s.state = Visible
		return
	}
	s.state = FadingIn
	inst.fadeIn = m.Animator.Start(anim.Spec{
		From:     inst.Opacity,
		To:       1,
		Delay:    s.config.FadeIn.Delay,
		Duration: s.config.FadeIn.Duration,
		Set:      func(v float32) { m.setOpacity(inst, v) },
		Done:     func(h anim.Handle) { m.transition(s, signalFadeInDone, h) },
	})
}

// hide cancels any fade-in and fades the tooltip out from its
// current opacity, despawning it right away for an instant fade-out.
func (m *Manager) hide(s *source) {
	inst := s.inst
	m.cancel(&inst.fadeIn)
	if s.config.FadeOut.IsInstant() {
		m.despawn(s)
		return
	}
	s.state = FadingOut
	inst.fadeOut = m.Animator.Start(anim.Spec{
		From:     inst.Opacity,
		To:       0,
		Delay:    s.config.FadeOut.Delay,
		Duration: s.config.FadeOut.Duration,
		Set:      func(v float32) { m.setOpacity(inst, v) },
		Done:     func(h anim.Handle) { m.transition(s, signalFadeOutDone, h) },
	})
}

// despawn removes the tooltip of the source, if any, canceling its fades.
func (m *Manager) despawn(s *source) {
	if s.inst != nil {
		m.cancel(&s.inst.fadeIn)
		m.cancel(&s.inst.fadeOut)
		m.Spawner.DespawnTooltip(s.inst.Node)
		s.inst = nil
	}
	s.state = Hidden
}

func (m *Manager) cancel(h *anim.Handle) {
	if *h != 0 {
		m.Animator.Cancel(*h)
		*h = 0
	}
}

func (m *Manager) setOpacity(inst *Instance, v float32) {
	inst.Opacity = v
	m.Nodes.SetOpacity(inst.Node, v)
}

// Update runs the positioning pass. It must run after the layout pass has
// updated node boxes for the frame, and before anything reads the tooltip
// positions. Sources whose node no longer exists are unregistered, and
// tooltips whose source or reference node no longer exists are removed
// immediately. Every remaining tooltip is placed, and only its final
// position is written to its node.
func (m *Manager) Update() {
	for _, s := range m.sources.Values() {
		if !m.Nodes.Exists(s.id) {
			m.Remove(s.id)
			continue
		}
		if s.inst == nil {
			continue
		}
		if !m.Nodes.Exists(s.reference) || !m.Nodes.Exists(s.inst.Node) {
			m.transition(s, signalGone, 0)
			continue
		}
		g, ok := m.Geometry(s.id)
		if !ok {
			continue
		}
		s.inst.Placement = Place(s.config, &g)
		s.inst.Placed = true
		m.Nodes.SetPosition(s.inst.Node, s.inst.Placement.Pos)
	}
}

// Geometry returns the geometry snapshot for placing the current
// tooltip of the given source.
func (m *Manager) Geometry(src scene.NodeID) (Geometry, bool) {
	s, ok := m.sources.ValueByKeyTry(src)
	if !ok || s.inst == nil {
		return Geometry{}, false
	}
	parent, ok := m.Nodes.Box(s.reference)
	if !ok {
		return Geometry{}, false
	}
	tbox, ok := m.Nodes.Box(s.inst.Node)
	if !ok {
		return Geometry{}, false
	}
	g := Geometry{Parent: parent, Size: tbox.Size()}
	g.Viewport, g.HasViewport = m.Nodes.Viewport(s.reference)
	if !m.CursorSize.IsZero() {
		g.Cursor = &Cursor{Pos: m.Pointer, Size: m.CursorSize, Hotspot: m.CursorHotspot}
	}
	return g, true
}
