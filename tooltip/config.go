// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"time"

	"cogentcore.org/tooltip/base/errors"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/states"
	"github.com/jinzhu/copier"
)

// Fade is the timing of a tooltip opacity transition.
type Fade struct {

	// Delay is how long to wait before the opacity starts changing.
	Delay time.Duration

	// Duration is how long the opacity takes to change.
	Duration time.Duration
}

// IsInstant returns whether the fade has no delay and no duration,
// which includes a nil fade.
func (f *Fade) IsInstant() bool {
	return f == nil || (f.Delay <= 0 && f.Duration <= 0)
}

// Config is the tooltip configuration of a source node.
// Use [NewConfig] for a config with the default values.
// A config is copied when it is registered with a [Manager]
// and is read-only from then on.
type Config struct {

	// State is the set of states the source must have
	// for the tooltip to be shown. Empty means no requirement.
	State states.States

	// Anchor is the anchor point on the reference node.
	// Defaults to [TopCenter].
	Anchor Anchor

	// Alignment is the alignment of the tooltip relative to the anchor point.
	// Defaults to [Center].
	Alignment Alignment

	// Offset is the offset from the anchor point to the alignment point.
	// Defaults to no offset.
	Offset math32.Vector2

	// FadeIn is the fade-in timing used when the tooltip appears.
	// Its delay delays the tooltip after the hover starts.
	// Nil is instantaneous.
	FadeIn *Fade

	// FadeOut is the fade-out timing used before the tooltip is removed.
	// Nil is instantaneous.
	FadeOut *Fade

	// RemoveOnPress makes the tooltip fade out when the source is pressed.
	// Defaults to false.
	RemoveOnPress bool

	// ShowOnPress makes a press on the source show the tooltip,
	// like a pointer entering it. Defaults to true.
	ShowOnPress bool

	// AvoidCursor makes the tooltip move off the cursor when it would
	// overlap it. It only works when the cursor size and hotspot are known.
	// Defaults to true.
	AvoidCursor bool

	// StayInCamera makes the tooltip stay inside the viewport of the
	// camera its reference node renders to. Defaults to true.
	StayInCamera bool

	// CameraPadding is the minimum distance between the tooltip and the
	// viewport edges when StayInCamera is set. It shrinks toward zero when
	// the viewport is too small for both the tooltip and the padding.
	// Defaults to 0.
	CameraPadding float32
}

// NewConfig returns a new config with the default values.
func NewConfig() *Config {
	return &Config{
		Anchor:       TopCenter,
		Alignment:    Center,
		ShowOnPress:  true,
		AvoidCursor:  true,
		StayInCamera: true,
	}
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	nc := &Config{}
	errors.Log(copier.CopyWithOption(nc, c, copier.Option{DeepCopy: true}))
	return nc
}

// Target returns the anchor, alignment and offset of the config.
func (c *Config) Target() Target {
	return Target{Anchor: c.Anchor, Alignment: c.Alignment, Offset: c.Offset}
}

// SetState sets the [Config.State] to the given required states.
func (c *Config) SetState(s ...states.States) *Config {
	c.State = 0
	c.State.SetFlag(true, s...)
	return c
}

// SetAnchor sets the [Config.Anchor].
func (c *Config) SetAnchor(a Anchor) *Config {
	c.Anchor = a
	return c
}

// SetAlignment sets the [Config.Alignment].
func (c *Config) SetAlignment(al Alignment) *Config {
	c.Alignment = al
	return c
}

// SetOffset sets the [Config.Offset].
func (c *Config) SetOffset(offset math32.Vector2) *Config {
	c.Offset = offset
	return c
}

// SetFadeIn sets the [Config.FadeIn] timing.
func (c *Config) SetFadeIn(delay, duration time.Duration) *Config {
	c.FadeIn = &Fade{Delay: delay, Duration: duration}
	return c
}

// SetFadeOut sets the [Config.FadeOut] timing.
func (c *Config) SetFadeOut(delay, duration time.Duration) *Config {
	c.FadeOut = &Fade{Delay: delay, Duration: duration}
	return c
}

// SetRemoveOnPress sets [Config.RemoveOnPress].
func (c *Config) SetRemoveOnPress(v bool) *Config {
	c.RemoveOnPress = v
	return c
}

// SetCameraPadding sets [Config.CameraPadding].
func (c *Config) SetCameraPadding(v float32) *Config {
	c.CameraPadding = v
	return c
}
