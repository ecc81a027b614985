// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"fmt"
	"strings"

	"cogentcore.org/tooltip/math32"
)

// Anchor is the point on the reference node's box that
// a tooltip is positioned against.
type Anchor int32

const (
	// TopCenter is the center of the top edge of the reference node.
	// It is the default anchor.
	TopCenter Anchor = iota

	// TopLeft is the top-left corner of the reference node.
	TopLeft

	// TopRight is the top-right corner of the reference node.
	TopRight

	// LeftCenter is the center of the left edge of the reference node.
	LeftCenter

	// RightCenter is the center of the right edge of the reference node.
	RightCenter

	// BottomLeft is the bottom-left corner of the reference node.
	BottomLeft

	// BottomCenter is the center of the bottom edge of the reference node.
	BottomCenter

	// BottomRight is the bottom-right corner of the reference node.
	BottomRight

	// CenterAlignTop is the center of the reference node,
	// with the top edge of the tooltip aligned to it.
	CenterAlignTop

	// CenterAlignLeft is the center of the reference node,
	// with the left edge of the tooltip aligned to it.
	CenterAlignLeft

	// CenterAlignBottom is the center of the reference node,
	// with the bottom edge of the tooltip aligned to it.
	CenterAlignBottom

	// CenterAlignRight is the center of the reference node,
	// with the right edge of the tooltip aligned to it.
	CenterAlignRight

	anchorN
)

var anchorNames = [...]string{"TopCenter", "TopLeft", "TopRight", "LeftCenter", "RightCenter", "BottomLeft", "BottomCenter", "BottomRight", "CenterAlignTop", "CenterAlignLeft", "CenterAlignBottom", "CenterAlignRight"}

// anchorMirrors maps each anchor to the anchor on the opposite side
// of the reference node.
var anchorMirrors = [...]Anchor{
	TopCenter:         BottomCenter,
	TopLeft:           BottomLeft,
	TopRight:          BottomRight,
	LeftCenter:        RightCenter,
	RightCenter:       LeftCenter,
	BottomLeft:        TopLeft,
	BottomCenter:      TopCenter,
	BottomRight:       TopRight,
	CenterAlignTop:    CenterAlignBottom,
	CenterAlignLeft:   CenterAlignRight,
	CenterAlignBottom: CenterAlignTop,
	CenterAlignRight:  CenterAlignLeft,
}

// AnchorValues returns all possible values for the type Anchor.
func AnchorValues() []Anchor {
	vals := make([]Anchor, anchorN)
	for i := range vals {
		vals[i] = Anchor(i)
	}
	return vals
}

// String returns the string representation of this Anchor value.
func (a Anchor) String() string {
	if a >= 0 && a < anchorN {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", int32(a))
}

// SetString sets the Anchor value from its string representation,
// and returns an error if the string is invalid.
func (a *Anchor) SetString(s string) error {
	for i, nm := range anchorNames {
		if strings.EqualFold(nm, s) {
			*a = Anchor(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Anchor", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (a Anchor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (a *Anchor) UnmarshalText(text []byte) error {
	return a.SetString(string(text))
}

// Mirror returns the anchor on the opposite side of the reference node,
// used as the single fallback when a tooltip cannot stay where it is.
// Mirror is its own inverse.
func (a Anchor) Mirror() Anchor {
	if a < 0 || a >= anchorN {
		return a
	}
	return anchorMirrors[a]
}

// Side is an edge of a box.
type Side int32

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Facing returns the edge of the tooltip that faces the anchor point,
// which is the edge the alignment point lies on.
func (a Anchor) Facing() Side {
	switch a {
	case TopCenter, TopLeft, TopRight, CenterAlignBottom:
		return SideBottom
	case BottomCenter, BottomLeft, BottomRight, CenterAlignTop:
		return SideTop
	case LeftCenter, CenterAlignRight:
		return SideRight
	default:
		return SideLeft
	}
}

// Axis returns the dimension along which the tooltip extends away from
// the anchor point: Y for anchors whose tooltip sits above or below,
// X for anchors whose tooltip sits to the left or right.
func (a Anchor) Axis() math32.Dims {
	switch a.Facing() {
	case SideTop, SideBottom:
		return math32.Y
	default:
		return math32.X
	}
}

// Direction returns the unit vector pointing from the anchor point
// into the tooltip, away from the reference node for edge anchors.
func (a Anchor) Direction() math32.Vector2 {
	switch a.Facing() {
	case SideBottom:
		return math32.Vec2(0, -1)
	case SideTop:
		return math32.Vec2(0, 1)
	case SideRight:
		return math32.Vec2(-1, 0)
	default:
		return math32.Vec2(1, 0)
	}
}

// Alignment is which point on the tooltip's edge facing the
// reference node is placed at the anchor point. Without any offset,
// the anchor point and alignment point coincide.
type Alignment int32

const (
	// Start is the left end of a horizontal facing edge (Top*, Bottom*
	// and CenterAlignTop/Bottom anchors), or the top end of a vertical
	// facing edge (LeftCenter, RightCenter and CenterAlignLeft/Right anchors).
	Start Alignment = iota

	// Center is the center of the facing edge. It is the default alignment.
	Center

	// End is the right end of a horizontal facing edge, or the
	// bottom end of a vertical facing edge.
	End

	alignmentN
)

var alignmentNames = [...]string{"Start", "Center", "End"}

// AlignmentValues returns all possible values for the type Alignment.
func AlignmentValues() []Alignment {
	return []Alignment{Start, Center, End}
}

// String returns the string representation of this Alignment value.
func (al Alignment) String() string {
	if al >= 0 && al < alignmentN {
		return alignmentNames[al]
	}
	return fmt.Sprintf("Alignment(%d)", int32(al))
}

// SetString sets the Alignment value from its string representation,
// and returns an error if the string is invalid.
func (al *Alignment) SetString(s string) error {
	for i, nm := range alignmentNames {
		if strings.EqualFold(nm, s) {
			*al = Alignment(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Alignment", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (al Alignment) MarshalText() ([]byte, error) {
	return []byte(al.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (al *Alignment) UnmarshalText(text []byte) error {
	return al.SetString(string(text))
}

// fraction returns the position of the alignment point along the
// facing edge as a fraction of the edge length.
func (al Alignment) fraction() float32 {
	switch al {
	case Start:
		return 0
	case End:
		return 1
	default:
		return 0.5
	}
}
