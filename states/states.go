// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the GUI states of nodes, such as
// Hovered and Active, that tooltip sources can require before
// their tooltip is shown.
package states

import (
	"fmt"
	"strings"
)

// States are GUI states of nodes that are relevant for
// whether a tooltip should be displayed.
// The constants are bit indexes; a States value used as a set
// has bit 1<<s set for each state s it contains.
type States int64

const (
	// Disabled nodes cannot be interacted with or selected, but do display
	Disabled States = iota

	// Selected nodes have been marked for clipboard or other such actions
	Selected

	// Active nodes are currently being interacted with,
	// including a button being pressed, or a node being dragged
	Active

	// Focused nodes receive keyboard input
	Focused

	// Checked is for check boxes or radio buttons or other similar state
	Checked

	// Hovered indicates that a mouse pointer has entered the space over
	// a node, but it is not Active
	Hovered

	// LongHovered indicates a Hover that persists without significant
	// movement for a minimum period of time
	LongHovered

	// Dragged indicates a node that is currently being dragged
	Dragged

	statesN
)

var statesNames = [...]string{"Disabled", "Selected", "Active", "Focused", "Checked", "Hovered", "LongHovered", "Dragged"}

// StatesValues returns all possible values for the type States.
func StatesValues() []States {
	vals := make([]States, statesN)
	for i := range vals {
		vals[i] = States(i)
	}
	return vals
}

// Mask returns the bit for this single state.
func (i States) Mask() States {
	return 1 << i
}

// HasFlag returns whether these bit flags have the given bit flag set.
func (i States) HasFlag(f States) bool {
	return i&(1<<f) != 0
}

// SetFlag sets the value of the given flags in these flags to the given value.
func (i *States) SetFlag(on bool, f ...States) {
	var mask States
	for _, v := range f {
		mask |= 1 << v
	}
	if on {
		*i |= mask
	} else {
		*i &^= mask
	}
}

// HasAll returns whether every state set in required is also set in i.
// An empty required set is always satisfied.
func (i States) HasAll(required States) bool {
	return i&required == required
}

// BitIndexString returns the string representation of a single state bit index.
func (i States) BitIndexString() string {
	if i >= 0 && i < statesN {
		return statesNames[i]
	}
	return fmt.Sprintf("States(%d)", int64(i))
}

// String returns the set as a "|" separated list of state names.
func (i States) String() string {
	var names []string
	for _, s := range StatesValues() {
		if i.HasFlag(s) {
			names = append(names, s.BitIndexString())
		}
	}
	return strings.Join(names, "|")
}

// SetString sets the set from its string representation,
// a list of state names separated by "|" or ",".
// It returns an error for an unknown state name.
func (i *States) SetString(s string) error {
	*i = 0
	return i.SetStringOr(s)
}

// SetStringOr adds the states named in s to the set.
func (i *States) SetStringOr(s string) error {
	flds := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	for _, fld := range flds {
		fld = strings.TrimSpace(fld)
		if fld == "" {
			continue
		}
		found := false
		for j, nm := range statesNames {
			if strings.EqualFold(nm, fld) {
				i.SetFlag(true, States(j))
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%q is not a valid value for type States", fld)
		}
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i States) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *States) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
