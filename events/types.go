// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"strings"
)

// Types determines the type of input signal delivered to a tooltip source.
// Signals arrive as discrete, ordered events, each naming the target node.
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// PointerEnter is when the pointer enters the box of a node.
	PointerEnter

	// PointerLeave is when the pointer leaves the box of a node
	// that previously had a PointerEnter event.
	PointerLeave

	// Pressed is when a pointer button is pressed down on a node.
	Pressed

	// Released is when a pointer button that was pressed on a node
	// is released.
	Released

	// PressCanceled is when a press on a node ends without a release
	// on it, for example because the pointer was dragged away.
	PressCanceled

	// PointerMove is when the pointer moves, without a change of target.
	// It only updates the known cursor position.
	PointerMove

	typesN
)

var typesNames = [...]string{"UnknownType", "PointerEnter", "PointerLeave", "Pressed", "Released", "PressCanceled", "PointerMove"}

// TypesValues returns all possible values for the type Types.
func TypesValues() []Types {
	vals := make([]Types, typesN)
	for i := range vals {
		vals[i] = Types(i)
	}
	return vals
}

// String returns the string representation of this Types value.
func (i Types) String() string {
	if i >= 0 && i < typesN {
		return typesNames[i]
	}
	return fmt.Sprintf("Types(%d)", int32(i))
}

// SetString sets the Types value from its string representation,
// and returns an error if the string is invalid.
func (i *Types) SetString(s string) error {
	for j, nm := range typesNames {
		if strings.EqualFold(nm, s) {
			*i = Types(j)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Types", s)
}
