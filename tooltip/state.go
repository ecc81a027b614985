// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import "fmt"

// State is the visibility state of the tooltip of a source.
type State int32

const (
	// Hidden means no tooltip instance exists.
	Hidden State = iota

	// FadingIn means the instance exists and its fade-in is in progress,
	// including its delay.
	FadingIn

	// Visible means the instance is fully shown.
	Visible

	// FadingOut means the instance is fading out and is removed
	// once the fade-out completes.
	FadingOut
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case FadingIn:
		return "FadingIn"
	case Visible:
		return "Visible"
	case FadingOut:
		return "FadingOut"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}
