// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

// DebugSettings are the currently active debugging settings.
var DebugSettings = &DebugSettingsData{}

// DebugSettingsData are debugging settings.
type DebugSettingsData struct {

	// Print a trace of tooltip lifecycle transitions
	TraceLifecycle bool

	// Print a trace of each tooltip placement and its correction stages
	TracePlacement bool
}
