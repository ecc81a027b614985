// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlags(t *testing.T) {
	var s States
	s.SetFlag(true, Hovered, Active)
	assert.True(t, s.HasFlag(Hovered))
	assert.True(t, s.HasFlag(Active))
	assert.False(t, s.HasFlag(Disabled))
	assert.Equal(t, "Active|Hovered", s.String())

	s.SetFlag(false, Active)
	assert.Equal(t, Hovered.Mask(), s)
}

func TestHasAll(t *testing.T) {
	var have, req States
	assert.True(t, have.HasAll(req))

	req.SetFlag(true, Hovered, Selected)
	assert.False(t, have.HasAll(req))
	have.SetFlag(true, Hovered)
	assert.False(t, have.HasAll(req))
	have.SetFlag(true, Selected, Focused)
	assert.True(t, have.HasAll(req))
}

func TestSetString(t *testing.T) {
	var s States
	require.NoError(t, s.SetString("hovered|Selected"))
	assert.True(t, s.HasFlag(Hovered))
	assert.True(t, s.HasFlag(Selected))

	require.NoError(t, s.UnmarshalText([]byte("Checked, Dragged")))
	assert.Equal(t, "Checked|Dragged", s.String())

	require.NoError(t, s.SetString(""))
	assert.Equal(t, States(0), s)

	assert.Error(t, s.SetString("Hovered|Bogus"))
	assert.Equal(t, "States(42)", States(42).BitIndexString())
}
