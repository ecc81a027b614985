// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cursorimg

import (
	"image"
	"path/filepath"
	"testing"

	"cogentcore.org/tooltip/base/iox/imagex"
	"cogentcore.org/tooltip/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "arrow.png")
	require.NoError(t, imagex.Save(image.NewNRGBA(image.Rect(0, 0, 12, 18)), fn))

	c, err := Get(fn, image.Pt(1, 2))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(12, 18), c.Size())
	assert.Equal(t, math32.Vec2(1, 2), c.HotspotOffset())

	same, err := Get(fn, image.Pt(1, 2))
	require.NoError(t, err)
	assert.Same(t, c, same)

	other, err := Get(fn, image.Pt(3, 3))
	require.NoError(t, err)
	assert.NotSame(t, c, other)
	assert.Equal(t, image.Pt(3, 3), other.Hotspot)
	assert.Equal(t, image.Pt(1, 2), c.Hotspot)

	_, err = Get(filepath.Join(t.TempDir(), "missing.png"), image.Point{})
	assert.Error(t, err)

	fn = filepath.Join(t.TempDir(), "small.png")
	require.NoError(t, imagex.Save(image.NewNRGBA(image.Rect(0, 0, 4, 4)), fn))
	_, err = Get(fn, image.Pt(4, 0))
	assert.Error(t, err)
}
