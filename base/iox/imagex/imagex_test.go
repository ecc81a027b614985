// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".JPG")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	f, err = ExtToFormat("tif")
	assert.NoError(t, err)
	assert.Equal(t, TIFF, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "BMP", BMP.String())
}

func TestSaveOpen(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 8, 4))
	im.Set(2, 1, color.RGBA{255, 0, 0, 255})
	dir := t.TempDir()
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(dir, "im"+ext)
		require.NoError(t, Save(im, fn))
		got, f, err := Open(fn)
		require.NoError(t, err)
		want, _ := ExtToFormat(ext)
		assert.Equal(t, want, f)
		assert.Equal(t, im.Bounds(), got.Bounds())
		r, g, b, a := got.At(2, 1).RGBA()
		assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a}, ext)
	}
	assert.Error(t, Save(im, filepath.Join(dir, "im.svg")))
	assert.Error(t, Write(im, &bytes.Buffer{}, WebP))
}
