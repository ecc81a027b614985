// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursorimg provides the cached loading of custom cursor images,
// which give the cursor size used to keep tooltips off the cursor.
package cursorimg

import (
	"fmt"
	"image"
	"sync"

	"cogentcore.org/tooltip/base/iox/imagex"
	"cogentcore.org/tooltip/math32"
)

// Cursor represents a cached custom cursor, with the [image.Image]
// of the cursor and its hotspot.
type Cursor struct {

	// The image of the cursor.
	Image image.Image

	// The hotspot in pixels from the top-left corner of the image.
	// It is the point that is placed at the pointer position.
	Hotspot image.Point
}

// key is the cache key of a cursor.
type key struct {
	filename string
	hotspot  image.Point
}

var (
	// Cursors contains all of the cached cursors by filename and hotspot.
	Cursors = map[key]*Cursor{}

	cursorsMu sync.Mutex
)

// Get returns the cursor with the image in the given file and the given
// hotspot. If it is not already cached in [Cursors], it opens and caches it.
// The same image with different hotspots gives different cursors.
func Get(filename string, hotspot image.Point) (*Cursor, error) {
	cursorsMu.Lock()
	defer cursorsMu.Unlock()
	k := key{filename, hotspot}
	if c, ok := Cursors[k]; ok {
		return c, nil
	}
	img, _, err := imagex.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening image file for cursor %q: %w", filename, err)
	}
	if !hotspot.In(img.Bounds().Sub(img.Bounds().Min)) {
		return nil, fmt.Errorf("cursor %q: hotspot %v is outside of the %v image", filename, hotspot, img.Bounds().Size())
	}
	c := &Cursor{Image: img, Hotspot: hotspot}
	Cursors[k] = c
	return c, nil
}

// Size returns the size of the cursor image.
func (c *Cursor) Size() math32.Vector2 {
	return math32.Vector2FromPoint(c.Image.Bounds().Size())
}

// HotspotOffset returns the hotspot as a vector.
func (c *Cursor) HotspotOffset() math32.Vector2 {
	return math32.Vector2FromPoint(c.Hotspot)
}
