// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/tooltip/base/iox/tomlx"
	"cogentcore.org/tooltip/base/iox/yamlx"
	"cogentcore.org/tooltip/cursorimg"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
	"cogentcore.org/tooltip/states"
)

// Formats are the supported file formats for configs and scenes.
type Formats int32

const (
	// TOML is the TOML format, for files ending in .toml.
	TOML Formats = iota

	// YAML is the YAML format, for files ending in .yaml or .yml.
	YAML
)

// FormatFromFilename returns the format for the extension of the given filename.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("unsupported file extension %q for %q; expected .toml, .yaml or .yml", filepath.Ext(filename), filename)
}

func open(v any, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	if f == YAML {
		return yamlx.Open(v, filename)
	}
	return tomlx.Open(v, filename)
}

func read(v any, r io.Reader, f Formats) error {
	if f == YAML {
		return yamlx.Read(v, r)
	}
	return tomlx.Read(v, r)
}

// FileFade is the file form of a [Fade], with durations such as "250ms".
type FileFade struct {
	Delay    string `toml:"delay,omitempty" yaml:"delay,omitempty"`
	Duration string `toml:"duration,omitempty" yaml:"duration,omitempty"`
}

// Fade returns the parsed fade.
func (ff *FileFade) Fade() (*Fade, error) {
	if ff == nil {
		return nil, nil
	}
	f := &Fade{}
	var err error
	if ff.Delay != "" {
		if f.Delay, err = time.ParseDuration(ff.Delay); err != nil {
			return nil, fmt.Errorf("fade delay: %w", err)
		}
	}
	if ff.Duration != "" {
		if f.Duration, err = time.ParseDuration(ff.Duration); err != nil {
			return nil, fmt.Errorf("fade duration: %w", err)
		}
	}
	if f.Delay < 0 || f.Duration < 0 {
		return nil, fmt.Errorf("fade delay and duration must not be negative, got %v and %v", f.Delay, f.Duration)
	}
	return f, nil
}

// FileConfig is the file form of a [Config]. Fields that are
// not set keep the values of [NewConfig].
type FileConfig struct {
	State         states.States `toml:"state,omitempty" yaml:"state,omitempty"`
	Anchor        *Anchor       `toml:"anchor,omitempty" yaml:"anchor,omitempty"`
	Alignment     *Alignment    `toml:"alignment,omitempty" yaml:"alignment,omitempty"`
	Offset        [2]float32    `toml:"offset,omitempty" yaml:"offset,omitempty"`
	FadeIn        *FileFade     `toml:"fade_in,omitempty" yaml:"fade_in,omitempty"`
	FadeOut       *FileFade     `toml:"fade_out,omitempty" yaml:"fade_out,omitempty"`
	RemoveOnPress *bool         `toml:"remove_on_press,omitempty" yaml:"remove_on_press,omitempty"`
	ShowOnPress   *bool         `toml:"show_on_press,omitempty" yaml:"show_on_press,omitempty"`
	AvoidCursor   *bool         `toml:"avoid_cursor,omitempty" yaml:"avoid_cursor,omitempty"`
	StayInCamera  *bool         `toml:"stay_in_camera,omitempty" yaml:"stay_in_camera,omitempty"`
	CameraPadding float32       `toml:"camera_padding,omitempty" yaml:"camera_padding,omitempty"`

	// Size is the measured size of the tooltip content, used by scenes.
	Size [2]float32 `toml:"size,omitempty" yaml:"size,omitempty"`
}

// Config returns the config described by the file form.
func (fc *FileConfig) Config() (*Config, error) {
	c := NewConfig()
	c.State = fc.State
	if fc.Anchor != nil {
		c.Anchor = *fc.Anchor
	}
	if fc.Alignment != nil {
		c.Alignment = *fc.Alignment
	}
	c.Offset = math32.Vec2(fc.Offset[0], fc.Offset[1])
	var err error
	if c.FadeIn, err = fc.FadeIn.Fade(); err != nil {
		return nil, fmt.Errorf("fade_in: %w", err)
	}
	if c.FadeOut, err = fc.FadeOut.Fade(); err != nil {
		return nil, fmt.Errorf("fade_out: %w", err)
	}
	setBool(&c.RemoveOnPress, fc.RemoveOnPress)
	setBool(&c.ShowOnPress, fc.ShowOnPress)
	setBool(&c.AvoidCursor, fc.AvoidCursor)
	setBool(&c.StayInCamera, fc.StayInCamera)
	c.CameraPadding = math32.Max(fc.CameraPadding, 0)
	return c, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// OpenConfig opens a tooltip config from the given TOML or YAML file.
func OpenConfig(filename string) (*Config, error) {
	fc := &FileConfig{}
	if err := open(fc, filename); err != nil {
		return nil, err
	}
	c, err := fc.Config()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// FileCamera is a named camera viewport in a [File].
type FileCamera struct {
	Name string `toml:"name" yaml:"name"`

	// Viewport is x, y, width, height.
	Viewport [4]float32 `toml:"viewport" yaml:"viewport"`
}

// FileCursor is a custom cursor in a [File].
type FileCursor struct {

	// Image is an image file of the cursor, relative to the scene file.
	// Its size is the cursor size unless Size is set.
	Image string `toml:"image,omitempty" yaml:"image,omitempty"`

	Size    [2]float32 `toml:"size,omitempty" yaml:"size,omitempty"`
	Hotspot [2]float32 `toml:"hotspot,omitempty" yaml:"hotspot,omitempty"`
}

// FileNode is a node in a [File].
type FileNode struct {
	Name string `toml:"name" yaml:"name"`

	// Parent is the name of an earlier node, or empty for a root node.
	Parent string `toml:"parent,omitempty" yaml:"parent,omitempty"`

	// Box is x, y, width, height.
	Box [4]float32 `toml:"box" yaml:"box"`

	Camera string        `toml:"camera,omitempty" yaml:"camera,omitempty"`
	States states.States `toml:"states,omitempty" yaml:"states,omitempty"`

	// Reference is the name of the node the tooltip is placed against,
	// if not the node itself.
	Reference string `toml:"reference,omitempty" yaml:"reference,omitempty"`

	Tooltip *FileConfig `toml:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// File is a scene description: cameras, an optional custom cursor,
// and nodes, some of which have tooltips.
type File struct {
	Cameras []FileCamera `toml:"cameras" yaml:"cameras"`
	Cursor  *FileCursor  `toml:"cursor,omitempty" yaml:"cursor,omitempty"`
	Nodes   []FileNode   `toml:"nodes" yaml:"nodes"`

	// dir is the directory of the scene file, for relative paths.
	dir string
}

// OpenFile opens a scene file in TOML or YAML format.
func OpenFile(filename string) (*File, error) {
	f := &File{}
	if err := open(f, filename); err != nil {
		return nil, err
	}
	f.dir = filepath.Dir(filename)
	return f, nil
}

// ReadFile reads a scene file in the given format.
// Relative paths in it are relative to the current directory.
func ReadFile(r io.Reader, format Formats) (*File, error) {
	f := &File{}
	if err := read(f, r, format); err != nil {
		return nil, err
	}
	return f, nil
}

// CursorImage returns the custom cursor image of the file,
// or nil if it has none.
func (f *File) CursorImage() (*cursorimg.Cursor, error) {
	if f.Cursor == nil || f.Cursor.Image == "" {
		return nil, nil
	}
	fn := f.Cursor.Image
	if !filepath.IsAbs(fn) {
		fn = filepath.Join(f.dir, fn)
	}
	hot := math32.Vec2(f.Cursor.Hotspot[0], f.Cursor.Hotspot[1]).ToPointRound()
	return cursorimg.Get(fn, hot)
}

func xywh(v [4]float32) math32.Box2 {
	return math32.B2XYWH(v[0], v[1], v[2], v[3])
}

// Build adds the cameras and nodes of the file to tree, registers the
// tooltips with m, and sets the custom cursor of m. Parent and reference
// names must refer to nodes listed earlier in the file.
func (f *File) Build(tree *scene.Tree, m *Manager) error {
	for _, c := range f.Cameras {
		tree.AddCamera(c.Name, xywh(c.Viewport))
	}
	if f.Cursor != nil {
		m.CursorSize = math32.Vec2(f.Cursor.Size[0], f.Cursor.Size[1])
		m.CursorHotspot = math32.Vec2(f.Cursor.Hotspot[0], f.Cursor.Hotspot[1])
		cur, err := f.CursorImage()
		if err != nil {
			return err
		}
		if cur != nil && m.CursorSize.IsZero() {
			m.CursorSize = cur.Size()
		}
	}
	byName := map[string]scene.NodeID{}
	lookup := func(name, what, node string) (scene.NodeID, error) {
		if name == "" {
			return scene.NoNode, nil
		}
		id, ok := byName[name]
		if !ok {
			return scene.NoNode, fmt.Errorf("node %q: unknown %s %q", node, what, name)
		}
		return id, nil
	}
	for _, fn := range f.Nodes {
		if fn.Camera != "" {
			if _, ok := tree.Cameras[fn.Camera]; !ok {
				return fmt.Errorf("node %q: unknown camera %q", fn.Name, fn.Camera)
			}
		}
		parent, err := lookup(fn.Parent, "parent", fn.Name)
		if err != nil {
			return err
		}
		id := tree.Add(parent, fn.Name, xywh(fn.Box))
		n, _ := tree.Node(id)
		n.Camera = fn.Camera
		n.States = fn.States
		if fn.Name != "" {
			byName[fn.Name] = id
		}
		if fn.Tooltip == nil {
			continue
		}
		ref, err := lookup(fn.Reference, "reference", fn.Name)
		if err != nil {
			return err
		}
		if ref == scene.NoNode {
			ref = id
		}
		cfg, err := fn.Tooltip.Config()
		if err != nil {
			return fmt.Errorf("node %q: %w", fn.Name, err)
		}
		if tree.TooltipSizes == nil {
			tree.TooltipSizes = map[scene.NodeID]math32.Vector2{}
		}
		tree.TooltipSizes[id] = math32.Vec2(fn.Tooltip.Size[0], fn.Tooltip.Size[1])
		m.AddReference(id, ref, cfg)
	}
	return nil
}
