// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/tooltip/base/errors"
	"cogentcore.org/tooltip/base/iox/imagex"
	"cogentcore.org/tooltip/events"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/states"
	"cogentcore.org/tooltip/tooltip"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// snapshotOptions are the options of the snapshot command.
type snapshotOptions struct {
	output  string
	scale   float32
	pointer []float32
	force   bool
}

func newSnapshotCmd() *cobra.Command {
	opts := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot <scene file>",
		Short: "Show every tooltip of a scene file and render the result to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadScene(args[0])
			if err != nil {
				return err
			}
			img, err := ds.snapshot(opts)
			if err != nil {
				return err
			}
			if err := imagex.Save(img, opts.output); err != nil {
				return err
			}
			slog.Info("saved snapshot", "file", opts.output, "size", img.Bounds().Size())
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&opts.output, "output", "o", "snapshot.png", "output image file (.png, .jpg, .gif, .tiff or .bmp)")
	fs.Float32Var(&opts.scale, "scale", 2, "pixels per scene unit")
	fs.Float32SliceVar(&opts.pointer, "pointer", nil, "pointer position x,y for cursor avoidance (no cursor if unset)")
	fs.BoolVar(&opts.force, "force", false, "give every source its required states")
	return cmd
}

// showAll shows the tooltip of every source, completes every fade,
// and runs one positioning pass.
func (ds *demoScene) showAll(opts *snapshotOptions) error {
	m := ds.manager
	pointer, hasPointer := math32.Vector2{}, false
	if opts.pointer != nil {
		p, err := vec(opts.pointer, "pointer")
		if err != nil {
			return err
		}
		pointer, hasPointer = p, true
	} else {
		m.CursorSize = math32.Vector2{}
	}
	for _, src := range m.Sources() {
		if n, ok := ds.tree.Node(src); ok && opts.force {
			cfg, _ := m.Config(src)
			n.States |= cfg.State
		}
		pos := pointer
		if !hasPointer {
			b, _ := ds.tree.Box(src)
			pos = b.Center()
		}
		m.HandleEvent(events.New(events.PointerEnter, src, pos))
		if m.State(src) == tooltip.Hidden {
			slog.Warn("tooltip not shown: source lacks its required states or reference", "source", ds.name(src))
		}
	}
	ds.engine.Advance(time.Hour)
	m.Update()
	return nil
}

// snapshot shows every tooltip and renders the scene.
func (ds *demoScene) snapshot(opts *snapshotOptions) (*image.RGBA, error) {
	if err := ds.showAll(opts); err != nil {
		return nil, err
	}
	bb, ok := ds.bounds()
	if !ok {
		return nil, errors.New("scene has no cameras or root nodes to render")
	}
	if opts.scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %v", opts.scale)
	}
	r := newRenderer(bb, opts.scale)
	for _, vp := range ds.tree.Cameras {
		r.outline(vp, cameraColor)
	}
	for _, n := range ds.tree.Nodes() {
		if n.IsTooltip() {
			continue
		}
		fill := nodeColor
		if n.States.HasFlag(states.Hovered) {
			fill = hoveredColor
		}
		r.fill(n.Box, fill)
		r.outline(n.Box, borderColor)
		r.label(n.Box, n.Name, textColor)
	}
	for _, n := range ds.tree.Nodes() {
		if !n.IsTooltip() {
			continue
		}
		r.fill(n.Box, withOpacity(tooltipColor, n.Opacity))
		r.outline(n.Box, withOpacity(borderColor, n.Opacity))
		r.label(n.Box, ds.name(n.Source), withOpacity(textColor, n.Opacity))
	}
	if opts.pointer != nil && !ds.manager.CursorSize.IsZero() {
		cursor := math32.B2PosSize(ds.manager.Pointer.Sub(ds.manager.CursorHotspot), ds.manager.CursorSize)
		if ds.cursor != nil {
			r.image(cursor, ds.cursor.Image)
		}
		r.outline(cursor, cursorColor)
	}
	return r.img, nil
}

var (
	backgroundColor = color.RGBA{250, 250, 250, 255}
	cameraColor     = color.RGBA{66, 133, 244, 255}
	nodeColor       = color.RGBA{224, 224, 224, 255}
	hoveredColor    = color.RGBA{200, 215, 240, 255}
	borderColor     = color.RGBA{97, 97, 97, 255}
	textColor       = color.RGBA{33, 33, 33, 255}
	tooltipColor    = color.RGBA{255, 236, 179, 255}
	cursorColor     = color.RGBA{219, 68, 55, 255}
)

func withOpacity(c color.RGBA, opacity float32) color.NRGBA {
	return color.NRGBA{c.R, c.G, c.B, uint8(math32.Clamp(opacity, 0, 1) * 255)}
}

// renderer draws scene boxes into an image, mapping the scene
// bounds to the whole image at the given scale.
type renderer struct {
	img    *image.RGBA
	origin math32.Vector2
	scale  float32
}

func newRenderer(bounds math32.Box2, scale float32) *renderer {
	r := &renderer{origin: bounds.Min, scale: scale}
	r.img = image.NewRGBA(r.rect(bounds))
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	return r
}

func (r *renderer) point(v math32.Vector2) math32.Vector2 {
	return v.Sub(r.origin).MulScalar(r.scale)
}

func (r *renderer) rect(b math32.Box2) image.Rectangle {
	return math32.Box2{Min: r.point(b.Min), Max: r.point(b.Max)}.ToRect()
}

func (r *renderer) fill(b math32.Box2, c color.Color) {
	draw.Draw(r.img, r.rect(b), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *renderer) outline(b math32.Box2, c color.Color) {
	rect := r.rect(b)
	if rect.Empty() {
		return
	}
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y),
		image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(r.img, e, src, image.Point{}, draw.Over)
	}
}

// image draws img scaled to b.
func (r *renderer) image(b math32.Box2, img image.Image) {
	draw.NearestNeighbor.Scale(r.img, r.rect(b), img, img.Bounds(), draw.Over, nil)
}

// label draws s in the top-left corner of b, clipped to b.
func (r *renderer) label(b math32.Box2, s string, c color.Color) {
	rect := r.rect(b)
	face := basicfont.Face7x13
	m := face.Metrics()
	if s == "" || rect.Dy() < m.Height.Ceil() {
		return
	}
	dst, ok := r.img.SubImage(rect).(*image.RGBA)
	if !ok {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  math32.Vec2(float32(rect.Min.X+3), float32(rect.Min.Y+2)).ToFixed(),
	}
	d.Dot.Y += m.Ascent
	d.DrawString(s)
}
