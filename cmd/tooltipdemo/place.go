// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/tooltip"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// placeFlags are the inputs of the place command.
type placeFlags struct {
	config     string
	parent     []float32
	size       []float32
	viewport   []float32
	anchor     string
	align      string
	offset     []float32
	padding    float32
	cursorPos  []float32
	cursorSize []float32
	hotspot    []float32
	noAvoid    bool
	noCamera   bool
}

func newPlaceCmd() *cobra.Command {
	pf := &placeFlags{}
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute the placement of one tooltip and print every stage",
		Example: "  tooltipdemo place --parent 100,100,50,20 --size 40,10 --viewport 0,0,200,200\n" +
			"  tooltipdemo place --parent 80,5,40,20 --size 40,10 --offset 0,-5 --viewport 0,0,200,200 --padding 4",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := pf.build(cmd)
			if err != nil {
				return err
			}
			pl := tooltip.Place(cfg, g)
			printPlacement(cmd.OutOrStdout(), cfg, g, &pl)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&pf.config, "config", "", "tooltip config file (.toml, .yaml) to start from")
	fs.Float32SliceVar(&pf.parent, "parent", nil, "reference node box: x,y,w,h")
	fs.Float32SliceVar(&pf.size, "size", nil, "tooltip size: w,h")
	fs.Float32SliceVar(&pf.viewport, "viewport", nil, "camera viewport: x,y,w,h (none if unset)")
	fs.StringVar(&pf.anchor, "anchor", "", "anchor point on the reference node, such as TopCenter")
	fs.StringVar(&pf.align, "align", "", "alignment: Start, Center or End")
	fs.Float32SliceVar(&pf.offset, "offset", nil, "offset from the anchor point: x,y")
	fs.Float32Var(&pf.padding, "padding", 0, "camera padding")
	fs.Float32SliceVar(&pf.cursorPos, "cursor", nil, "pointer position: x,y")
	fs.Float32SliceVar(&pf.cursorSize, "cursor-size", []float32{16, 16}, "cursor size: w,h")
	fs.Float32SliceVar(&pf.hotspot, "hotspot", []float32{0, 0}, "cursor hotspot: x,y")
	fs.BoolVar(&pf.noAvoid, "no-avoid", false, "disable cursor avoidance")
	fs.BoolVar(&pf.noCamera, "no-camera", false, "disable viewport containment")
	cobra.CheckErr(cmd.MarkFlagRequired("parent"))
	cobra.CheckErr(cmd.MarkFlagRequired("size"))
	return cmd
}

// build returns the config and geometry described by the flags.
func (pf *placeFlags) build(cmd *cobra.Command) (*tooltip.Config, *tooltip.Geometry, error) {
	cfg := tooltip.NewConfig()
	if pf.config != "" {
		var err error
		if cfg, err = tooltip.OpenConfig(pf.config); err != nil {
			return nil, nil, err
		}
	}
	if pf.anchor != "" {
		if err := cfg.Anchor.SetString(pf.anchor); err != nil {
			return nil, nil, err
		}
	}
	if pf.align != "" {
		if err := cfg.Alignment.SetString(pf.align); err != nil {
			return nil, nil, err
		}
	}
	if cmd.Flags().Changed("offset") {
		off, err := vec(pf.offset, "offset")
		if err != nil {
			return nil, nil, err
		}
		cfg.Offset = off
	}
	if cmd.Flags().Changed("padding") {
		cfg.CameraPadding = pf.padding
	}
	if pf.noAvoid {
		cfg.AvoidCursor = false
	}
	if pf.noCamera {
		cfg.StayInCamera = false
	}

	g := &tooltip.Geometry{}
	var err error
	if g.Parent, err = box(pf.parent, "parent"); err != nil {
		return nil, nil, err
	}
	if g.Size, err = vec(pf.size, "size"); err != nil {
		return nil, nil, err
	}
	if pf.viewport != nil {
		if g.Viewport, err = box(pf.viewport, "viewport"); err != nil {
			return nil, nil, err
		}
		g.HasViewport = true
	}
	if pf.cursorPos != nil {
		c := &tooltip.Cursor{}
		if c.Pos, err = vec(pf.cursorPos, "cursor"); err != nil {
			return nil, nil, err
		}
		if c.Size, err = vec(pf.cursorSize, "cursor-size"); err != nil {
			return nil, nil, err
		}
		if c.Hotspot, err = vec(pf.hotspot, "hotspot"); err != nil {
			return nil, nil, err
		}
		g.Cursor = c
	}
	return cfg, g, nil
}

func vec(v []float32, name string) (math32.Vector2, error) {
	if len(v) != 2 {
		return math32.Vector2{}, fmt.Errorf("--%s needs 2 values, got %d", name, len(v))
	}
	return math32.Vec2(v[0], v[1]), nil
}

func box(v []float32, name string) (math32.Box2, error) {
	if len(v) != 4 {
		return math32.Box2{}, fmt.Errorf("--%s needs 4 values (x,y,w,h), got %d", name, len(v))
	}
	return math32.B2XYWH(v[0], v[1], v[2], v[3]), nil
}

// printPlacement writes every stage of pl to w, with terminal colors
// when w supports them.
func printPlacement(w io.Writer, cfg *tooltip.Config, g *tooltip.Geometry, pl *tooltip.Placement) {
	out := termenv.NewOutput(w)
	label := func(s string) string {
		return out.String(fmt.Sprintf("%-9s", s)).Bold().String()
	}
	note := func(s string) string {
		return out.String(s).Foreground(out.Color("#e5c07b")).String()
	}
	fmt.Fprintf(w, "%s %v  anchor %v  align %v  offset %v\n", label("resolved"), pl.Resolved, cfg.Anchor, cfg.Alignment, cfg.Offset)
	switch {
	case !cfg.AvoidCursor:
		fmt.Fprintf(w, "%s %v  (disabled)\n", label("avoided"), pl.Avoided)
	case g.Cursor == nil:
		fmt.Fprintf(w, "%s %v  (no cursor)\n", label("avoided"), pl.Avoided)
	default:
		fmt.Fprintf(w, "%s %v  %s\n", label("avoided"), pl.Avoided, note(pl.Avoid.String()))
	}
	cam := pl.Camera
	switch {
	case !cfg.StayInCamera:
		fmt.Fprintf(w, "%s %v  (disabled)\n", label("camera"), pl.Pos)
	case !g.HasViewport:
		fmt.Fprintf(w, "%s %v  (no viewport)\n", label("camera"), pl.Pos)
	default:
		fmt.Fprintf(w, "%s %v  padding %v  pushed %v", label("camera"), pl.Pos, cam.Padding, cam.Pushed)
		if cam.Flipped {
			fmt.Fprintf(w, "  %s", note("flipped"))
		}
		for _, d := range []math32.Dims{math32.X, math32.Y} {
			if cam.Clamped[d] {
				fmt.Fprintf(w, "  %s", note("clamped "+d.String()))
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%s %v  anchor %v\n", label("final"), pl.Box(g.Size), pl.Target.Anchor)
}
