// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/tooltip/base/logx"
	"cogentcore.org/tooltip/events"
	"cogentcore.org/tooltip/math32"
	"cogentcore.org/tooltip/scene"
	"cogentcore.org/tooltip/states"
	"cogentcore.org/tooltip/tooltip"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

// runOptions are the options of the run command.
type runOptions struct {
	cell    []float32
	fps     int
	watch   bool
	logFile string
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run <scene file>",
		Short: "Run a scene file interactively in the terminal",
		Long: "Run draws the nodes of a scene file as terminal cells. Moving the mouse over\n" +
			"a node hovers it and pressing the left button presses it, so that tooltips\n" +
			"appear, fade and move as configured. Press q or Esc to quit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScene(args[0], opts)
		},
	}
	fs := cmd.Flags()
	fs.Float32SliceVar(&opts.cell, "cell", []float32{4, 8}, "scene units per terminal cell: w,h")
	fs.IntVar(&opts.fps, "fps", 60, "frames per second")
	fs.BoolVarP(&opts.watch, "watch", "w", false, "reload the scene file when it changes")
	fs.StringVar(&opts.logFile, "log", "", "file to write log messages to while running")
	return cmd
}

// runScene runs the pass loop: every frame it drains the input events
// queued by the input goroutine, advances the fades, runs the
// positioning pass, and draws the scene.
func runScene(filename string, opts *runOptions) error {
	cell, err := vec(opts.cell, "cell")
	if err != nil {
		return err
	}
	if cell.X <= 0 || cell.Y <= 0 || opts.fps <= 0 {
		return fmt.Errorf("cell size and fps must be positive")
	}
	ds, err := loadScene(filename)
	if err != nil {
		return err
	}

	// the screen owns the terminal, so log to a file or nowhere
	var logw io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logw = f
	}
	prevLogger := slog.Default()
	slog.SetDefault(slog.New(logx.NewHandler(logw)))
	defer slog.SetDefault(prevLogger)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var queue events.Queue
	queue.Init()
	keys := make(chan *tcell.EventKey, 16)
	resized := make(chan struct{}, 1)
	go pollInput(screen, &queue, keys, resized, cell)

	reloaded := make(chan *demoScene, 1)
	if opts.watch {
		stop, err := watchScene(filename, reloaded)
		if err != nil {
			return err
		}
		defer stop()
	}

	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case ev := <-keys:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		case <-resized:
			screen.Sync()
		case nds := <-reloaded:
			ds.pointer.Reset(ds.manager.Pointer, ds.listeners.Call)
			ds = nds
		case now := <-ticker.C:
			queue.Drain(ds.raw)
			ds.engine.Advance(now.Sub(last))
			last = now
			ds.manager.Update()
			ds.draw(screen, cell)
		}
	}
}

// pollInput reads terminal events until the screen is finalized,
// sending raw pointer events to the queue.
func pollInput(screen tcell.Screen, queue *events.Queue, keys chan<- *tcell.EventKey, resized chan<- struct{}, cell math32.Vector2) {
	down := false
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventMouse:
			x, y := ev.Position()
			pos := math32.Vec2((float32(x)+0.5)*cell.X, (float32(y)+0.5)*cell.Y)
			typ := events.PointerMove
			pressed := ev.Buttons()&tcell.Button1 != 0
			switch {
			case pressed && !down:
				typ = events.Pressed
			case !pressed && down:
				typ = events.Released
			}
			down = pressed
			queue.Send(events.New(typ, scene.NoNode, pos))
		case *tcell.EventKey:
			keys <- ev
		case *tcell.EventResize:
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}
}

// watchScene reloads the scene file whenever it is written, sending each
// new scene to reloaded. It watches the directory so that editors that
// replace the file are also seen.
func watchScene(filename string, reloaded chan<- *demoScene) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				ds, err := loadScene(abs)
				if err != nil {
					slog.Error("error reloading scene", "err", err)
					continue
				}
				select {
				case reloaded <- ds:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("scene file watcher error", "err", err)
			}
		}
	}()
	return func() { watcher.Close() }, nil
}

var (
	screenBackground = rgb(24, 24, 27)
	screenTooltip    = rgb(255, 236, 179)
	screenText       = tcell.NewRGBColor(230, 230, 230)
)

type rgbColor struct{ r, g, b float32 }

func rgb(r, g, b float32) rgbColor { return rgbColor{r, g, b} }

func (c rgbColor) blend(o rgbColor, t float32) rgbColor {
	return rgbColor{math32.Lerp(c.r, o.r, t), math32.Lerp(c.g, o.g, t), math32.Lerp(c.b, o.b, t)}
}

func (c rgbColor) color() tcell.Color {
	return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
}

// draw draws the nodes as filled cells, the tooltips on top shaded by
// their opacity, and a status line.
func (ds *demoScene) draw(s tcell.Screen, cell math32.Vector2) {
	s.Clear()
	w, h := s.Size()
	for _, n := range ds.tree.Nodes() {
		if n.IsTooltip() {
			continue
		}
		shade := float32(40 + 22*ds.depth(n))
		c := rgb(shade, shade, shade+8)
		switch {
		case n.States.HasFlag(states.Active):
			c = rgb(52, 92, 160)
		case n.States.HasFlag(states.Hovered):
			c = rgb(72, 120, 200)
		}
		st := tcell.StyleDefault.Background(c.color()).Foreground(screenText)
		ds.fillCells(s, n.Box, cell, st, n.Name)
	}
	for _, n := range ds.tree.Nodes() {
		if !n.IsTooltip() {
			continue
		}
		bg := screenBackground.blend(screenTooltip, n.Opacity)
		fg := bg.blend(screenBackground, n.Opacity)
		st := tcell.StyleDefault.Background(bg.color()).Foreground(fg.color())
		ds.fillCells(s, n.Box, cell, st, ds.name(n.Source))
	}
	putString(s, 0, h-1, w, tcell.StyleDefault.Reverse(true), ds.status())
	s.Show()
}

func (ds *demoScene) fillCells(s tcell.Screen, b math32.Box2, cell math32.Vector2, st tcell.Style, label string) {
	x0, y0 := int(math32.Floor(b.Min.X/cell.X)), int(math32.Floor(b.Min.Y/cell.Y))
	x1, y1 := int(math32.Ceil(b.Max.X/cell.X)), int(math32.Ceil(b.Max.Y/cell.Y))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}
	if y1 > y0 {
		putString(s, x0, y0, x1, st, label)
	}
}

// putString draws str at x, y, stopping before column maxX.
func putString(s tcell.Screen, x, y, maxX int, st tcell.Style, str string) {
	for _, r := range str {
		if x >= maxX {
			return
		}
		s.SetContent(x, y, r, nil, st)
		x++
	}
}

func (ds *demoScene) depth(n *scene.Node) int {
	d := 0
	for p, ok := ds.tree.Node(n.Parent); ok; p, ok = ds.tree.Node(p.Parent) {
		d++
	}
	return d
}

// status returns the pointer position, the hovered node and the
// state of every tooltip.
func (ds *demoScene) status() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, " %v  ", ds.manager.Pointer)
	if ds.pointer.Hovered != scene.NoNode {
		fmt.Fprintf(&sb, "over %s  ", ds.name(ds.pointer.Hovered))
	}
	for _, src := range ds.manager.Sources() {
		fmt.Fprintf(&sb, "| %s: %v", ds.name(src), ds.manager.State(src))
		if inst, ok := ds.manager.Instance(src); ok {
			fmt.Fprintf(&sb, " %.2f", inst.Opacity)
			if inst.Placement.Camera.Flipped || inst.Placement.Avoid == tooltip.AvoidFlipped {
				fmt.Fprintf(&sb, " %v", inst.Placement.Target.Anchor)
			}
		}
		sb.WriteString(" ")
	}
	return sb.String()
}
