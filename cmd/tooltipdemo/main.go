// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tooltipdemo places tooltips from the command line, renders
// scene files with their tooltips to images, and runs scenes
// interactively in the terminal.
package main

import (
	"os"

	"cogentcore.org/tooltip/base/logx"
	"cogentcore.org/tooltip/tooltip"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vv, v, q, trace bool
	cmd := &cobra.Command{
		Use:          "tooltipdemo",
		Short:        "Place, render and try out tooltips",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
			tooltip.DebugSettings.TraceLifecycle = trace
			tooltip.DebugSettings.TracePlacement = trace
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVar(&vv, "vv", false, "show debug messages")
	pf.BoolVarP(&v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only show errors")
	pf.BoolVar(&trace, "trace", false, "log every lifecycle change and placement (at info level)")
	cmd.AddCommand(newPlaceCmd(), newSnapshotCmd(), newRunCmd())
	return cmd
}
