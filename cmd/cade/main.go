// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

// cade is a bundled driver for the DCPU-16 core. It is not part of the
// core itself - everything here is a thin client of package cade and
// package state, loading a program, stepping it, and printing what
// happened.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cade16/cade/logger"
	"github.com/cade16/cade/prefs"
	"github.com/cade16/cade/statsview"
	"github.com/cade16/cade/version"
)

func main() {
	var overrides []string

	root := &cobra.Command{
		Use:   version.ApplicationName,
		Short: "cade is a cycle-accurate DCPU-16 emulator core",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// push any --set overrides onto the command line stack before a
			// subcommand loads preferences, so they take precedence over
			// the values on disk (see prefs.Disk.Load's merge argument).
			if len(overrides) > 0 {
				prefs.PushCommandLineStack(strings.Join(overrides, "; "))
			}
		},
	}
	root.PersistentFlags().StringArrayVar(&overrides, "set", nil, "override a preference for this run, e.g. --set emulator.logfetches::true (repeatable)")

	root.AddCommand(newRunCommand())
	root.AddCommand(newStepCommand())
	root.AddCommand(newVersionCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, rev, release := version.Version()
			fmt.Printf("%s %s (%s)\n", version.ApplicationName, v, rev)
			if !release {
				fmt.Println("unreleased build")
			}
			return nil
		},
	}
}

// flushLog writes the central diagnostics log to stderr if -log was given.
func flushLog(enabled bool) {
	if !enabled {
		return
	}
	logger.Write(os.Stderr)
}

func dashboardLaunch(enabled bool) {
	if !enabled {
		return
	}
	if !statsview.Available() {
		fmt.Fprintln(os.Stderr, "! statsview dashboard not available in this build (rebuild with -tags statsview)")
		return
	}
	statsview.Launch(os.Stdout)
}
