// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cade16/cade"
	"github.com/cade16/cade/instance"
	"github.com/cade16/cade/state"
)

// newStepCommand builds the interactive single-keypress stepping REPL.
// Raw terminal mode (via golang.org/x/term) lets a single keypress drive
// the emulator without waiting on Enter, the way a hardware front panel
// single-step button would.
func newStepCommand() *cobra.Command {
	var address uint16
	var stats bool

	cmd := &cobra.Command{
		Use:   "step [program]",
		Short: "load a program and step it interactively, one keypress at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := loadProgram(args[0])
			if err != nil {
				return err
			}

			ins, err := instance.NewInstance(nil)
			if err != nil {
				return err
			}

			emu := cade.New(ins)
			emu.Load(address, words)

			dashboardLaunch(stats)

			return interactiveLoop(emu)
		},
	}

	cmd.Flags().Uint16Var(&address, "address", 0, "address to load the program at")
	cmd.Flags().BoolVar(&stats, "stats", false, "launch the live cycle dashboard")

	return cmd
}

// interactiveLoop reads one byte at a time from stdin in raw mode:
//
//	c  advance one cycle
//	i  advance one instruction
//	u  run until stuck
//	g  print a Graphviz rendering of the current working set
//	q  quit
//
// Any other key prints the current state dump.
func interactiveLoop(emu *cade.Emulator) error {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return fmt.Errorf("step requires an interactive terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Print("c=cycle i=instruction u=until-stuck g=graphviz q=quit\r\n")

	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return err
		}

		switch buf[0] {
		case 'q', 0x03: // q or ctrl-c
			fmt.Print("\r\n")
			return nil
		case 'c':
			emu.StepCycles(1)
		case 'i':
			emu.StepInstruction()
		case 'u':
			emu.StepUntilStuck()
		case 'g':
			state.Graphviz(os.Stdout, emu.Core())
			fmt.Print("\r\n")
			continue
		default:
			// fall through to state dump below
		}

		dumpRaw(emu)
	}
}

// dumpRaw writes a state dump with carriage returns appended, since the
// terminal is in raw mode and won't translate bare newlines.
func dumpRaw(emu *cade.Emulator) {
	snap := state.Capture(emu.Core())
	fmt.Printf("%s\r\n", snap.String())
}
