// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cade16/cade"
	"github.com/cade16/cade/instance"
	"github.com/cade16/cade/state"
)

func newRunCommand() *cobra.Command {
	var address uint16
	var trace bool
	var log bool
	var stats bool

	cmd := &cobra.Command{
		Use:   "run [program]",
		Short: "load a program and run it until it gets stuck",
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
			_ = ins.Prefs.LogFetches.Set(trace)

			emu := cade.New(ins)
			emu.Load(address, words)

			dashboardLaunch(stats)

			total := 0
			for {
				before := emu.PC()
				cycles := emu.StepInstruction()
				total += cycles

				if trace {
					state.Dump(os.Stdout, emu.Core())
				}

				if emu.PC() == before {
					break
				}
			}

			fmt.Printf("stuck at %#04x after %d cycles\n", emu.PC(), total)
			state.Dump(os.Stdout, emu.Core())

			flushLog(log)
			return nil
		},
	}

	cmd.Flags().Uint16Var(&address, "address", 0, "address to load the program at")
	cmd.Flags().BoolVar(&trace, "trace", false, "dump state after every instruction")
	cmd.Flags().BoolVar(&log, "log", false, "echo the diagnostics log when finished")
	cmd.Flags().BoolVar(&stats, "stats", false, "launch the live cycle dashboard")

	return cmd
}
