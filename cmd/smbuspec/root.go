// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/GermanBionicSystems/smbuspec/pec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.0.0"

// app holds the flags shared by all commands.
type app struct {
	bus     string
	addr    uint16
	noPEC   bool
	verbose bool

	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "smbuspec",
		Short: "SMBus Packet Error Code calculator",
		Long: `smbuspec calculates the SMBus Packet Error Code (CRC-8, polynomial
x^8 + x^2 + x + 1) of a transmission and runs PEC-checked transactions on
an I²C bus.

Bytes are given as hex (0xb4, b4) or decimal (38). The bus defaults to the
SMBUSPEC_BUS environment variable, or the first bus found.`,
		Version:      version + " (" + pec.Engine + " engine)",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !a.verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.bus, "bus", os.Getenv("SMBUSPEC_BUS"), "I²C bus name or number")
	root.PersistentFlags().Uint16VarP(&a.addr, "addr", "a", 0, "7 bit device address")
	root.PersistentFlags().BoolVar(&a.noPEC, "no-pec", false, "Disable Packet Error Checking on bus transactions")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log bus transactions")

	root.AddCommand(newComputeCmd(a), newVerifyCmd(a), newTableCmd(), newReadCmd(a), newWriteCmd(a))
	return root
}
