// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/GermanBionicSystems/smbuspec/pec"
	"github.com/spf13/cobra"
)

func newComputeCmd(a *app) *cobra.Command {
	var read bool
	cmd := &cobra.Command{
		Use:   "compute BYTES...",
		Short: "Print the PEC of a transmission",
		Long: `Print the PEC of a transmission. With --addr, the address byte with its
read/write bit is prepended to BYTES.`,
		Example: `  smbuspec compute 0xb4 0x06 0xab 0xcd
  smbuspec compute --addr 0x5a 0x06 0xab 0xcd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkAddr(cmd, false); err != nil {
				return err
			}
			data, err := parseBytes(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				data = append([]byte{pec.Address(a.addr, read)}, data...)
			}
			code := pec.Checksum(data)
			a.log.Debug("compute", zapBytes("data", data))
			fmt.Fprintf(cmd.OutOrStdout(), "%#02x (%d)\n", code, code)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&read, "read", "r", false, "Set the read bit of the address byte")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "verify BYTES... PEC",
		Short:   "Check the PEC of a transmission",
		Example: `  smbuspec verify 0xb4 0x06 0xb5 38 58 102`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseBytes(args)
			if err != nil {
				return err
			}
			msg, code := data[:len(data)-1], data[len(data)-1]
			want := pec.Checksum(msg)
			a.log.Debug("verify", zapBytes("data", msg))
			if want != code {
				return fmt.Errorf("PEC mismatch, got %#02x want %#02x", code, want)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

// parseBytes accepts 0x prefixed hex, decimal, or bare hex such as "b4".
func parseBytes(args []string) ([]byte, error) {
	data := make([]byte, 0, len(args))
	for _, s := range args {
		b, err := parseByte(s)
		if err != nil {
			return nil, err
		}
		data = append(data, b)
	}
	return data, nil
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		v, err = strconv.ParseUint(s, 16, 8)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid byte %q", s)
	}
	return byte(v), nil
}
