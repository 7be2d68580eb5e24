// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/GermanBionicSystems/smbuspec/pec"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	var useColor bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the PEC of every single byte value",
		Long: `Print the PEC of every single byte value as a 16x16 grid; row is the high
nibble, column the low nibble. This is the lookup table used by builds with
the pectable tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if f, ok := w.(*os.File); ok && useColor {
				w = colorable.NewColorable(f)
			}
			return writeTable(w, useColor)
		},
	}
	cmd.Flags().BoolVarP(&useColor, "color", "c", false, "Shade each entry by its value")
	return cmd
}

func writeTable(w io.Writer, useColor bool) error {
	var buf bytes.Buffer
	buf.WriteString("    ")
	for col := range 16 {
		fmt.Fprintf(&buf, "  %x  ", col)
	}
	buf.WriteByte('\n')
	var b [1]byte
	for row := range 16 {
		fmt.Fprintf(&buf, "%x0: ", row)
		for col := range 16 {
			b[0] = byte(row<<4 | col)
			v := pec.Checksum(b[:])
			if useColor {
				buf.WriteString(ansi256.Default.Block(shade(v)))
				fmt.Fprintf(&buf, "\033[0m%02x  ", v)
			} else {
				fmt.Fprintf(&buf, "0x%02x ", v)
			}
		}
		buf.WriteByte('\n')
	}
	_, err := buf.WriteTo(w)
	return err
}

// shade maps a byte to a blue to red ramp.
func shade(v byte) color.NRGBA {
	return color.NRGBA{R: v, G: 0x30, B: 255 - v, A: 255}
}
