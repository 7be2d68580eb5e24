// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/GermanBionicSystems/smbuspec/smbus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func newReadCmd(a *app) *cobra.Command {
	var reg uint8
	var word bool
	var block int
	cmd := &cobra.Command{
		Use:     "read --addr ADDR --cmd CMD",
		Short:   "Read a register with Packet Error Checking",
		Example: `  smbuspec read --addr 0x5a --cmd 0x06 --word`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkAddr(cmd, true); err != nil {
				return err
			}
			if word && block != 0 {
				return errors.New("--word and --block are exclusive")
			}
			dev, bus, err := a.open()
			if err != nil {
				return err
			}
			defer bus.Close()
			out := cmd.OutOrStdout()
			switch {
			case block != 0:
				b := make([]byte, block)
				n, err := dev.BlockRead(reg, b)
				a.logTx("block read", reg, b[:n], err)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, hex.EncodeToString(b[:n]))
			case word:
				v, err := dev.ReadWordData(reg)
				a.logTx("read word", reg, []byte{byte(v), byte(v >> 8)}, err)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%#04x (%d)\n", v, v)
			default:
				v, err := dev.ReadByteData(reg)
				a.logTx("read byte", reg, []byte{v}, err)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%#02x (%d)\n", v, v)
			}
			return nil
		},
	}
	cmd.Flags().Uint8Var(&reg, "cmd", 0, "Command (register) code")
	cmd.Flags().IntVar(&block, "block", 0, "Block read into a buffer of this many bytes (1 to 32)")
	cmd.Flags().BoolVarP(&word, "word", "w", false, "Read a 16 bit word")
	_ = cmd.MarkFlagRequired("cmd")
	return cmd
}

func newWriteCmd(a *app) *cobra.Command {
	var reg uint8
	var word bool
	cmd := &cobra.Command{
		Use:   "write --addr ADDR --cmd CMD VALUE...",
		Short: "Write a register with Packet Error Checking",
		Long: `Write a register with Packet Error Checking. One VALUE is written as a byte,
or as a word with --word. More than one VALUE is sent as a block write.`,
		Example: `  smbuspec write --addr 0x5a --cmd 0x06 0xab
  smbuspec write --addr 0x5a --cmd 0x06 --word 0xcdab`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.checkAddr(cmd, true); err != nil {
				return err
			}
			if word && len(args) != 1 {
				return errors.New("--word takes a single VALUE")
			}
			var value uint64
			var data []byte
			var err error
			if word {
				if value, err = strconv.ParseUint(args[0], 0, 16); err != nil {
					return fmt.Errorf("invalid word %q", args[0])
				}
			} else if data, err = parseBytes(args); err != nil {
				return err
			}
			dev, bus, err := a.open()
			if err != nil {
				return err
			}
			defer bus.Close()
			switch {
			case word:
				err = dev.WriteWordData(reg, uint16(value))
				a.logTx("write word", reg, []byte{byte(value), byte(value >> 8)}, err)
			case len(data) == 1:
				err = dev.WriteByteData(reg, data[0])
				a.logTx("write byte", reg, data, err)
			default:
				err = dev.BlockWrite(reg, data)
				a.logTx("block write", reg, data, err)
			}
			return err
		},
	}
	cmd.Flags().Uint8Var(&reg, "cmd", 0, "Command (register) code")
	cmd.Flags().BoolVarP(&word, "word", "w", false, "Write a 16 bit word")
	_ = cmd.MarkFlagRequired("cmd")
	return cmd
}

// checkAddr rejects addresses that do not fit in 7 bits. Bus commands also
// require --addr to be given, since the default 0 is the general call address
// every device answers.
func (a *app) checkAddr(cmd *cobra.Command, required bool) error {
	if required && !cmd.Flags().Changed("addr") {
		return errors.New("--addr is required")
	}
	if a.addr > 0x7f {
		return fmt.Errorf("invalid address %#x, SMBus addresses are 7 bits", a.addr)
	}
	return nil
}

// open initializes the host drivers and opens the device at --addr on --bus.
func (a *app) open() (*smbus.Dev, i2c.BusCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("host init: %w", err)
	}
	bus, err := i2creg.Open(a.bus)
	if err != nil {
		return nil, nil, err
	}
	dev, err := smbus.New(bus, a.addr, &smbus.Opts{DisablePEC: a.noPEC})
	if err != nil {
		_ = bus.Close()
		return nil, nil, err
	}
	a.log.Debug("opened", zap.String("dev", dev.String()), zap.Bool("pec", !a.noPEC))
	return dev, bus, nil
}

func (a *app) logTx(op string, reg byte, data []byte, err error) {
	fields := []zap.Field{zap.Uint8("cmd", reg), zapBytes("data", data)}
	var pecErr *smbus.PECError
	switch {
	case errors.As(err, &pecErr):
		a.log.Warn(op, append(fields, zap.Uint8("got", pecErr.Got), zap.Uint8("want", pecErr.Want))...)
	case err != nil:
		a.log.Error(op, append(fields, zap.Error(err))...)
	default:
		a.log.Debug(op, fields...)
	}
}

func zapBytes(key string, b []byte) zap.Field {
	return zap.String(key, hex.EncodeToString(b))
}
