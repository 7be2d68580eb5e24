// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package smbus

import (
	"errors"
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/smbuspec/pec"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// MaxBlockLen is the largest payload of an SMBus block transfer.
const MaxBlockLen = 32

// ErrBlockLength is returned when a block transfer has no payload or more
// than MaxBlockLen bytes.
var ErrBlockLength = errors.New("smbus: block length must be 1 to 32 bytes")

// PECError is returned when the Packet Error Code sent by the device does not
// match the one calculated over the received transaction.
type PECError struct {
	// Got is the PEC byte read from the bus.
	Got byte
	// Want is the PEC calculated locally.
	Want byte
}

func (e *PECError) Error() string {
	return fmt.Sprintf("smbus: packet error code mismatch, got %#02x want %#02x", e.Got, e.Want)
}

// Opts represents configurable options for the SMBus device.
type Opts struct {
	// DisablePEC stops appending and checking the Packet Error Code, for
	// devices that do not implement it.
	DisablePEC bool
}

// Dev is a device on an SMBus. Transactions are serialized.
type Dev struct {
	d    *i2c.Dev
	mu   sync.Mutex
	opts Opts
}

// New returns a Dev for the 7 bit address addr on bus. opts may be nil, in
// which case Packet Error Checking is enabled.
func New(bus i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr > 0x7f {
		return nil, fmt.Errorf("smbus: invalid address %#x, SMBus addresses are 7 bits", addr)
	}
	dev := &Dev{d: &i2c.Dev{Bus: bus, Addr: addr}}
	if opts != nil {
		dev.opts = *opts
	}
	return dev, nil
}

// SendByte writes cmd with no data.
func (dev *Dev) SendByte(cmd byte) error {
	return dev.write([]byte{cmd})
}

// ReceiveByte reads a single byte without sending a command first.
func (dev *Dev) ReceiveByte() (byte, error) {
	r, err := dev.read(nil, 1)
	if err != nil {
		return 0, err
	}
	return r[0], nil
}

// WriteByteData writes value to the register cmd.
func (dev *Dev) WriteByteData(cmd, value byte) error {
	return dev.write([]byte{cmd, value})
}

// ReadByteData reads the register cmd.
func (dev *Dev) ReadByteData(cmd byte) (byte, error) {
	r, err := dev.read([]byte{cmd}, 1)
	if err != nil {
		return 0, err
	}
	return r[0], nil
}

// WriteWordData writes value to the register cmd, low byte first.
func (dev *Dev) WriteWordData(cmd byte, value uint16) error {
	return dev.write([]byte{cmd, byte(value), byte(value >> 8)})
}

// ReadWordData reads the 16 bit register cmd. The device sends the low byte
// first.
func (dev *Dev) ReadWordData(cmd byte) (uint16, error) {
	r, err := dev.read([]byte{cmd}, 2)
	if err != nil {
		return 0, err
	}
	return uint16(r[0]) | uint16(r[1])<<8, nil
}

// ProcessCall writes value to cmd and returns the word the device answers
// with in the same transaction.
func (dev *Dev) ProcessCall(cmd byte, value uint16) (uint16, error) {
	r, err := dev.read([]byte{cmd, byte(value), byte(value >> 8)}, 2)
	if err != nil {
		return 0, err
	}
	return uint16(r[0]) | uint16(r[1])<<8, nil
}

// BlockWrite writes cmd, the length of data and data.
func (dev *Dev) BlockWrite(cmd byte, data []byte) error {
	if len(data) == 0 || len(data) > MaxBlockLen {
		return ErrBlockLength
	}
	w := make([]byte, 0, 2+len(data)+pec.Size)
	w = append(w, cmd, byte(len(data)))
	w = append(w, data...)
	return dev.write(w)
}

// BlockRead reads the block register cmd into b and returns the number of
// bytes the device sent. The device reports the length in the first byte of
// its answer; len(b) must be large enough for it. Since the length is only
// known once the transfer is done, len(b)+1 bytes plus the PEC are always
// clocked in and the bytes following the PEC are ignored.
func (dev *Dev) BlockRead(cmd byte, b []byte) (int, error) {
	if len(b) == 0 || len(b) > MaxBlockLen {
		return 0, ErrBlockLength
	}
	w := []byte{cmd}
	r := make([]byte, 1+len(b)+dev.pecLen())
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.d.Tx(w, r); err != nil {
		return 0, fmt.Errorf("smbus: error reading block %#02x %w", cmd, err)
	}
	n := int(r[0])
	if n == 0 || n > len(b) {
		return 0, fmt.Errorf("%w, device sent %d for a %d byte buffer", ErrBlockLength, n, len(b))
	}
	if !dev.opts.DisablePEC {
		if err := dev.check(w, r[:1+n], r[1+n]); err != nil {
			return 0, err
		}
	}
	return copy(b, r[1:1+n]), nil
}

// Halt implements conn.Resource. There is no operation in progress between
// calls so it does nothing.
func (dev *Dev) Halt() error {
	return nil
}

// String returns a string representation of the device.
func (dev *Dev) String() string {
	return "smbus " + dev.d.String()
}

func (dev *Dev) pecLen() int {
	if dev.opts.DisablePEC {
		return 0
	}
	return pec.Size
}

// write sends w, followed by the PEC of the write address and w.
func (dev *Dev) write(w []byte) error {
	if !dev.opts.DisablePEC {
		d := pec.New()
		_ = d.WriteByte(pec.Address(dev.d.Addr, false))
		_, _ = d.Write(w)
		w = d.Sum(w)
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.d.Tx(w, nil); err != nil {
		return fmt.Errorf("smbus: error writing %w", err)
	}
	return nil
}

// read sends w, if any, then reads n bytes and the PEC and verifies it.
func (dev *Dev) read(w []byte, n int) ([]byte, error) {
	r := make([]byte, n+dev.pecLen())
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if err := dev.d.Tx(w, r); err != nil {
		return nil, fmt.Errorf("smbus: error reading %w", err)
	}
	if !dev.opts.DisablePEC {
		if err := dev.check(w, r[:n], r[n]); err != nil {
			return nil, err
		}
	}
	return r[:n], nil
}

// check verifies code against the whole transaction as seen on the wire: the
// write address and w when a write phase happened, then the read address and
// r.
func (dev *Dev) check(w, r []byte, code byte) error {
	d := pec.New()
	if len(w) != 0 {
		_ = d.WriteByte(pec.Address(dev.d.Addr, false))
		_, _ = d.Write(w)
	}
	_ = d.WriteByte(pec.Address(dev.d.Addr, true))
	_, _ = d.Write(r)
	if want := d.Sum8(); want != code {
		return &PECError{Got: code, Want: want}
	}
	return nil
}

var _ conn.Resource = &Dev{}
