// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

//go:generate go run gen.go -o table_gen.go

import "github.com/GermanBionicSystems/smbuspec/internal/crc8"

const (
	// Size of a PEC in bytes.
	Size = 1
	// Polynomial is x^8 + x^2 + x + 1.
	Polynomial = crc8.Polynomial
)

// Checksum returns the Packet Error Code of data. data must contain the
// complete message including the address byte with its read/write bit, and
// exclude the PEC itself.
func Checksum(data []byte) byte {
	return update(0, data)
}

// Update returns the result of adding the bytes in p to the running PEC crc.
// Update(Checksum(a), b) == Checksum(append(a, b...)).
func Update(crc byte, p []byte) byte {
	return update(crc, p)
}

// Verify reports whether code is the Packet Error Code of data.
func Verify(data []byte, code byte) bool {
	return Checksum(data) == code
}

// Append returns data with its Packet Error Code appended.
func Append(data []byte) []byte {
	return append(data, Checksum(data))
}

// Address returns the address byte put on the wire for the 7 bit address
// addr, with the read/write bit set when read is true. Bits above the 7th are
// discarded.
func Address(addr uint16, read bool) byte {
	b := byte(addr << 1)
	if read {
		b |= 1
	}
	return b
}
