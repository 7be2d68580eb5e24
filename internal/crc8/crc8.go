// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package crc8 implements the CRC-8-ATM HEC checksum (polynomial
// x^8 + x^2 + x + 1, no reflection, MSB first) used by the SMBus Packet Error
// Code. Both a bit-by-bit and a table-driven engine are provided; they produce
// identical results for every input.
package crc8

// Polynomial is x^8 + x^2 + x + 1. The x^8 term is implied.
const Polynomial byte = 0x07

// Table holds the checksum of every single byte value, starting from a zero
// accumulator.
type Table [256]byte

// Bitwise folds p into crc one bit at a time and returns the new accumulator.
// A fresh checksum starts with crc == 0.
func Bitwise(crc byte, p []byte) byte {
	for _, val := range p {
		crc ^= val
		for range 8 {
			if (crc & 0x80) == 0 {
				crc <<= 1
			} else {
				crc = (crc << 1) ^ Polynomial
			}
		}
	}
	return crc
}

// MakeTable returns the lookup table for Polynomial. Entry i is
// Bitwise(0, []byte{i}).
func MakeTable() Table {
	var t Table
	var b [1]byte
	for i := range t {
		b[0] = byte(i)
		t[i] = Bitwise(0, b[:])
	}
	return t
}

// Update folds p into crc using the lookup table t. t must have been built by
// MakeTable; its content is not checked.
func Update(crc byte, t *Table, p []byte) byte {
	for _, v := range p {
		crc = t[crc^v]
	}
	return crc
}
