// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pec calculates the System Management Bus (SMBus) Packet Error Code.
//
// SMBus 1.1 and later defines an optional Packet Error Checking mode. When
// used, an extra byte is appended to every transmission containing the PEC.
// The PEC is calculated over the whole transmission including the address and
// read/write bit. The polynomial is x^8 + x^2 + x + 1, which corresponds to
// CRC-8-ATM HEC initialized to zero.
//
// # Engine
//
// By default the checksum is computed bit by bit. Building with the pectable
// tag switches to a 256 byte lookup table generated at build time:
//
//	go build -tags pectable ./...
//
// Both engines return the same values; only speed and binary size change.
// The table engine tests only run with the tag:
//
//	go test -tags pectable ./...
//
// # Send command with a value to an address
//
//	const addr = 0x5A
//	checksum := pec.Checksum([]byte{pec.Address(addr, false), command, value})
//	bus.Tx(addr, []byte{command, value, checksum}, nil)
//
// # Request-response
//
// A write with the register address is sent, followed by a read of the value
// and its PEC:
//
//	r := make([]byte, 2)
//	bus.Tx(addr, []byte{register}, r)
//	w := pec.Address(addr, false)
//	rd := pec.Address(addr, true)
//	if !pec.Verify([]byte{w, register, rd, r[0]}, r[1]) {
//		log.Print("Packet Error Code mismatch.")
//	}
//
// Package smbus wraps these exchanges for periph I²C buses.
//
// # Reference
//
// https://en.wikipedia.org/wiki/System_Management_Bus#Packet_Error_Checking
package pec
