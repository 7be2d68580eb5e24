// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package smbus runs SMBus transactions with Packet Error Checking over a
// periph I²C bus.
//
// Every write is followed by the PEC of the bytes on the wire, including the
// address byte, and every read is checked against the PEC sent by the device.
// A mismatch is reported as a *PECError. Words are transferred low byte
// first.
//
// # Datasheet
//
// System Management Bus Specification, version 3.1, section 6.4 and 6.5.
//
// http://smbus.org/specs/SMBus_3_1_20180319.pdf
package smbus
