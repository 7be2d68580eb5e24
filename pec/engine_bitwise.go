// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !pectable

package pec

import "github.com/GermanBionicSystems/smbuspec/internal/crc8"

// Engine names the checksum implementation selected at build time.
const Engine = "bitwise"

func update(crc byte, p []byte) byte {
	return crc8.Bitwise(crc, p)
}
