// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package smbuspec is a container for SMBus Packet Error Checking.
//
// Package pec computes the Packet Error Code and package smbus runs
// PEC-checked SMBus transactions over a periph I²C bus.
package smbuspec
