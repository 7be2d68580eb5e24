// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mlx90614 controls a Melexis MLX90614 infrared thermometer over
// SMBus.
//
// The sensor measures the temperature of the object in its field of view and
// its own die (ambient) temperature with a resolution of 0.02 °C. Every
// transfer carries a Packet Error Code, so corrupted readings are reported as
// *smbus.PECError instead of being returned.
//
// # Datasheet
//
// https://www.melexis.com/-/media/files/documents/datasheets/mlx90614-datasheet-melexis.pdf
package mlx90614
