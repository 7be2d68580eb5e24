// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mlx90614

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/GermanBionicSystems/smbuspec/smbus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddress is the factory SMBus address.
const DefaultAddress uint16 = 0x5a

const (
	// RAM registers, read only.
	cmdAmbient byte = 0x06
	cmdObject1 byte = 0x07
	cmdObject2 byte = 0x08

	// EEPROM registers.
	cmdEmissivity byte = 0x24

	// Bit 15 of an object reading flags a measurement error.
	errorFlag = 0x8000

	resolution = 20 * physic.MilliKelvin

	// EEPROM cells need an erase before a write, and 5ms after each.
	eepromWriteDelay = 10 * time.Millisecond

	minSampleDuration = 100 * time.Millisecond
)

// Dev represents an MLX90614 sensor.
type Dev struct {
	s        *smbus.Dev
	mu       sync.Mutex
	shutdown chan struct{}
}

// New returns a sensor at addr on bus.
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	s, err := smbus.New(bus, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("mlx90614: %w", err)
	}
	return &Dev{s: s}, nil
}

func countToTemp(count uint16) physic.Temperature {
	return physic.Temperature(count) * resolution
}

func (dev *Dev) readTemp(cmd byte) (physic.Temperature, error) {
	count, err := dev.s.ReadWordData(cmd)
	if err != nil {
		return 0, fmt.Errorf("mlx90614: error reading %#02x %w", cmd, err)
	}
	if count&errorFlag != 0 {
		return 0, errors.New("mlx90614: measurement error flag set")
	}
	return countToTemp(count), nil
}

// SenseAmbient returns the temperature of the sensor die.
func (dev *Dev) SenseAmbient() (physic.Temperature, error) {
	return dev.readTemp(cmdAmbient)
}

// SenseObject returns the temperature of the object in the field of view of
// the first IR sensor.
func (dev *Dev) SenseObject() (physic.Temperature, error) {
	return dev.readTemp(cmdObject1)
}

// SenseObject2 returns the temperature seen by the second IR sensor of dual
// zone models.
func (dev *Dev) SenseObject2() (physic.Temperature, error) {
	return dev.readTemp(cmdObject2)
}

// Sense reads the object temperature. Implements physic.SenseEnv.
func (dev *Dev) Sense(e *physic.Env) error {
	e.Pressure = 0
	e.Humidity = 0
	t, err := dev.SenseObject()
	if err != nil {
		e.Temperature = 0
		return err
	}
	e.Temperature = t
	return nil
}

// Precision implements physic.SenseEnv.
func (dev *Dev) Precision(e *physic.Env) {
	e.Temperature = resolution
	e.Humidity = 0
	e.Pressure = 0
}

// SenseContinuous reads the object temperature every interval and sends it
// to the returned channel. Call Halt to stop.
func (dev *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSampleDuration {
		return nil, errors.New("mlx90614: sample interval is < device sample rate")
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		return nil, errors.New("mlx90614: SenseContinuous already running")
	}
	shutdown := make(chan struct{})
	dev.shutdown = shutdown
	ch := make(chan physic.Env, 16)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				env := physic.Env{}
				if err := dev.Sense(&env); err == nil {
					select {
					case ch <- env:
					default:
					}
				}
			}
		}
	}()
	return ch, nil
}

// Emissivity returns the emissivity setting, from 0.1 to 1.0.
func (dev *Dev) Emissivity() (float64, error) {
	v, err := dev.s.ReadWordData(cmdEmissivity)
	if err != nil {
		return 0, fmt.Errorf("mlx90614: error reading emissivity %w", err)
	}
	return float64(v) / math.MaxUint16, nil
}

// SetEmissivity stores the emissivity of the measured object in EEPROM.
func (dev *Dev) SetEmissivity(e float64) error {
	if e < 0.1 || e > 1 {
		return errors.New("mlx90614: emissivity must be between 0.1 and 1.0")
	}
	v := uint16(math.Round(e * math.MaxUint16))
	for _, w := range []uint16{0, v} {
		if err := dev.s.WriteWordData(cmdEmissivity, w); err != nil {
			return fmt.Errorf("mlx90614: error writing emissivity %w", err)
		}
		time.Sleep(eepromWriteDelay)
	}
	return nil
}

// Halt stops a running SenseContinuous. Implements conn.Resource.
func (dev *Dev) Halt() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		close(dev.shutdown)
		dev.shutdown = nil
	}
	return nil
}

// String returns a string representation of the device.
func (dev *Dev) String() string {
	return "mlx90614"
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
