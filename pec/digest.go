// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pec

import "hash"

// Digest computes a Packet Error Code incrementally, for messages assembled
// piece by piece. The zero value is ready to use.
//
// A Digest is not safe for concurrent use.
type Digest struct {
	crc byte
}

// New returns a Digest with an empty message.
func New() *Digest {
	return &Digest{}
}

// Write adds p to the message. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.crc = update(d.crc, p)
	return len(p), nil
}

// WriteByte adds a single byte to the message.
func (d *Digest) WriteByte(c byte) error {
	d.crc = update(d.crc, []byte{c})
	return nil
}

// Sum8 returns the Packet Error Code of the bytes written so far.
func (d *Digest) Sum8() byte {
	return d.crc
}

// Sum appends the Packet Error Code to in.
func (d *Digest) Sum(in []byte) []byte {
	return append(in, d.crc)
}

// Reset discards the bytes written so far.
func (d *Digest) Reset() {
	d.crc = 0
}

// Size implements hash.Hash.
func (d *Digest) Size() int {
	return Size
}

// BlockSize implements hash.Hash.
func (d *Digest) BlockSize() int {
	return 1
}

var _ hash.Hash = &Digest{}
