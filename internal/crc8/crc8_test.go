// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package crc8

import (
	"math/rand"
	"os"
	"strconv"
	"testing"
	"time"

	sigurn "github.com/sigurn/crc8"
)

// reference is the CRC-8/SMBUS preset of an independent implementation.
var reference = sigurn.MakeTable(sigurn.CRC8)

func TestBitwise(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result byte
	}{
		{bytes: nil, result: 0},
		{bytes: []byte{}, result: 0},
		{bytes: []byte{0x00}, result: 0x00},
		{bytes: []byte{0x01}, result: 0x07},
		{bytes: []byte{0xff}, result: 0xf3},
		{bytes: []byte{0xab, 0xcd}, result: 0xe2},
		{bytes: []byte{0xb4, 0x06, 0xab, 0xcd}, result: 95},
		{bytes: []byte{0xb4, 0x06, 0xb5, 38, 58}, result: 102},
		{bytes: []byte("123456789"), result: 0xf4},
	}
	for _, test := range tests {
		res := Bitwise(0, test.bytes)
		if res != test.result {
			t.Errorf("Bitwise(0, %#v)!=%#x received %#x", test.bytes, test.result, res)
		}
	}
}

func TestBitwiseChained(t *testing.T) {
	data := []byte{0xb4, 0x06, 0xb5, 38, 58}
	for i := range len(data) + 1 {
		res := Bitwise(Bitwise(0, data[:i]), data[i:])
		if res != 102 {
			t.Errorf("split at %d: got %d expected 102", i, res)
		}
	}
}

func TestMakeTable(t *testing.T) {
	tbl := MakeTable()
	if tbl[0] != 0 {
		t.Errorf("table[0]=%#x expected 0", tbl[0])
	}
	if tbl[1] != Polynomial {
		t.Errorf("table[1]=%#x expected %#x", tbl[1], Polynomial)
	}
	for i := range tbl {
		if want := Bitwise(0, []byte{byte(i)}); tbl[i] != want {
			t.Errorf("table[%d]=%#x expected %#x", i, tbl[i], want)
		}
		if want := sigurn.Checksum([]byte{byte(i)}, reference); tbl[i] != want {
			t.Errorf("table[%d]=%#x sigurn/crc8 has %#x", i, tbl[i], want)
		}
	}
	if again := MakeTable(); again != tbl {
		t.Error("MakeTable() is not deterministic")
	}
	// The table is returned by value.
	tbl[1] = 0
	if fresh := MakeTable(); fresh[1] != Polynomial {
		t.Error("modifying a returned table changed later tables")
	}
}

func TestUpdateMatchesBitwise(t *testing.T) {
	tbl := MakeTable()
	// Every one and two byte message.
	for a := range 256 {
		one := []byte{byte(a)}
		if x, y := Bitwise(0, one), Update(0, &tbl, one); x != y {
			t.Fatalf("%#v: bitwise=%#x table=%#x", one, x, y)
		}
		for b := range 256 {
			two := []byte{byte(a), byte(b)}
			if x, y := Bitwise(0, two), Update(0, &tbl, two); x != y {
				t.Fatalf("%#v: bitwise=%#x table=%#x", two, x, y)
			}
		}
	}

	rng := newFuzzRng(t)
	for range fuzzRounds() {
		data := make([]byte, rng.Intn(600))
		rng.Read(data)
		seed := byte(rng.Intn(256))
		if x, y := Bitwise(seed, data), Update(seed, &tbl, data); x != y {
			t.Fatalf("len=%d seed=%#x: bitwise=%#x table=%#x", len(data), seed, x, y)
		}
		if x, y := Bitwise(0, data), sigurn.Checksum(data, reference); x != y {
			t.Fatalf("len=%d: bitwise=%#x sigurn/crc8=%#x", len(data), x, y)
		}
	}
}

func TestSingleBitErrors(t *testing.T) {
	rng := newFuzzRng(t)
	for range 50 {
		data := make([]byte, 1+rng.Intn(32))
		rng.Read(data)
		want := Bitwise(0, data)
		for i := range data {
			for bit := range 8 {
				data[i] ^= 1 << bit
				if got := Bitwise(0, data); got == want {
					t.Errorf("flipping bit %d of byte %d in %#v did not change the checksum", bit, i, data)
				}
				data[i] ^= 1 << bit
			}
		}
	}
}

func FuzzUpdate(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xb4, 0x06, 0xab, 0xcd})
	f.Add([]byte("123456789"))
	tbl := MakeTable()
	f.Fuzz(func(t *testing.T, data []byte) {
		x := Bitwise(0, data)
		if y := Update(0, &tbl, data); x != y {
			t.Errorf("%#v: bitwise=%#x table=%#x", data, x, y)
		}
		if y := sigurn.Checksum(data, reference); x != y {
			t.Errorf("%#v: bitwise=%#x sigurn/crc8=%#x", data, x, y)
		}
	})
}

// fuzzRounds returns the number of random messages to check. Override with
// PEC_FUZZ_ROUNDS.
func fuzzRounds() int {
	if env := os.Getenv("PEC_FUZZ_ROUNDS"); env != "" {
		if rounds, err := strconv.Atoi(env); err == nil && rounds > 0 {
			return rounds
		}
	}
	return 1000
}

// newFuzzRng logs the seed so a failure can be reproduced with PEC_FUZZ_SEED.
func newFuzzRng(t *testing.T) *rand.Rand {
	seed := time.Now().UnixNano()
	if env := os.Getenv("PEC_FUZZ_SEED"); env != "" {
		if s, err := strconv.ParseInt(env, 10, 64); err == nil {
			seed = s
		}
	}
	t.Logf("Seed: %d (reproduce with PEC_FUZZ_SEED=%d)", seed, seed)
	return rand.New(rand.NewSource(seed))
}

func BenchmarkBitwise(b *testing.B) {
	data := make([]byte, 100)
	rand.New(rand.NewSource(1)).Read(data)
	b.SetBytes(int64(len(data)))
	for range b.N {
		Bitwise(0, data)
	}
}

func BenchmarkUpdate(b *testing.B) {
	tbl := MakeTable()
	data := make([]byte, 100)
	rand.New(rand.NewSource(1)).Read(data)
	b.SetBytes(int64(len(data)))
	for range b.N {
		Update(0, &tbl, data)
	}
}
