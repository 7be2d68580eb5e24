// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build ignore

// gen writes the PEC lookup table as a Go source file so the table engine
// carries it as compile-time data.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"

	"github.com/GermanBionicSystems/smbuspec/internal/crc8"
)

const header = `// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Code generated by gen.go; DO NOT EDIT.

//go:build pectable

package pec

import "github.com/GermanBionicSystems/smbuspec/internal/crc8"

// lookupTable holds the PEC of every single byte value.
var lookupTable = crc8.Table{
`

func main() {
	out := flag.String("o", "table_gen.go", "output file")
	flag.Parse()

	t := crc8.MakeTable()
	var buf bytes.Buffer
	buf.WriteString(header)
	for i, v := range t {
		if i%8 == 0 {
			buf.WriteByte('\t')
		}
		fmt.Fprintf(&buf, "0x%02x,", v)
		if i%8 == 7 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gen: formatting table: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatal(err)
	}
}
