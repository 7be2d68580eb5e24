// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/smbuspec/pec"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseBytes(t *testing.T) {
	var tests = []struct {
		args   []string
		result []byte
	}{
		{args: []string{"0xb4", "0x06", "0xAB"}, result: []byte{0xb4, 0x06, 0xab}},
		{args: []string{"38", "58"}, result: []byte{38, 58}},
		{args: []string{"b4", "cd"}, result: []byte{0xb4, 0xcd}},
		{args: nil, result: []byte{}},
	}
	for _, test := range tests {
		res, err := parseBytes(test.args)
		if err != nil {
			t.Errorf("parseBytes(%q) returned %v", test.args, err)
			continue
		}
		if !bytes.Equal(res, test.result) {
			t.Errorf("parseBytes(%q)=%#v expected %#v", test.args, res, test.result)
		}
	}
	for _, bad := range []string{"0x100", "256", "zz", "-1"} {
		if _, err := parseBytes([]string{bad}); err == nil {
			t.Errorf("parseBytes(%q) did not return an error", bad)
		}
	}
}

func TestCompute(t *testing.T) {
	var tests = []struct {
		args   []string
		result string
	}{
		{args: []string{"compute", "0xb4", "0x06", "0xab", "0xcd"}, result: "0x5f (95)\n"},
		{args: []string{"compute", "--addr", "0x5a", "0x06", "0xab", "0xcd"}, result: "0x5f (95)\n"},
		{args: []string{"compute", "0xb4", "0x06", "0xb5", "38", "58"}, result: "0x66 (102)\n"},
		{args: []string{"compute", "-a", "0x5a", "--read", "0x42"}, result: "0xc7 (199)\n"},
		{args: []string{"compute"}, result: "0x00 (0)\n"},
	}
	for _, test := range tests {
		out, err := run(t, test.args...)
		if err != nil {
			t.Errorf("%q returned %v", test.args, err)
			continue
		}
		if out != test.result {
			t.Errorf("%q printed %q expected %q", test.args, out, test.result)
		}
	}
}

func TestComputeAddress(t *testing.T) {
	_, err := run(t, "compute", "--addr", "0x85", "0x06")
	if err == nil || !strings.Contains(err.Error(), "7 bits") {
		t.Errorf("compute --addr 0x85 returned %v", err)
	}
	if _, err := run(t, "compute", "--addr", "0x7f", "0x06"); err != nil {
		t.Errorf("compute --addr 0x7f returned %v", err)
	}
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "0xb4", "0x06", "0xb5", "38", "58", "102")
	if err != nil {
		t.Fatal(err)
	}
	if out != "ok\n" {
		t.Errorf("verify printed %q", out)
	}
	if _, err := run(t, "verify", "0xb4", "0x06", "0xb5", "38", "58", "101"); err == nil {
		t.Error("verify accepted a wrong PEC")
	}
	if _, err := run(t, "verify"); err == nil {
		t.Error("verify accepted no arguments")
	}
}

func TestTable(t *testing.T) {
	out, err := run(t, "table")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 17 {
		t.Fatalf("table has %d lines expected 17", len(lines))
	}
	if !strings.HasPrefix(lines[1], "00: 0x00 0x07 0x0e 0x09") {
		t.Errorf("first row is %q", lines[1])
	}
	if !strings.HasSuffix(lines[16], "0xfa 0xfd 0xf4 0xf3 ") {
		t.Errorf("last row is %q", lines[16])
	}

	out, err = run(t, "table", "--color")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\033[") {
		t.Error("table --color has no escape sequences")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, version) || !strings.Contains(out, pec.Engine) {
		t.Errorf("--version printed %q", out)
	}
}

func TestReadArgs(t *testing.T) {
	// Rejected before the bus is opened.
	var tests = []struct {
		args []string
		err  string
	}{
		{args: []string{"read", "--cmd", "6"}, err: "--addr is required"},
		{args: []string{"read", "--addr", "0x80", "--cmd", "6"}, err: "7 bits"},
		{args: []string{"read", "--addr", "0x5a", "--cmd", "6", "--word", "--block", "4"}, err: "exclusive"},
	}
	for _, test := range tests {
		_, err := run(t, test.args...)
		if err == nil || !strings.Contains(err.Error(), test.err) {
			t.Errorf("%q returned %v expected %q", test.args, err, test.err)
		}
	}
}

func TestWriteArgs(t *testing.T) {
	// Rejected before the bus is opened.
	if _, err := run(t, "write", "--cmd", "6", "0x00"); err == nil || !strings.Contains(err.Error(), "--addr is required") {
		t.Errorf("write without --addr returned %v", err)
	}
	if _, err := run(t, "write", "--addr", "0x100", "--cmd", "6", "0x00"); err == nil || !strings.Contains(err.Error(), "7 bits") {
		t.Errorf("write --addr 0x100 returned %v", err)
	}
	if _, err := run(t, "write", "--addr", "0x5a", "--cmd", "6", "--word", "1", "2"); err == nil {
		t.Error("write --word accepted two values")
	}
	if _, err := run(t, "write", "--addr", "0x5a", "--cmd", "6", "zz"); err == nil {
		t.Error("write accepted an invalid byte")
	}
}
