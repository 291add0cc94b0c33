// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"io"
	"strings"
	"testing"
)

// We know jot works. These just test that the wrapper works.

func TestEval(t *testing.T) {
	var tests = []struct {
		input  string
		output string
	}{
		{"", ""},
		{"23", "23\n"},
		{"~3+~3", "0 2 4\n"},
		{"NB. two lines\n1+1\n2 2#~4", "2\n0 1\n2 3\n"},
	}
	for _, test := range tests {
		out, err := Eval(test.input)
		if err != nil {
			t.Errorf("evaluating %q: %v", test.input, err)
			continue
		}
		if out != test.output {
			t.Errorf("%q: expected %q; got %q", test.input, test.output, out)
		}
	}
}

func TestEvalError(t *testing.T) {
	var tests = []struct {
		input string
		error string
	}{
		{"1*2", "unrecognized character"},
		{"{1", "no monadic form"},
		{"5{~3", "index out of range"},
	}
	for _, test := range tests {
		_, err := Eval(test.input)
		if err == nil {
			t.Errorf("evaluating %q: expected %q; got nothing", test.input, test.error)
			continue
		}
		if !strings.Contains(err.Error(), test.error) {
			t.Errorf("%q: expected %q; got %q", test.input, test.error, err)
		}
	}
}

const demoText = `NB. This is a demo.
23
~10
1-0
~10
`

const demoOut = `23
0 1 2 3 4 5 6 7 8 9
0 1 2 3 4 5 6 7 8 9
`

const demoErr = `Error: semantic error: no dyadic form for "-" at offset 1` + "\n"

func TestDemo(t *testing.T) {
	demo := NewDemo(demoText)
	results := make([]byte, 0, 100)
	errors := make([]byte, 0, 100)
	for {
		result, err := demo.Next()
		if err == io.EOF {
			break
		}
		results = append(results, result...)
		if err != nil {
			errors = append(errors, err.Error()+"\n"...)
		}
	}
	if string(results) != demoOut {
		t.Errorf("expected %q; got %q", demoOut, results)
	}
	if string(errors) != demoErr {
		t.Errorf("expected error %q; got %q", demoErr, errors)
	}
}

func TestHelp(t *testing.T) {
	help := Help()
	for _, want := range []string{"<table>", "iota", "&lt;"} {
		if !strings.Contains(help, want) {
			t.Errorf("help lacks %q", want)
		}
	}
}
