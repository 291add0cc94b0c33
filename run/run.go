// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the execution control for jot: the pipeline
// from source text to formatted result.
// It is factored out of main so it can be used for tests.
package run // import "github.com/jotlang/jot/run"

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/exec"
	"github.com/jotlang/jot/parse"
	"github.com/jotlang/jot/scan"
	"github.com/jotlang/jot/value"
)

// cpuTime reports the user and system CPU time used so far.
// It is replaced on systems that can measure it.
var cpuTime = func() (user, sys time.Duration) {
	return 0, 0
}

// Run tokenizes, parses, resolves and evaluates the source, returning the
// resulting array. Each stage stops the pipeline at its first error, which
// is returned wrapped with the name of the stage; errors.Cause recovers
// the stage's own error.
func Run(conf *config.Config, source string) (value.Array, error) {
	if conf == nil {
		conf = new(config.Config)
	}
	if conf.Debug("cpu") {
		user, sys := cpuTime()
		defer reportCPU(conf, time.Now(), user, sys)
	}
	toks, err := scan.Tokenize(conf, source)
	if err != nil {
		return value.Array{}, errors.Wrap(err, "tokenize error")
	}
	tree, err := parse.Parse(conf, toks)
	if err != nil {
		return value.Array{}, errors.Wrap(err, "parse error")
	}
	if conf.Debug("parse") {
		fmt.Fprintln(conf.Output(), parse.Tree(tree))
	}
	context := exec.NewContext(conf)
	expr, err := context.Resolve(tree)
	if err != nil {
		return value.Array{}, errors.Wrap(err, "semantic error")
	}
	result, err := context.Eval(expr)
	if err != nil {
		return value.Array{}, errors.Wrap(err, "eval error")
	}
	if conf.Debug("types") {
		fmt.Fprintf(conf.Output(), "%T %v\n", result, result.Shape())
	}
	return result, nil
}

// Evaluate evaluates the source with the default configuration and
// returns the formatted result. It never panics: every failure is
// rendered as text beginning "Error: ".
func Evaluate(source string) string {
	return EvaluateConfig(nil, source)
}

// EvaluateConfig is like Evaluate but uses the given configuration.
// With the "panic" debug flag set, internal failures are not recovered.
func EvaluateConfig(conf *config.Config, source string) string {
	text, _ := Eval(conf, source)
	return text
}

// Eval is like EvaluateConfig but also reports whether the evaluation
// succeeded, so the host can send failures to the error output.
func Eval(conf *config.Config, source string) (text string, ok bool) {
	if !conf.Debug("panic") {
		defer func() {
			if r := recover(); r != nil {
				text, ok = Render(errors.Errorf("internal error: %v", r)), false
			}
		}()
	}
	result, err := Run(conf, source)
	if err != nil {
		return Render(err), false
	}
	return result.String(), true
}

// Render formats an error as Evaluate reports it.
func Render(err error) string {
	return "Error: " + err.Error()
}

// reportCPU prints the time used since start, given the CPU times
// read at the start.
func reportCPU(conf *config.Config, start time.Time, user0, sys0 time.Duration) {
	real := time.Since(start)
	user, sys := cpuTime()
	user, sys = user-user0, sys-sys0
	fmt.Fprintf(conf.ErrOutput(), "(%s real, %s user, %s sys)\n",
		real.Round(time.Microsecond), user.Round(time.Microsecond), sys.Round(time.Microsecond))
}
