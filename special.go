// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/demo"
	"github.com/jotlang/jot/run"
)

func truth(x bool) int {
	if x {
		return 1
	}
	return 0
}

// special executes a special command, the text of a line after its
// leading ')'. User input for )demo comes from in. It reports whether
// the session should end.
func special(conf *config.Config, cmd string, in io.Reader) (quit bool, err error) {
	words := strings.Fields(cmd)
	if len(words) == 0 {
		return false, errors.New("): missing command")
	}
	w := conf.Output()
	switch name, args := words[0], words[1:]; name {
	case "help":
		if len(args) == 0 {
			fmt.Fprint(w, helpText())
			break
		}
		text, ok := helpVerb(args[0])
		if !ok {
			return false, errors.Errorf(")help: no verb %q", args[0])
		}
		fmt.Fprint(w, text)
	case "debug":
		switch len(args) {
		case 0:
			for _, s := range conf.DebugSettings() {
				fmt.Fprintln(w, s)
			}
		case 1:
			// Toggle the value.
			state := !conf.Debug(args[0])
			if !conf.SetDebug(args[0], state) {
				return false, errors.Errorf("no such debug flag: %s", args[0])
			}
			fmt.Fprintln(w, truth(state))
		case 2:
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 0 || n > 1 {
				return false, errors.Errorf("illegal value %q for debug flag %s", args[1], args[0])
			}
			if !conf.SetDebug(args[0], n == 1) {
				return false, errors.Errorf("no such debug flag: %s", args[0])
			}
		default:
			return false, errors.New("usage: )debug [name [0|1]]")
		}
	case "demo":
		if len(args) != 0 {
			return false, errors.New("usage: )demo")
		}
		// Use a default configuration.
		var demoConf config.Config
		demoConf.SetOutput(w)
		demoConf.SetErrOutput(w)
		eval := func(s string) string {
			return run.EvaluateConfig(&demoConf, s)
		}
		if err := demo.Run(in, eval, w); err != nil {
			return false, errors.Wrap(err, ")demo")
		}
		fmt.Fprintln(w, "Demo finished")
	case "maxdepth":
		return false, intSetting(w, name, args, conf.MaxDepth, conf.SetMaxDepth)
	case "maxelements":
		return false, intSetting(w, name, args, conf.MaxElements, conf.SetMaxElements)
	case "prompt":
		if len(args) == 0 {
			fmt.Fprintf(w, "%q\n", conf.Prompt())
			break
		}
		str, err := strconv.Unquote(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cmd), name)))
		if err != nil {
			return false, errors.New(`usage: )prompt "text"`)
		}
		conf.SetPrompt(str)
	case "quit":
		return true, nil
	default:
		return false, errors.Errorf(")%s: not recognized", name)
	}
	return false, nil
}

// intSetting prints or sets a positive integer setting.
func intSetting(w io.Writer, name string, args []string, get func() int, set func(int)) error {
	switch len(args) {
	case 0:
		fmt.Fprintf(w, "%d\n", get())
		return nil
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return errors.Errorf("illegal %s %q", name, args[0])
		}
		set(n)
		return nil
	}
	return errors.Errorf("usage: )%s [n]", name)
}
