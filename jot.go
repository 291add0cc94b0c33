// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/jotlang/jot/config"
	"github.com/jotlang/jot/run"
)

var (
	execute     = flag.String("e", "", "evaluate the `expression` and exit")
	prompt      = flag.String("prompt", "", "interactive command `prompt`")
	configFile  = flag.String("config", "", "configuration `file` (.toml, .yaml or .yml)")
	maxdepth    = flag.Int("maxdepth", config.DefaultMaxDepth, "maximum nesting `depth` of an expression")
	maxelements = flag.Int("maxelements", config.DefaultMaxElements, "maximum number of `elements` in an array")
	debugFlags  = flag.String("debug", "", "comma-separated `names` of debug settings to enable")
)

// defaultPrompt is the prompt of the interactive session unless configured.
const defaultPrompt = "   "

// isTTY reports whether the file descriptor is a terminal.
// It is replaced on systems that can tell.
var isTTY = func(fd uintptr) bool { return false }

var conf config.Config

func main() {
	log.SetFlags(0)
	log.SetPrefix("jot: ")

	flag.Usage = usage
	flag.Parse()

	if err := initConf(&conf); err != nil {
		log.Fatal(err)
	}

	if *execute != "" {
		if !evaluate(&conf, *execute) {
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		ok := true
		for _, name := range flag.Args() {
			fd, err := os.Open(name)
			if err != nil {
				log.Fatal(err)
			}
			if !runReader(&conf, fd) {
				ok = false
			}
			fd.Close()
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if isTTY(os.Stdin.Fd()) {
		interactive(&conf)
		return
	}
	if !runReader(&conf, os.Stdin) {
		os.Exit(1)
	}
}

// initConf fills in the configuration. Later sources override earlier:
// the defaults, the configuration file, the environment, then flags.
func initConf(conf *config.Config) error {
	conf.SetPrompt(defaultPrompt)
	if home, err := os.UserHomeDir(); err == nil {
		conf.SetHistory(filepath.Join(home, ".jot_history"))
	}
	path := *configFile
	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = config.Find(home)
		}
	}
	if path != "" {
		f, err := config.Load(path)
		if err != nil {
			return err
		}
		conf.Apply(f)
	}
	conf.LoadEnv()
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "prompt":
			conf.SetPrompt(*prompt)
		case "maxdepth":
			conf.SetMaxDepth(*maxdepth)
		case "maxelements":
			conf.SetMaxElements(*maxelements)
		case "debug":
			for _, name := range strings.Split(*debugFlags, ",") {
				if name = strings.TrimSpace(name); name != "" && !conf.SetDebug(name, true) {
					err = errors.Errorf("unknown debug flag %q", name)
				}
			}
		}
	})
	return err
}

// evaluate runs one expression, printing the result to the output or the
// error to the error output. It reports whether evaluation succeeded.
func evaluate(conf *config.Config, line string) bool {
	text, ok := run.Eval(conf, line)
	if !ok {
		fmt.Fprintln(conf.ErrOutput(), text)
		return false
	}
	fmt.Fprintln(conf.Output(), text)
	return true
}

// runLine executes one line of input: a special command, a comment or an
// expression. It reports whether the line succeeded and whether the
// session should end.
func runLine(conf *config.Config, line string, in io.Reader) (ok, quit bool) {
	line = strings.TrimSpace(line)
	switch {
	case line == "", strings.HasPrefix(line, "NB."):
		return true, false
	case line == "help":
		line = ")help"
		fallthrough
	case strings.HasPrefix(line, ")"):
		quit, err := special(conf, line[1:], in)
		if err != nil {
			fmt.Fprintln(conf.ErrOutput(), run.Render(err))
			return false, quit
		}
		return true, quit
	}
	return evaluate(conf, line), false
}

// runReader executes each line read from r, stopping at )quit.
// It reports whether every line succeeded. A )demo runs unattended.
func runReader(conf *config.Config, r io.Reader) bool {
	ok := true
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		lineOK, quit := runLine(conf, scan.Text(), nil)
		ok = ok && lineOK
		if quit {
			break
		}
	}
	if err := scan.Err(); err != nil {
		log.Print(err)
		return false
	}
	return ok
}

// interactive runs a session with line editing and history.
func interactive(conf *config.Config) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	history := conf.History()
	if history != "" {
		if f, err := os.Open(history); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(history)
			if err != nil {
				log.Print(err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(conf.Prompt())
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.Print(err)
			}
			fmt.Fprintln(conf.Output())
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if _, quit := runLine(conf, line, os.Stdin); quit {
			return
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: jot [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}
