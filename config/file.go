// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// FileNames lists the configuration files Find looks for, in order.
var FileNames = []string{".jot.toml", ".jot.yaml", ".jot.yml"}

// File is the on-disk form of a configuration. Zero fields leave
// the corresponding setting alone.
type File struct {
	Prompt      string   `toml:"prompt" yaml:"prompt"`
	History     string   `toml:"history" yaml:"history"`
	MaxDepth    int      `toml:"maxdepth" yaml:"maxdepth"`
	MaxElements int      `toml:"maxelements" yaml:"maxelements"`
	Debug       []string `toml:"debug" yaml:"debug"`
}

// Find returns the path of the first file from FileNames present in dir,
// or the empty string if there is none.
func Find(dir string) string {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads a configuration file. The format is chosen by extension:
// .toml for TOML, .yaml or .yml for YAML. Unknown keys are an error.
func Load(path string) (*File, error) {
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &f)
		if err != nil {
			return nil, errors.Wrap(err, path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("%s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		fd, err := os.Open(path)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		defer fd.Close()
		dec := yaml.NewDecoder(fd)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, path)
		}
	default:
		return nil, errors.Errorf("%s: unknown configuration format %q", path, ext)
	}
	if err := f.check(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return &f, nil
}

func (f *File) check() error {
	if f.MaxDepth < 0 {
		return errors.Errorf("maxdepth must be non-negative: %d", f.MaxDepth)
	}
	if f.MaxElements < 0 {
		return errors.Errorf("maxelements must be non-negative: %d", f.MaxElements)
	}
	for _, name := range f.Debug {
		if !isDebugFlag(name) {
			return errors.Errorf("unknown debug flag %q", name)
		}
	}
	return nil
}

// Apply copies the non-zero settings of f into c.
func (c *Config) Apply(f *File) {
	if f.Prompt != "" {
		c.SetPrompt(f.Prompt)
	}
	if f.History != "" {
		c.SetHistory(f.History)
	}
	if f.MaxDepth > 0 {
		c.SetMaxDepth(f.MaxDepth)
	}
	if f.MaxElements > 0 {
		c.SetMaxElements(f.MaxElements)
	}
	for _, name := range f.Debug {
		c.SetDebug(name, true)
	}
}

// LoadEnv overrides settings from the current environment:
//
//	JOT_PROMPT       prompt
//	JOT_HISTORY      history file
//	JOT_MAXDEPTH     maximum nesting depth
//	JOT_MAXELEMENTS  maximum array size
//	JOT_DEBUG        comma-separated debug flags to enable
func (c *Config) LoadEnv() {
	env.Load()
	if env.Has("JOT_PROMPT") {
		c.SetPrompt(env.Str("JOT_PROMPT"))
	}
	if env.Has("JOT_HISTORY") {
		c.SetHistory(env.Str("JOT_HISTORY"))
	}
	if n := env.Int("JOT_MAXDEPTH", 0); n > 0 {
		c.SetMaxDepth(n)
	}
	if n := env.Int("JOT_MAXELEMENTS", 0); n > 0 {
		c.SetMaxElements(n)
	}
	for _, name := range strings.Split(env.Str("JOT_DEBUG"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			c.SetDebug(name, true)
		}
	}
}
