// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package configfile loads parser settings from TOML or YAML files.
package configfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/kargs/pkg/kargs"
	"gopkg.in/yaml.v3"
	"tailscale.com/types/ptr"
)

// Names are the file names Find looks for, in order.
var Names = []string{"kargs.toml", "kargs.yaml", "kargs.yml"}

// File is the on-disk form of kargs.Config. Fields left out of the file
// keep the value of the config it is applied to.
type File struct {
	Colors             *bool   `toml:"colors" yaml:"colors"`
	Strict             *bool   `toml:"strict" yaml:"strict"`
	HelpOnEmpty        *bool   `toml:"help_on_empty" yaml:"help_on_empty"`
	CaseSensitive      *bool   `toml:"case_sensitive" yaml:"case_sensitive"`
	AllowAbbreviations *bool   `toml:"allow_abbreviations" yaml:"allow_abbreviations"`
	Version            *string `toml:"version" yaml:"version"`
}

// Apply returns base with every field set in f overridden.
func (f *File) Apply(base kargs.Config) kargs.Config {
	if f == nil {
		return base
	}
	if f.Colors != nil {
		base.ColorsEnabled = *f.Colors
	}
	if f.Strict != nil {
		base.StrictMode = *f.Strict
	}
	if f.HelpOnEmpty != nil {
		base.HelpOnEmpty = *f.HelpOnEmpty
	}
	if f.CaseSensitive != nil {
		base.CaseSensitive = *f.CaseSensitive
	}
	if f.AllowAbbreviations != nil {
		base.AllowAbbreviations = *f.AllowAbbreviations
	}
	if f.Version != nil {
		base.ProgramVersion = *f.Version
	}
	return base
}

// Read decodes the file at path. The format is chosen by extension:
// .toml, .yaml or .yml. Unknown keys are an error.
func Read(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(raw), &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("failed to parse %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, path)
	}
	return &f, nil
}

// Load reads path and applies it over kargs.DefaultConfig.
func Load(path string) (kargs.Config, error) {
	f, err := Read(path)
	if err != nil {
		return kargs.Config{}, err
	}
	return f.Apply(kargs.DefaultConfig()), nil
}

// Find walks up from startDir looking for one of Names. It returns
// os.ErrNotExist when no directory up to the root has one.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// FromConfig returns a File with every field of cfg set.
func FromConfig(cfg kargs.Config) *File {
	return &File{
		Colors:             ptr.To(cfg.ColorsEnabled),
		Strict:             ptr.To(cfg.StrictMode),
		HelpOnEmpty:        ptr.To(cfg.HelpOnEmpty),
		CaseSensitive:      ptr.To(cfg.CaseSensitive),
		AllowAbbreviations: ptr.To(cfg.AllowAbbreviations),
		Version:            ptr.To(cfg.ProgramVersion),
	}
}

// Encode writes cfg to w as TOML.
func Encode(w io.Writer, cfg kargs.Config) error {
	return toml.NewEncoder(w).Encode(FromConfig(cfg))
}
