// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"github.com/yeetrun/kargs/pkg/argtype"
)

// FlagConfig describes a Flag.
type FlagConfig struct {
	Long        string
	Short       string
	Description string
	Default     bool
}

// Flag is a boolean property that takes no value: --verbose, -v.
// Whether it was given is tracked apart from its value, so a flag that
// defaults to true is not set until it appears on the command line.
type Flag struct {
	property
	long  string
	short string
	def   bool
	value bool
	set   bool
}

// NewFlag defines a flag on cmd. It panics if the names are malformed or
// already used in cmd.
func NewFlag(cmd *Subcommand, cfg FlagConfig) *Flag {
	checkLongName(cfg.Long)
	checkShortName(cfg.Short)
	f := &Flag{
		property: property{description: cfg.Description},
		long:     cfg.Long,
		short:    cfg.Short,
		def:      cfg.Default,
		value:    cfg.Default,
	}
	cmd.register(f)
	return f
}

func (f *Flag) LongName() string { return f.long }
func (f *Flag) ShortName() string { return f.short }
func (f *Flag) Value() bool { return f.value }
func (f *Flag) Default() bool { return f.def }
func (f *Flag) IsSet() bool { return f.set }

// Set turns the flag on. It is what the parser does when the flag appears.
func (f *Flag) Set() {
	f.value = true
	f.set = true
}

// ParseValue accepts the boolean literals of argtype.Bool, as in
// --verbose=false.
func (f *Flag) ParseValue(raw string) error {
	return f.parseAs(raw, "--"+f.long)
}

func (f *Flag) parseAs(raw, name string) error {
	v, err := argtype.ParseBool(raw)
	if err != nil {
		return conversionFailure("flag", name, raw, err)
	}
	f.value = v
	f.set = true
	return nil
}

func (f *Flag) IsValid() bool { return true }
func (f *Flag) ValidationError() string { return "" }

func (f *Flag) Reset() {
	f.value = f.def
	f.set = false
}
