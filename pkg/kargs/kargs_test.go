// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"context"
	"strings"

	"github.com/yeetrun/kargs/pkg/argtype"
	"tailscale.com/types/ptr"
)

// recordingSink keeps everything the parser emits.
type recordingSink struct {
	globalHelp  int
	commandHelp []string
	versions    []string
	errors      []string
	warnings    []string
}

func (r *recordingSink) GlobalHelp(string, []*Subcommand) { r.globalHelp++ }

func (r *recordingSink) CommandHelp(_ string, cmd *Subcommand) {
	r.commandHelp = append(r.commandHelp, cmd.Name())
}

func (r *recordingSink) Version(program, version string) {
	r.versions = append(r.versions, program+" "+version)
}

func (r *recordingSink) Error(msg string) { r.errors = append(r.errors, msg) }
func (r *recordingSink) Warning(msg string) { r.warnings = append(r.warnings, msg) }

func (r *recordingSink) anyError(substr string) bool {
	for _, e := range r.errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

// testCommand has one property of every kind, none of them required, and
// counts its runs.
type testCommand struct {
	*Subcommand
	runs int

	str    *Option[string]
	number *Option[int]
	rng    *Option[int]
	choice *Option[string]
	double *Option[float64]

	verbose *Flag
	debug   *Flag
	force   *Flag

	color *OptionalOption

	input  *Argument[string]
	output *Argument[string]
}

func newTestCommand(name string, aliases ...string) *testCommand {
	c := &testCommand{
		Subcommand: NewSubcommand(name, WithDescription("Test command"), WithAliases(aliases...)),
	}
	c.str = NewOption(c.Subcommand, argtype.String(), OptionConfig[string]{Long: "string", Short: "s", Description: "String option"})
	c.number = NewOption(c.Subcommand, argtype.Int(), OptionConfig[int]{Long: "number", Short: "n", Description: "Integer option"})
	c.rng = NewOption(c.Subcommand, argtype.IntRange(1, 10), OptionConfig[int]{Long: "range", Description: "Range option"})
	c.choice = NewOption(c.Subcommand, argtype.Choice("a", "b", "c"), OptionConfig[string]{Long: "choice", Short: "c", Description: "Choice option"})
	c.double = NewOption(c.Subcommand, argtype.Double(), OptionConfig[float64]{Long: "double", Short: "d", Description: "Double option"})

	c.verbose = NewFlag(c.Subcommand, FlagConfig{Long: "verbose", Short: "v", Description: "Verbose flag"})
	c.debug = NewFlag(c.Subcommand, FlagConfig{Long: "debug", Description: "Debug flag"})
	c.force = NewFlag(c.Subcommand, FlagConfig{Long: "force", Short: "f", Description: "Force flag"})

	c.color = NewOptionalOption(c.Subcommand, OptionalOptionConfig{Long: "color", Description: "Color mode", WhenPresent: "auto"})

	c.input = NewArgument(c.Subcommand, argtype.String(), ArgumentConfig{Name: "input", Description: "Input argument", Optional: true})
	c.output = NewArgument(c.Subcommand, argtype.String(), ArgumentConfig{Name: "output", Description: "Output argument", Optional: true})

	c.SetRun(func(context.Context) error {
		c.runs++
		return nil
	})
	return c
}

// complexCommand is the end-to-end scenario command.
type complexCommand struct {
	*Subcommand
	runs int

	config  *Option[string]
	format  *Option[string]
	threads *Option[int]
	timeout *Option[float64]

	verbose *Flag
	dryRun  *Flag
	force   *Flag

	input  *Argument[string]
	output *Argument[string]
}

func newComplexCommand() *complexCommand {
	c := &complexCommand{Subcommand: NewSubcommand("complex", WithDescription("Complex test command"), WithAliases("cx"))}
	c.input = NewArgument(c.Subcommand, argtype.String(), ArgumentConfig{Name: "input", Description: "Input file"})
	c.output = NewArgument(c.Subcommand, argtype.String(), ArgumentConfig{Name: "output", Description: "Output file", Optional: true})

	c.format = NewOption(c.Subcommand, argtype.Choice("json", "xml", "yaml"), OptionConfig[string]{Long: "format", Short: "F", Description: "Output format", Default: ptr.To("json")})
	c.threads = NewOption(c.Subcommand, argtype.IntRange(1, 32), OptionConfig[int]{Long: "threads", Short: "t", Description: "Thread count", Default: ptr.To(4)})
	c.timeout = NewOption(c.Subcommand, argtype.Double(), OptionConfig[float64]{Long: "timeout", Description: "Timeout in seconds"})
	c.config = NewOption(c.Subcommand, argtype.String(), OptionConfig[string]{Long: "config", Short: "c", Description: "Config file", Required: true})

	c.verbose = NewFlag(c.Subcommand, FlagConfig{Long: "verbose", Short: "v", Description: "Verbose output"})
	c.dryRun = NewFlag(c.Subcommand, FlagConfig{Long: "dry-run", Short: "n", Description: "Dry run mode"})
	c.force = NewFlag(c.Subcommand, FlagConfig{Long: "force", Short: "f", Description: "Force operation"})

	c.SetRun(func(context.Context) error {
		c.runs++
		return nil
	})
	return c
}

func newParser(cfg Config, cmds ...*Subcommand) (*Parser, *recordingSink) {
	sink := &recordingSink{}
	p := NewParser("testapp", cfg, WithSink(sink))
	p.Subcommands(cmds...)
	return p, sink
}

func strictConfig() Config {
	cfg := DefaultConfig()
	cfg.StrictMode = true
	return cfg
}
