// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/kargs/pkg/argtype"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", contains)
		}
		if msg, _ := r.(string); !strings.Contains(msg, contains) {
			t.Fatalf("panic = %v, want it to contain %q", r, contains)
		}
	}()
	fn()
}

func TestDefinitionPanics(t *testing.T) {
	tests := []struct {
		name     string
		contains string
		define   func(cmd *Subcommand)
	}{
		{
			name:     "blank long",
			contains: "blank",
			define: func(cmd *Subcommand) {
				NewFlag(cmd, FlagConfig{Long: " "})
			},
		},
		{
			name:     "dashed long",
			contains: "dashes",
			define: func(cmd *Subcommand) {
				NewOption(cmd, argtype.String(), OptionConfig[string]{Long: "--name"})
			},
		},
		{
			name:     "long with equals",
			contains: "'='",
			define: func(cmd *Subcommand) {
				NewOption(cmd, argtype.String(), OptionConfig[string]{Long: "a=b"})
			},
		},
		{
			name:     "long short name",
			contains: "exactly one character",
			define: func(cmd *Subcommand) {
				NewFlag(cmd, FlagConfig{Long: "verbose", Short: "vv"})
			},
		},
		{
			name:     "duplicate long",
			contains: "--out defined twice",
			define: func(cmd *Subcommand) {
				NewOption(cmd, argtype.String(), OptionConfig[string]{Long: "out"})
				NewFlag(cmd, FlagConfig{Long: "out"})
			},
		},
		{
			name:     "optional option shares long",
			contains: "--color defined twice",
			define: func(cmd *Subcommand) {
				NewFlag(cmd, FlagConfig{Long: "color"})
				NewOptionalOption(cmd, OptionalOptionConfig{Long: "color"})
			},
		},
		{
			name:     "short shared by option and flag",
			contains: "-f is used by both --format and --force",
			define: func(cmd *Subcommand) {
				NewOption(cmd, argtype.String(), OptionConfig[string]{Long: "format", Short: "f"})
				NewFlag(cmd, FlagConfig{Long: "force", Short: "f"})
			},
		},
		{
			name:     "reserved long",
			contains: "reserved",
			define: func(cmd *Subcommand) {
				NewFlag(cmd, FlagConfig{Long: "help"})
			},
		},
		{
			name:     "reserved short",
			contains: "reserved",
			define: func(cmd *Subcommand) {
				NewOption(cmd, argtype.String(), OptionConfig[string]{Long: "host", Short: "h"})
			},
		},
		{
			name:     "blank argument",
			contains: "argument name cannot be blank",
			define: func(cmd *Subcommand) {
				NewArgument(cmd, argtype.String(), ArgumentConfig{})
			},
		},
		{
			name:     "duplicate argument",
			contains: `argument "src" defined twice`,
			define: func(cmd *Subcommand) {
				NewArgument(cmd, argtype.String(), ArgumentConfig{Name: "src"})
				NewArgument(cmd, argtype.Int(), ArgumentConfig{Name: "src"})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewSubcommand("test")
			expectPanic(t, tt.contains, func() { tt.define(cmd) })
		})
	}
}

func TestNewSubcommandBlankName(t *testing.T) {
	expectPanic(t, "blank", func() { NewSubcommand("  ") })
}

func TestPropertyBelongsToOneCommand(t *testing.T) {
	a := NewSubcommand("a")
	b := NewSubcommand("b")
	f := NewFlag(a, FlagConfig{Long: "verbose"})
	if f.Parent() != a {
		t.Fatalf("parent = %v, want a", f.Parent())
	}
	expectPanic(t, `already registered with "a"`, func() { b.register(f) })
}

func TestSubcommandRegistriesKeepOrder(t *testing.T) {
	c := newTestCommand("test", "t")

	var longs []string
	for _, o := range c.Options() {
		longs = append(longs, o.LongName())
	}
	if diff := cmp.Diff([]string{"string", "number", "range", "choice", "double"}, longs); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	var flags []string
	for _, f := range c.Flags() {
		flags = append(flags, f.LongName())
	}
	if diff := cmp.Diff([]string{"verbose", "debug", "force"}, flags); diff != "" {
		t.Fatalf("flags mismatch (-want +got):\n%s", diff)
	}

	var args []string
	for _, a := range c.Arguments() {
		args = append(args, a.Name())
	}
	if diff := cmp.Diff([]string{"input", "output"}, args); diff != "" {
		t.Fatalf("arguments mismatch (-want +got):\n%s", diff)
	}

	if got := len(c.OptionalOptions()); got != 1 {
		t.Fatalf("optional options = %d, want 1", got)
	}
	if diff := cmp.Diff([]string{"t"}, c.Aliases()); diff != "" {
		t.Fatalf("aliases mismatch (-want +got):\n%s", diff)
	}
	if got := c.Description(); got != "Test command" {
		t.Fatalf("description = %q", got)
	}
}

func TestSubcommandAccessorsReturnCopies(t *testing.T) {
	c := newTestCommand("test", "t")
	c.Aliases()[0] = "changed"
	c.Flags()[0] = nil
	if c.Aliases()[0] != "t" || c.Flags()[0] == nil {
		t.Fatal("mutating an accessor result changed the command")
	}
}

func TestSubcommandValidateCollectsAll(t *testing.T) {
	cmd := NewSubcommand("test")
	NewOption(cmd, argtype.String(), OptionConfig[string]{Long: "config", Required: true})
	n := NewOption(cmd, argtype.IntRange(1, 5), OptionConfig[int]{Long: "n"})
	NewArgument(cmd, argtype.String(), ArgumentConfig{Name: "input"})

	// Bypass conversion to store an out-of-range value.
	v := 9
	n.value = &v

	want := []string{
		"Option --config is required",
		"Invalid value for --n: expected integer between 1 and 5",
		"Argument 'input' is required",
	}
	if diff := cmp.Diff(want, cmd.Validate()); diff != "" {
		t.Fatalf("Validate mismatch (-want +got):\n%s", diff)
	}
}

func TestSubcommandMatches(t *testing.T) {
	cmd := NewSubcommand("build", WithAliases("b", "mk"))
	tests := []struct {
		token         string
		caseSensitive bool
		want          bool
	}{
		{"build", true, true},
		{"mk", true, true},
		{"Build", true, false},
		{"Build", false, true},
		{"MK", false, true},
		{"bui", false, false},
	}
	for _, tt := range tests {
		if got := cmd.matches(tt.token, tt.caseSensitive); got != tt.want {
			t.Errorf("matches(%q, %v) = %v, want %v", tt.token, tt.caseSensitive, got, tt.want)
		}
	}
}
