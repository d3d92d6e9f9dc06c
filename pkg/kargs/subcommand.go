// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Subcommand is a named command with its options, flags, positional
// arguments and optional options, each kept in definition order.
//
// Property values live on the property instances and are not reset between
// Parse calls. A Subcommand must not be parsed by two goroutines at once.
type Subcommand struct {
	name        string
	description string
	aliases     []string
	run         func(context.Context) error

	all       []Property // every property in registration order
	options   []OptionProperty
	flags     []*Flag
	arguments []ArgumentProperty
	optionals []*OptionalOption

	longNames  set.Set[string]
	shortNames map[string]string // short name -> long name that owns it
	argNames   set.Set[string]
}

// SubcommandOption configures a Subcommand at construction.
type SubcommandOption func(*Subcommand)

// WithDescription sets the one-line description shown in help.
func WithDescription(desc string) SubcommandOption {
	return func(s *Subcommand) {
		s.description = desc
	}
}

// WithAliases adds alternative names for the command.
func WithAliases(aliases ...string) SubcommandOption {
	return func(s *Subcommand) {
		s.aliases = append(s.aliases, aliases...)
	}
}

// WithRun sets the function called after a successful parse.
func WithRun(run func(context.Context) error) SubcommandOption {
	return func(s *Subcommand) {
		s.run = run
	}
}

// NewSubcommand returns an empty command. It panics if name is blank.
func NewSubcommand(name string, opts ...SubcommandOption) *Subcommand {
	if strings.TrimSpace(name) == "" {
		panic("kargs: subcommand name cannot be blank")
	}
	s := &Subcommand{
		name:      name,
		longNames: set.Set[string]{},
		argNames:  set.Set[string]{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetRun replaces the function called after a successful parse. It is
// useful when the function needs the properties defined after NewSubcommand.
func (s *Subcommand) SetRun(run func(context.Context) error) {
	s.run = run
}

func (s *Subcommand) Name() string { return s.name }
func (s *Subcommand) Description() string { return s.description }
func (s *Subcommand) Aliases() []string { return slices.Clone(s.aliases) }

func (s *Subcommand) Options() []OptionProperty { return slices.Clone(s.options) }
func (s *Subcommand) Flags() []*Flag { return slices.Clone(s.flags) }
func (s *Subcommand) Arguments() []ArgumentProperty { return slices.Clone(s.arguments) }
func (s *Subcommand) OptionalOptions() []*OptionalOption { return slices.Clone(s.optionals) }

// register files p under the registry for its kind. Help and "-h" are
// reserved for help requests and cannot be defined.
func (s *Subcommand) register(p Property) {
	switch p := p.(type) {
	case *Flag:
		s.claim(p.long, p.short)
		s.flags = append(s.flags, p)
	case *OptionalOption:
		s.claim(p.long, "")
		s.optionals = append(s.optionals, p)
	case OptionProperty:
		s.claim(p.LongName(), p.ShortName())
		s.options = append(s.options, p)
	case ArgumentProperty:
		if s.argNames.Contains(p.Name()) {
			panic(fmt.Sprintf("kargs: %s: argument %q defined twice", s.name, p.Name()))
		}
		s.argNames.Add(p.Name())
		s.arguments = append(s.arguments, p)
	default:
		panic(fmt.Sprintf("kargs: %s: unsupported property type %T", s.name, p))
	}
	p.attach(s)
	s.all = append(s.all, p)
}

func (s *Subcommand) claim(long, short string) {
	if long == "help" || short == "h" {
		panic(fmt.Sprintf("kargs: %s: --help and -h are reserved", s.name))
	}
	if s.longNames.Contains(long) {
		panic(fmt.Sprintf("kargs: %s: --%s defined twice", s.name, long))
	}
	if short != "" {
		if owner, ok := s.shortNames[short]; ok {
			panic(fmt.Sprintf("kargs: %s: -%s is used by both --%s and --%s", s.name, short, owner, long))
		}
		mak.Set(&s.shortNames, short, long)
	}
	s.longNames.Add(long)
}

// matches reports whether token names this command or one of its aliases.
func (s *Subcommand) matches(token string, caseSensitive bool) bool {
	eq := func(a, b string) bool { return a == b }
	if !caseSensitive {
		eq = strings.EqualFold
	}
	if eq(s.name, token) {
		return true
	}
	return slices.ContainsFunc(s.aliases, func(a string) bool { return eq(a, token) })
}

func (s *Subcommand) option(long string) OptionProperty {
	for _, o := range s.options {
		if o.LongName() == long {
			return o
		}
	}
	return nil
}

func (s *Subcommand) optionByShort(short string) OptionProperty {
	for _, o := range s.options {
		if o.ShortName() != "" && o.ShortName() == short {
			return o
		}
	}
	return nil
}

func (s *Subcommand) optional(long string) *OptionalOption {
	for _, o := range s.optionals {
		if o.long == long {
			return o
		}
	}
	return nil
}

func (s *Subcommand) flag(long string) *Flag {
	for _, f := range s.flags {
		if f.long == long {
			return f
		}
	}
	return nil
}

func (s *Subcommand) flagByShort(short string) *Flag {
	for _, f := range s.flags {
		if f.short != "" && f.short == short {
			return f
		}
	}
	return nil
}

// Validate returns the validation message of every invalid property, in
// registration order. It does not stop at the first problem.
func (s *Subcommand) Validate() []string {
	var problems []string
	for _, p := range s.all {
		if msg := p.ValidationError(); msg != "" {
			problems = append(problems, msg)
		}
	}
	return problems
}

// Reset restores every property to its constructed state.
func (s *Subcommand) Reset() {
	for _, p := range s.all {
		p.Reset()
	}
}

func (s *Subcommand) execute(ctx context.Context) error {
	if s.run == nil {
		return nil
	}
	return s.run(ctx)
}
