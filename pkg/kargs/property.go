// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yeetrun/kargs/pkg/argtype"
)

// Property is anything a Subcommand can hold: an Option, Flag, Argument or
// OptionalOption. A property belongs to exactly one Subcommand; the
// constructors register it immediately.
type Property interface {
	Description() string
	// Parent returns the Subcommand the property was registered with.
	Parent() *Subcommand
	// ParseValue converts raw and stores it. Failures are *ParseError.
	ParseValue(raw string) error
	IsValid() bool
	// ValidationError returns "" when IsValid is true.
	ValidationError() string
	// Reset restores the constructed state. Parse never calls it.
	Reset()

	attach(*Subcommand)
}

// OptionProperty is the type-erased view of an *Option[T].
type OptionProperty interface {
	Property
	LongName() string
	ShortName() string
	Required() bool
	HasValue() bool
	IsSet() bool
	// ValueString is the current value, which is the default until parsed,
	// formatted for display. It is "" when there is no value.
	ValueString() string
	TypeTag() string
	TypeDescription() string

	parseAs(raw, name string) error
	isOption()
}

// ArgumentProperty is the type-erased view of an *Argument[T].
type ArgumentProperty interface {
	Property
	Name() string
	Required() bool
	HasValue() bool
	ValueString() string
	TypeTag() string
	TypeDescription() string

	isArgument()
}

type property struct {
	description string
	parent      *Subcommand
}

func (p *property) Description() string { return p.description }

func (p *property) Parent() *Subcommand { return p.parent }

func (p *property) attach(cmd *Subcommand) {
	if p.parent != nil {
		panic(fmt.Sprintf("kargs: property already registered with %q", p.parent.name))
	}
	p.parent = cmd
}

func conversionFailure(kind, name, raw string, err error) error {
	var ce *argtype.ConversionError
	if !errors.As(err, &ce) {
		ce = &argtype.ConversionError{Value: raw, Reason: err.Error()}
	}
	return &ParseError{
		Kind:  ErrConversion,
		Name:  name,
		Value: raw,
		Msg:   fmt.Sprintf("Invalid value for %s %s: %s", kind, name, ce.Reason),
		Err:   ce,
	}
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func checkLongName(long string) {
	if strings.TrimSpace(long) == "" {
		panic("kargs: long name cannot be blank")
	}
	if strings.HasPrefix(long, "-") {
		panic(fmt.Sprintf("kargs: long name %q should not start with dashes", long))
	}
	if strings.ContainsAny(long, "= \t") {
		panic(fmt.Sprintf("kargs: long name %q contains '=' or whitespace", long))
	}
}

func checkShortName(short string) {
	if short == "" {
		return
	}
	if utf8.RuneCountInString(short) != 1 {
		panic(fmt.Sprintf("kargs: short name %q must be exactly one character", short))
	}
	if short == "-" {
		panic("kargs: short name should not be a dash")
	}
}
