// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"fmt"
	"strings"

	"github.com/yeetrun/kargs/pkg/argtype"
)

// ArgumentConfig describes a positional Argument. Arguments are required
// unless Optional is set.
type ArgumentConfig struct {
	Name        string
	Description string
	Optional    bool
}

// Argument is a positional property. Arguments are filled in the order they
// were defined on their Subcommand.
type Argument[T any] struct {
	property
	typ      argtype.Type[T]
	name     string
	required bool
	value    *T
}

// NewArgument defines the next positional argument of cmd. It panics if
// the name is blank or already used by another argument of cmd.
func NewArgument[T any](cmd *Subcommand, typ argtype.Type[T], cfg ArgumentConfig) *Argument[T] {
	if strings.TrimSpace(cfg.Name) == "" {
		panic("kargs: argument name cannot be blank")
	}
	a := &Argument[T]{
		property: property{description: cfg.Description},
		typ:      typ,
		name:     cfg.Name,
		required: !cfg.Optional,
	}
	cmd.register(a)
	return a
}

func (a *Argument[T]) isArgument() {}

func (a *Argument[T]) Name() string { return a.name }
func (a *Argument[T]) Required() bool { return a.required }
func (a *Argument[T]) HasValue() bool { return a.value != nil }
func (a *Argument[T]) TypeTag() string { return a.typ.Tag() }
func (a *Argument[T]) TypeDescription() string { return a.typ.Describe() }

// Value returns the parsed value, or the zero T when there is none.
func (a *Argument[T]) Value() T {
	if a.value == nil {
		var zero T
		return zero
	}
	return *a.value
}

func (a *Argument[T]) ParseValue(raw string) error {
	v, err := a.typ.Convert(raw)
	if err != nil {
		return conversionFailure("argument", a.name, raw, err)
	}
	a.value = &v
	return nil
}

func (a *Argument[T]) IsValid() bool {
	if a.value == nil {
		return !a.required
	}
	return a.typ.Validate(*a.value)
}

func (a *Argument[T]) ValidationError() string {
	switch {
	case a.required && a.value == nil:
		return fmt.Sprintf("Argument '%s' is required", a.name)
	case a.value != nil && !a.typ.Validate(*a.value):
		return fmt.Sprintf("Invalid value for argument '%s': expected %s", a.name, a.typ.Describe())
	}
	return ""
}

func (a *Argument[T]) Reset() { a.value = nil }

func (a *Argument[T]) ValueString() string {
	if a.value == nil {
		return ""
	}
	return formatValue(*a.value)
}
