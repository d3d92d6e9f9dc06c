// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"fmt"

	"github.com/yeetrun/kargs/pkg/argtype"
)

// OptionConfig describes an Option. Default, when non-nil, is copied.
type OptionConfig[T any] struct {
	Long        string // used as --long; required
	Short       string // used as -s; optional, one character
	Description string
	Required    bool
	Default     *T
}

// Option is a named property that always takes a value: --output file.txt.
type Option[T any] struct {
	property
	typ      argtype.Type[T]
	long     string
	short    string
	required bool
	def      *T
	value    *T
	set      bool
}

// NewOption defines an option on cmd. It panics if the names are malformed
// or already used in cmd.
func NewOption[T any](cmd *Subcommand, typ argtype.Type[T], cfg OptionConfig[T]) *Option[T] {
	checkLongName(cfg.Long)
	checkShortName(cfg.Short)
	o := &Option[T]{
		property: property{description: cfg.Description},
		typ:      typ,
		long:     cfg.Long,
		short:    cfg.Short,
		required: cfg.Required,
	}
	if cfg.Default != nil {
		def := *cfg.Default
		o.def = &def
	}
	o.Reset()
	cmd.register(o)
	return o
}

func (o *Option[T]) isOption() {}

func (o *Option[T]) LongName() string { return o.long }
func (o *Option[T]) ShortName() string { return o.short }
func (o *Option[T]) Required() bool { return o.required }

// Value returns the current value, or the zero T when there is none.
func (o *Option[T]) Value() T {
	if o.value == nil {
		var zero T
		return zero
	}
	return *o.value
}

// HasValue reports whether the option holds a value, parsed or default.
func (o *Option[T]) HasValue() bool { return o.value != nil }

// IsSet reports whether the option was given on the command line, even if
// the value given equals the default.
func (o *Option[T]) IsSet() bool { return o.set }

// Default returns the constructed default, if any.
func (o *Option[T]) Default() (T, bool) {
	if o.def == nil {
		var zero T
		return zero, false
	}
	return *o.def, true
}

// ValueOrDefault returns the current value, falling back to the default.
func (o *Option[T]) ValueOrDefault() T {
	if o.value != nil {
		return *o.value
	}
	v, _ := o.Default()
	return v
}

func (o *Option[T]) ParseValue(raw string) error {
	return o.parseAs(raw, "--"+o.long)
}

func (o *Option[T]) parseAs(raw, name string) error {
	v, err := o.typ.Convert(raw)
	if err != nil {
		return conversionFailure("option", name, raw, err)
	}
	o.value = &v
	o.set = true
	return nil
}

func (o *Option[T]) IsValid() bool {
	if o.value == nil {
		return !o.required
	}
	return o.typ.Validate(*o.value)
}

func (o *Option[T]) ValidationError() string {
	switch {
	case o.required && o.value == nil:
		return fmt.Sprintf("Option --%s is required", o.long)
	case o.value != nil && !o.typ.Validate(*o.value):
		return fmt.Sprintf("Invalid value for --%s: expected %s", o.long, o.typ.Describe())
	}
	return ""
}

func (o *Option[T]) Reset() {
	o.value = nil
	if o.def != nil {
		v := *o.def
		o.value = &v
	}
	o.set = false
}

func (o *Option[T]) ValueString() string {
	if o.value == nil {
		return ""
	}
	return formatValue(*o.value)
}

func (o *Option[T]) TypeTag() string { return o.typ.Tag() }
func (o *Option[T]) TypeDescription() string { return o.typ.Describe() }
