// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"github.com/yeetrun/kargs/pkg/argtype"
)

// OptionalOptionConfig describes an OptionalOption. WhenPresent defaults to
// "true".
type OptionalOptionConfig struct {
	Long        string
	Description string
	WhenPresent string
}

// OptionalOption is used either as a flag or with a value:
// --color alone means WhenPresent, --color never sets "never".
// It has no short form.
type OptionalOption struct {
	property
	typ   *argtype.Optional
	long  string
	value *string
	set   bool
}

// NewOptionalOption defines an optional-value option on cmd.
func NewOptionalOption(cmd *Subcommand, cfg OptionalOptionConfig) *OptionalOption {
	checkLongName(cfg.Long)
	whenPresent := cfg.WhenPresent
	if whenPresent == "" {
		whenPresent = "true"
	}
	o := &OptionalOption{
		property: property{description: cfg.Description},
		typ:      argtype.OptionalValue(whenPresent),
		long:     cfg.Long,
	}
	cmd.register(o)
	return o
}

func (o *OptionalOption) LongName() string { return o.long }

// WhenPresent is the value stored when the option is given bare.
func (o *OptionalOption) WhenPresent() string { return o.typ.WhenPresent }

func (o *OptionalOption) Value() string {
	if o.value == nil {
		return ""
	}
	return *o.value
}

func (o *OptionalOption) HasValue() bool { return o.value != nil }
func (o *OptionalOption) IsSet() bool { return o.set }

func (o *OptionalOption) ParseValue(raw string) error {
	v, err := o.typ.Convert(raw)
	if err != nil {
		return conversionFailure("option", "--"+o.long, raw, err)
	}
	o.value = &v
	o.set = true
	return nil
}

// SetAsFlag records that the option was given without a value.
func (o *OptionalOption) SetAsFlag() {
	v := o.typ.WhenPresent
	o.value = &v
	o.set = true
}

func (o *OptionalOption) IsValid() bool { return true }
func (o *OptionalOption) ValidationError() string { return "" }
func (o *OptionalOption) TypeTag() string { return o.typ.Tag() }

func (o *OptionalOption) Reset() {
	o.value = nil
	o.set = false
}
