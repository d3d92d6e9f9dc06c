// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtype

import (
	"fmt"
	"strconv"
	"strings"

	"tailscale.com/util/set"
)

// Type converts raw command-line tokens into values of T and validates them.
//
// Convert must not consult external state; only FilePath defers its checks to
// Validate, which is allowed to look at the filesystem. Validate must be
// idempotent and free of side effects.
type Type[T any] interface {
	// Name is a short diagnostic label, e.g. "Int".
	Name() string
	// Convert turns raw into a T or returns a *ConversionError.
	Convert(raw string) (T, error)
	// Validate reports whether an already converted value is acceptable.
	Validate(v T) bool
	// Describe is the human text for what values are accepted.
	Describe() string
	// Tag is the help display tag, such as "<int>". Plain strings have none.
	Tag() string
}

// ConversionError is returned by Convert when a raw token is not a valid
// value for the type.
type ConversionError struct {
	Type   string // Name() of the type that rejected the value
	Value  string // raw token
	Reason string // user-facing explanation
}

func (e *ConversionError) Error() string {
	return e.Reason
}

type stringType struct{}

// String returns the identity type.
func String() Type[string] { return stringType{} }

func (stringType) Name() string { return "String" }
func (stringType) Convert(raw string) (string, error) { return raw, nil }
func (stringType) Validate(string) bool { return true }
func (stringType) Describe() string { return "any String" }
func (stringType) Tag() string { return "" }

type intType struct{}

// Int returns a base-10 integer type.
func Int() Type[int] { return intType{} }

func (intType) Name() string { return "Int" }

func (intType) Convert(raw string) (int, error) {
	return atoi("Int", raw)
}

func (intType) Validate(int) bool { return true }
func (intType) Describe() string { return "any Int" }
func (intType) Tag() string { return "<int>" }

func atoi(typeName, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ConversionError{
			Type:   typeName,
			Value:  raw,
			Reason: fmt.Sprintf("`%s` is not a valid integer", raw),
		}
	}
	return n, nil
}

type doubleType struct{}

// Double returns a float64 type.
func Double() Type[float64] { return doubleType{} }

func (doubleType) Name() string { return "Double" }

func (doubleType) Convert(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ConversionError{
			Type:   "Double",
			Value:  raw,
			Reason: fmt.Sprintf("'%s' is not a valid number", raw),
		}
	}
	return f, nil
}

func (doubleType) Validate(float64) bool { return true }
func (doubleType) Describe() string { return "any Double" }
func (doubleType) Tag() string { return "<double>" }

type boolType struct{}

// Bool returns a boolean type accepting true/yes/1/on and false/no/0/off in
// any letter case.
func Bool() Type[bool] { return boolType{} }

func (boolType) Name() string { return "Boolean" }
func (boolType) Convert(raw string) (bool, error) { return ParseBool(raw) }
func (boolType) Validate(bool) bool { return true }
func (boolType) Describe() string { return "any Boolean" }
func (boolType) Tag() string { return "<bool>" }

// ParseBool is the boolean literal parser shared by Bool and flags given an
// explicit value.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	}
	return false, &ConversionError{
		Type:   "Boolean",
		Value:  raw,
		Reason: fmt.Sprintf("'%s' is not a valid boolean (true/false, yes/no, 1/0, on/off)", raw),
	}
}

// Range is an integer type bounded to [Min, Max]. Bounds are checked during
// conversion.
type Range struct {
	Min, Max int
}

// IntRange returns an integer type that rejects values outside [min, max].
func IntRange(min, max int) *Range {
	if min > max {
		panic(fmt.Sprintf("argtype: IntRange min %d is greater than max %d", min, max))
	}
	return &Range{Min: min, Max: max}
}

func (r *Range) Name() string { return "Int" }

func (r *Range) Convert(raw string) (int, error) {
	n, err := atoi(r.Name(), raw)
	if err != nil {
		return 0, err
	}
	if n < r.Min || n > r.Max {
		return 0, &ConversionError{
			Type:   r.Name(),
			Value:  raw,
			Reason: fmt.Sprintf("`%s` must be between %d and %d", raw, r.Min, r.Max),
		}
	}
	return n, nil
}

func (r *Range) Validate(n int) bool { return n >= r.Min && n <= r.Max }

func (r *Range) Describe() string {
	return fmt.Sprintf("integer between %d and %d", r.Min, r.Max)
}

func (r *Range) Tag() string { return fmt.Sprintf("<%d-%d>", r.Min, r.Max) }

// Choices is a string type restricted to a fixed, case-sensitive set.
type Choices struct {
	options []string
	members set.Set[string]
}

// Choice returns a type accepting exactly one of options.
func Choice(options ...string) *Choices {
	if len(options) == 0 {
		panic("argtype: Choice needs at least one option")
	}
	members := set.Set[string]{}
	for _, o := range options {
		members.Add(o)
	}
	return &Choices{options: append([]string(nil), options...), members: members}
}

// Options returns the allowed values in declaration order.
func (c *Choices) Options() []string {
	return append([]string(nil), c.options...)
}

func (c *Choices) Name() string { return "Choice" }

func (c *Choices) Convert(raw string) (string, error) {
	if !c.members.Contains(raw) {
		return "", &ConversionError{
			Type:   c.Name(),
			Value:  raw,
			Reason: fmt.Sprintf("`%s` is not a valid choice. Valid options: %s", raw, strings.Join(c.options, ", ")),
		}
	}
	return raw, nil
}

func (c *Choices) Validate(v string) bool { return c.members.Contains(v) }

func (c *Choices) Describe() string {
	return "one of: " + strings.Join(c.options, ", ")
}

func (c *Choices) Tag() string { return "<" + strings.Join(c.options, "|") + ">" }

// Optional is the identity string type backing flag-or-value options.
// WhenPresent is the value used when the option is given without a value.
type Optional struct {
	WhenPresent string
}

// OptionalValue returns an Optional whose bare form means whenPresent.
func OptionalValue(whenPresent string) *Optional {
	return &Optional{WhenPresent: whenPresent}
}

func (o *Optional) Name() string { return "OptionalValue" }
func (o *Optional) Convert(raw string) (string, error) { return raw, nil }
func (o *Optional) Validate(string) bool { return true }

func (o *Optional) Describe() string {
	return fmt.Sprintf("any String, or nothing for %q", o.WhenPresent)
}

func (o *Optional) Tag() string { return "[=value]" }
