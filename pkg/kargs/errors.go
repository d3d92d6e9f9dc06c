// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"errors"
	"strings"
)

// Error kinds. Every error returned by Parse matches exactly one of these
// with errors.Is.
var (
	// ErrConversion means a token could not be converted to the type of the
	// option or argument it was given to.
	ErrConversion = errors.New("conversion error")

	// ErrMissingValue means an option was the last token and had no value.
	ErrMissingValue = errors.New("missing value")

	// ErrUnknownOption means no option, flag or optional option has the given
	// name. Only returned in strict mode.
	ErrUnknownOption = errors.New("unknown option")

	// ErrUnknownCommand means the first token named no subcommand. Parse
	// reports it through the Sink and never returns it.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrValidation means one or more properties failed validation after
	// tokenizing. See ValidationError.
	ErrValidation = errors.New("validation error")

	// ErrTooManyArguments means more positional tokens were given than the
	// subcommand declares. Only returned in strict mode.
	ErrTooManyArguments = errors.New("too many arguments")
)

// ParseError is a single-cause failure found while tokenizing.
// Msg is the user-facing message; Err is the underlying cause, an
// *argtype.ConversionError for conversion failures.
type ParseError struct {
	Kind  error  // one of the Err* kinds above
	Name  string // option or argument as written, e.g. "--threads", "-t", "input"
	Value string // offending raw token, if any
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

// ValidationError collects every validation problem found for a subcommand.
// It is reported as one failure rather than one per problem.
type ValidationError struct {
	Command  string
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
