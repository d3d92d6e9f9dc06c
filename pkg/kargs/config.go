// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

// Config controls parser behavior. It is read once by NewParser and never
// changed afterwards.
type Config struct {
	// ColorsEnabled is consumed by the output Sink; the parser itself never
	// emits escape codes.
	ColorsEnabled bool
	// StrictMode makes unknown options and extra positional arguments fatal
	// instead of warnings.
	StrictMode bool
	// HelpOnEmpty shows global help when Parse is given no tokens.
	HelpOnEmpty bool
	// CaseSensitive controls how command names and aliases are matched.
	// Option and flag names are always case-sensitive.
	CaseSensitive bool
	// AllowAbbreviations is accepted for compatibility. Names are never
	// matched by prefix.
	AllowAbbreviations bool
	// ProgramVersion enables a leading --version token when non-empty.
	// A semantic version is shown in canonical form with a "v" prefix, so
	// "1.2" prints as "v1.2.0"; anything else is shown as given.
	ProgramVersion string
}

// DefaultConfig returns the configuration used when nothing else is said:
// colors on, lenient, help on empty input, case-sensitive commands.
func DefaultConfig() Config {
	return Config{
		ColorsEnabled: true,
		HelpOnEmpty:   true,
		CaseSensitive: true,
	}
}
