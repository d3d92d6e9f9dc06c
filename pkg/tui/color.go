// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Style names a role in terminal output rather than a concrete color.
type Style int

const (
	StyleHeader Style = iota
	StyleCommand
	StyleOption
	StyleTag
	StyleRequired
	StyleError
	StyleWarning
)

var styleAttrs = map[Style][]color.Attribute{
	StyleHeader:   {color.Bold},
	StyleCommand:  {color.FgCyan, color.Bold},
	StyleOption:   {color.FgGreen},
	StyleTag:      {color.Faint},
	StyleRequired: {color.FgRed},
	StyleError:    {color.FgRed, color.Bold},
	StyleWarning:  {color.FgYellow},
}

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that paints only when enabled is true and
// the environment does not ask for plain output (NO_COLOR, TERM unset or
// "dumb").
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Paint returns text wrapped in the escape codes for style. When the
// Colorizer is disabled, text is returned as is.
func (c Colorizer) Paint(style Style, text string) string {
	attrs, ok := styleAttrs[style]
	if !c.Enabled || !ok || text == "" {
		return text
	}
	col := color.New(attrs...)
	// color decides on its own whether stdout is a terminal; the caller has
	// already made that call.
	col.EnableColor()
	return col.Sprint(text)
}
