// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console renders parser output for a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeetrun/kargs/pkg/kargs"
	"github.com/yeetrun/kargs/pkg/tui"
)

// Sink writes help and version text to one writer and errors and warnings
// to another. It implements kargs.Sink.
type Sink struct {
	out   io.Writer
	diag  io.Writer
	color tui.Colorizer
}

var _ kargs.Sink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithDiagnostics sends errors and warnings to w instead of the help writer.
func WithDiagnostics(w io.Writer) Option {
	return func(s *Sink) {
		s.diag = w
	}
}

// New returns a Sink writing to out. Colors are used only when colors is
// true and the environment allows it; see tui.NewColorizer.
func New(out io.Writer, colors bool, opts ...Option) *Sink {
	s := &Sink{
		out:   out,
		diag:  out,
		color: tui.NewColorizer(colors),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) GlobalHelp(program string, cmds []*kargs.Subcommand) {
	io.WriteString(s.out, s.globalHelp(program, cmds))
}

func (s *Sink) CommandHelp(program string, cmd *kargs.Subcommand) {
	io.WriteString(s.out, s.commandHelp(program, cmd))
}

func (s *Sink) Version(program, version string) {
	fmt.Fprintf(s.out, "%s %s\n", program, version)
}

func (s *Sink) Error(msg string) {
	fmt.Fprintln(s.diag, s.color.Paint(tui.StyleError, "Error: "+msg))
}

func (s *Sink) Warning(msg string) {
	fmt.Fprintln(s.diag, s.color.Paint(tui.StyleWarning, "Warning: "+msg))
}

func (s *Sink) globalHelp(program string, cmds []*kargs.Subcommand) string {
	var b strings.Builder
	b.WriteString(s.color.Paint(tui.StyleHeader, fmt.Sprintf("Usage: %s <command> [options]", program)))
	b.WriteString("\n\n")
	b.WriteString(s.color.Paint(tui.StyleHeader, "Commands:"))
	b.WriteString("\n")
	for _, cmd := range cmds {
		var aliases string
		if a := cmd.Aliases(); len(a) > 0 {
			aliases = " (" + strings.Join(a, ", ") + ")"
		}
		fmt.Fprintf(&b, "  %s%s\n", s.color.Paint(tui.StyleCommand, cmd.Name()), aliases)
		if d := cmd.Description(); d != "" {
			fmt.Fprintf(&b, "    %s\n", d)
		}
	}
	fmt.Fprintf(&b, "\nUse `%s <command> --help` for more information about a command.\n", program)
	return b.String()
}

func (s *Sink) commandHelp(program string, cmd *kargs.Subcommand) string {
	var b strings.Builder
	usage := fmt.Sprintf("Usage: %s %s [options]", program, cmd.Name())
	for _, a := range cmd.Arguments() {
		if a.Required() {
			usage += " <" + a.Name() + ">"
		} else {
			usage += " [" + a.Name() + "]"
		}
	}
	b.WriteString(s.color.Paint(tui.StyleHeader, usage))
	b.WriteString("\n")

	if d := cmd.Description(); d != "" {
		fmt.Fprintf(&b, "\n%s\n", d)
	}

	options, optionals := cmd.Options(), cmd.OptionalOptions()
	if len(options) > 0 || len(optionals) > 0 {
		s.section(&b, "Options:")
		for _, o := range options {
			fmt.Fprintf(&b, "  %s%s\n", s.names(o.ShortName(), o.LongName()), s.tag(o.TypeTag()))
			line := o.Description()
			if o.Required() {
				line += s.color.Paint(tui.StyleRequired, " (required)")
			}
			if v := o.ValueString(); v != "" {
				line += " [default: " + v + "]"
			}
			if line = strings.TrimSpace(line); line != "" {
				fmt.Fprintf(&b, "        %s\n", line)
			}
		}
		for _, o := range optionals {
			fmt.Fprintf(&b, "  %s%s\n", s.names("", o.LongName()), s.color.Paint(tui.StyleTag, o.TypeTag()))
			line := o.Description()
			line += fmt.Sprintf(" [alone: %s]", o.WhenPresent())
			fmt.Fprintf(&b, "        %s\n", strings.TrimSpace(line))
		}
	}

	if flags := cmd.Flags(); len(flags) > 0 {
		s.section(&b, "Flags:")
		for _, f := range flags {
			fmt.Fprintf(&b, "  %s\n", s.names(f.ShortName(), f.LongName()))
			if d := f.Description(); d != "" {
				fmt.Fprintf(&b, "        %s\n", d)
			}
		}
	}

	if args := cmd.Arguments(); len(args) > 0 {
		s.section(&b, "Arguments:")
		for _, a := range args {
			req := " (optional)"
			if a.Required() {
				req = s.color.Paint(tui.StyleRequired, " (required)")
			}
			fmt.Fprintf(&b, "  %s%s%s\n", a.Name(), s.tag(a.TypeTag()), req)
			if d := a.Description(); d != "" {
				fmt.Fprintf(&b, "    %s\n", d)
			}
		}
	}
	return b.String()
}

func (s *Sink) section(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(s.color.Paint(tui.StyleHeader, title))
	b.WriteString("\n")
}

// names renders "-s, --long", padding the short slot so long names line up.
func (s *Sink) names(short, long string) string {
	prefix := "    "
	if short != "" {
		prefix = "-" + short + ", "
	}
	return s.color.Paint(tui.StyleOption, prefix+"--"+long)
}

func (s *Sink) tag(tag string) string {
	if tag == "" {
		return ""
	}
	return " " + s.color.Paint(tui.StyleTag, tag)
}
