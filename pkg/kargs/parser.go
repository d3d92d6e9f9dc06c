// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

import (
	"context"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"
)

const (
	helpFlagLong    = "--help"
	helpFlagShort   = "-h"
	versionFlagLong = "--version"
	endOfOptions    = "--"
)

// Parser routes a command line to one of its Subcommands, fills in that
// command's properties and runs it.
//
// A Parser holds no state besides its command list, but the Subcommands it
// dispatches to do; concurrent Parse calls that reach the same Subcommand
// race on its property values.
type Parser struct {
	program  string
	cfg      Config
	sink     Sink
	commands []*Subcommand
}

// ParserOption configures a Parser at construction.
type ParserOption func(*Parser)

// WithSink sets where help, warnings and errors are written. By default
// they are discarded.
func WithSink(sink Sink) ParserOption {
	return func(p *Parser) {
		p.sink = sink
	}
}

// NewParser returns a parser for program. The program name only appears in
// help and version output.
func NewParser(program string, cfg Config, opts ...ParserOption) *Parser {
	p := &Parser{
		program: program,
		cfg:     cfg,
		sink:    discardSink{},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.sink == nil {
		p.sink = discardSink{}
	}
	return p
}

// Subcommands appends cmds to the command list. When two commands share a
// name or alias, the one added first wins.
func (p *Parser) Subcommands(cmds ...*Subcommand) {
	p.commands = append(p.commands, cmds...)
}

// Commands returns the registered commands in registration order.
func (p *Parser) Commands() []*Subcommand { return slices.Clone(p.commands) }


// Parse interprets args (without the program name), fills in the matched
// command's properties and calls its run function exactly once.
//
// Help and version requests, and unknown commands, are reported through the
// Sink and return nil. Parse failures are reported through the Sink together
// with the command's help, then returned as a *ParseError or
// *ValidationError. Errors from the run function are returned unchanged.
// ctx is only passed through to the run function.
func (p *Parser) Parse(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if p.cfg.HelpOnEmpty {
			p.sink.GlobalHelp(p.program, p.Commands())
		}
		return nil
	}
	if p.cfg.ProgramVersion != "" && args[0] == versionFlagLong {
		p.sink.Version(p.program, displayVersion(p.cfg.ProgramVersion))
		return nil
	}

	cmd := p.findCommand(args[0])
	if cmd == nil {
		if hasHelpFlag(args) {
			p.sink.GlobalHelp(p.program, p.Commands())
			return nil
		}
		p.sink.Error("Unknown command: " + args[0])
		if !p.cfg.StrictMode {
			p.sink.GlobalHelp(p.program, p.Commands())
		}
		return nil
	}

	rest := args[1:]
	if hasHelpFlag(rest) {
		p.sink.CommandHelp(p.program, cmd)
		return nil
	}
	if err := p.populate(cmd, rest); err != nil {
		p.sink.Error(err.Error())
		p.sink.CommandHelp(p.program, cmd)
		return err
	}
	return cmd.execute(ctx)
}

func (p *Parser) findCommand(token string) *Subcommand {
	for _, cmd := range p.commands {
		if cmd.matches(token, p.cfg.CaseSensitive) {
			return cmd
		}
	}
	return nil
}

// hasHelpFlag reports whether --help or -h appears before any "--".
func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case endOfOptions:
			return false
		case helpFlagLong, helpFlagShort:
			return true
		}
	}
	return false
}

func (p *Parser) populate(cmd *Subcommand, args []string) error {
	if err := p.tokenize(cmd, args); err != nil {
		return err
	}
	if err := requireAll(cmd); err != nil {
		return err
	}
	if problems := cmd.Validate(); len(problems) > 0 {
		return &ValidationError{Command: cmd.name, Problems: problems}
	}
	return nil
}

// tokenize walks args left to right with one token of lookahead for option
// values. Positional tokens are queued and matched once scanning ends.
func (p *Parser) tokenize(cmd *Subcommand, args []string) error {
	var positional []string
scan:
	for i := 0; i < len(args); i++ {
		arg := args[i]
		var err error
		switch {
		case arg == endOfOptions:
			positional = append(positional, args[i+1:]...)
			break scan
		case strings.HasPrefix(arg, "--"):
			i, err = p.parseLong(cmd, arg[2:], args, i)
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			i, err = p.parseShort(cmd, arg[1:], args, i)
		default:
			positional = append(positional, arg)
		}
		if err != nil {
			return err
		}
	}
	return p.parsePositionals(cmd, positional)
}

// parseLong handles --name and --name=value. Options win over optional
// options, which win over flags. It returns the index of the last token
// consumed.
func (p *Parser) parseLong(cmd *Subcommand, key string, args []string, i int) (int, error) {
	name, inline, hasInline := strings.Cut(key, "=")
	display := "--" + name

	if opt := cmd.option(name); opt != nil {
		if hasInline {
			return i, opt.parseAs(inline, display)
		}
		return p.consumeValue(opt, display, args, i)
	}
	if opt := cmd.optional(name); opt != nil {
		switch {
		case hasInline:
			return i, opt.ParseValue(inline)
		case i+1 < len(args) && !strings.HasPrefix(args[i+1], "-"):
			return i + 1, opt.ParseValue(args[i+1])
		}
		opt.SetAsFlag()
		return i, nil
	}
	if f := cmd.flag(name); f != nil {
		if hasInline {
			return i, f.parseAs(inline, display)
		}
		f.Set()
		return i, nil
	}
	return i, p.unknownOption(display, "Unknown option "+display)
}

// parseShort handles -x and clusters like -vnf. A cluster only ever names
// flags, and unknown letters in it are skipped unless in strict mode. A
// single letter may name an option (which then takes the next token) or a
// flag.
func (p *Parser) parseShort(cmd *Subcommand, key string, args []string, i int) (int, error) {
	if utf8.RuneCountInString(key) > 1 {
		for _, r := range key {
			short := string(r)
			if f := cmd.flagByShort(short); f != nil {
				f.Set()
				continue
			}
			if p.cfg.StrictMode {
				return i, &ParseError{
					Kind: ErrUnknownOption,
					Name: "-" + short,
					Msg:  "Unknown flag -" + short,
				}
			}
		}
		return i, nil
	}

	display := "-" + key
	if opt := cmd.optionByShort(key); opt != nil {
		return p.consumeValue(opt, display, args, i)
	}
	if f := cmd.flagByShort(key); f != nil {
		f.Set()
		return i, nil
	}
	return i, p.unknownOption(display, "Unknown option "+display)
}

// consumeValue gives the token after i to opt, whatever it looks like.
func (p *Parser) consumeValue(opt OptionProperty, display string, args []string, i int) (int, error) {
	if i+1 >= len(args) {
		return i, &ParseError{
			Kind: ErrMissingValue,
			Name: display,
			Msg:  "Missing value for option " + display,
		}
	}
	if err := opt.parseAs(args[i+1], display); err != nil {
		return i, err
	}
	return i + 1, nil
}

func (p *Parser) unknownOption(name, msg string) error {
	if p.cfg.StrictMode {
		return &ParseError{Kind: ErrUnknownOption, Name: name, Msg: msg}
	}
	p.sink.Warning(msg)
	return nil
}

// parsePositionals matches tokens to the command's arguments in definition
// order.
func (p *Parser) parsePositionals(cmd *Subcommand, tokens []string) error {
	arguments := cmd.arguments
	if len(tokens) > len(arguments) {
		extra := strings.Join(tokens[len(arguments):], ", ")
		if p.cfg.StrictMode {
			return &ParseError{
				Kind:  ErrTooManyArguments,
				Value: extra,
				Msg:   "Too many arguments: " + extra,
			}
		}
		p.sink.Warning("Ignoring extra arguments: " + extra)
		tokens = tokens[:len(arguments)]
	}
	for i, tok := range tokens {
		if err := arguments[i].ParseValue(tok); err != nil {
			return err
		}
	}
	return nil
}

// requireAll reports every required option and argument that has no value
// in a single error.
func requireAll(cmd *Subcommand) error {
	var options, arguments []string
	for _, o := range cmd.options {
		if o.Required() && !o.HasValue() {
			options = append(options, "--"+o.LongName())
		}
	}
	for _, a := range cmd.arguments {
		if a.Required() && !a.HasValue() {
			arguments = append(arguments, a.Name())
		}
	}
	var problems []string
	if len(options) > 0 {
		problems = append(problems, "Missing required options: "+strings.Join(options, ", "))
	}
	if len(arguments) > 0 {
		problems = append(problems, "Missing required arguments: "+strings.Join(arguments, ", "))
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Command: cmd.name, Problems: problems}
}

// displayVersion prints semantic versions in canonical v-prefixed form and
// anything else verbatim.
func displayVersion(v string) string {
	sv, err := semver.NewVersion(v)
	if err != nil {
		return v
	}
	return "v" + sv.String()
}
