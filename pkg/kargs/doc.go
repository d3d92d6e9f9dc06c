// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kargs parses command lines of the form
//
//	program COMMAND [OPTIONS] [ARGS...]
//
// into typed properties registered on subcommands, then runs the matched
// command.
//
// Properties are registered by constructing them against their command:
//
//	cmd := kargs.NewSubcommand("complex", kargs.WithAliases("c"))
//	config := kargs.NewOption(cmd, argtype.String(), kargs.OptionConfig[string]{
//	    Long: "config", Short: "c", Required: true,
//	})
//	threads := kargs.NewOption(cmd, argtype.IntRange(1, 32), kargs.OptionConfig[int]{
//	    Long: "threads", Default: ptr.To(4),
//	})
//	verbose := kargs.NewFlag(cmd, kargs.FlagConfig{Long: "verbose", Short: "v"})
//	input := kargs.NewArgument(cmd, argtype.String(), kargs.ArgumentConfig{Name: "input"})
//	cmd.SetRun(func(ctx context.Context) error {
//	    fmt.Println(config.Value(), threads.Value(), verbose.Value(), input.Value())
//	    return nil
//	})
//
//	p := kargs.NewParser("app", kargs.DefaultConfig(), kargs.WithSink(console.New(os.Stdout, true)))
//	p.Subcommands(cmd)
//	if err := p.Parse(ctx, os.Args[1:]); err != nil {
//	    os.Exit(1)
//	}
//
// # Token rules
//
//   - --name resolves to an option, then an optional option, then a flag.
//     Options take the next token as their value no matter what it looks
//     like; optional options only take it when it does not start with "-".
//     --name=value is accepted as well.
//   - -x resolves to an option, then a flag. Optional options have no short
//     form.
//   - -xyz sets the flags x, y and z. Clusters never name options.
//   - "--" ends option parsing; everything after it is positional.
//   - Anything else is positional and is matched to arguments in the order
//     they were defined.
//
// Unknown options and surplus positional tokens are warnings unless
// Config.StrictMode is set. Required options and arguments are checked
// together after scanning so that one error lists everything missing.
//
// Property values are not cleared between Parse calls. Call
// Subcommand.Reset to reuse a command.
package kargs
