// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command kargs is a small program built on the kargs parser. Each of its
// subcommands prints what it parsed.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/yeetrun/kargs/pkg/cli"
	"github.com/yeetrun/kargs/pkg/console"
	"github.com/yeetrun/kargs/pkg/kargs"
	"golang.org/x/term"
)

const programName = "kargs"

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var isTerminalFn = term.IsTerminal

const (
	exitOK     = 0
	exitParse  = 1
	exitConfig = 2
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("failed to get working directory: %v", err)
		wd = "."
	}
	os.Exit(run(context.Background(), os.Args[1:], wd, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, wd string, stdout, stderr io.Writer) int {
	globals, rest, err := cli.ParseGlobal(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	cfg, source, err := cli.ResolveConfig(globals, wd)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to load parser config: %v\n", programName, err)
		return exitConfig
	}
	if cfg.ProgramVersion == "" {
		cfg.ProgramVersion = version
	}

	colors := cfg.ColorsEnabled && writesToTerminal(stdout)
	sink := console.New(stdout, colors, console.WithDiagnostics(stderr))
	p := kargs.NewParser(programName, cfg, kargs.WithSink(sink))
	a := &app{out: stdout, cfg: cfg, configSource: source}
	p.Subcommands(
		a.complexCommand(),
		a.inspectCommand(),
		a.serveCommand(),
		a.configCommand(),
	)

	err = p.Parse(ctx, rest)
	switch {
	case err == nil:
		return exitOK
	case isParseFailure(err):
		// Already reported by the sink.
		return exitParse
	default:
		log.Printf("%s: %v", programName, err)
		return exitParse
	}
}

func isParseFailure(err error) bool {
	var pe *kargs.ParseError
	var ve *kargs.ValidationError
	return errors.As(err, &pe) || errors.As(err, &ve)
}

func writesToTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminalFn(int(f.Fd()))
}
