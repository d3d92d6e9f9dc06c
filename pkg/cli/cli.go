// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"os"
	"slices"
	"strings"

	"github.com/shayne/yargs"
	"github.com/yeetrun/kargs/pkg/configfile"
	"github.com/yeetrun/kargs/pkg/kargs"
)

// CommandInfo describes a subcommand in a command table.
type CommandInfo struct {
	Name        string
	Description string
	Aliases     []string
}

// NewSubcommand builds an empty kargs.Subcommand from info.
func (info CommandInfo) NewSubcommand() *kargs.Subcommand {
	return kargs.NewSubcommand(info.Name,
		kargs.WithDescription(info.Description),
		kargs.WithAliases(info.Aliases...),
	)
}

// GlobalFlags are the program-wide flags handled before a command line is
// given to the kargs parser.
type GlobalFlags struct {
	ParserConfig string
	NoColor      bool
	Strict       bool
}

type globalFlagsParsed struct {
	ParserConfig string `flag:"parser-config" help:"Load parser settings from a TOML or YAML file"`
	NoColor      bool   `flag:"no-color" help:"Disable colored output"`
	Strict       bool   `flag:"strict" help:"Treat unknown options and extra arguments as errors"`
}

// ParseGlobal removes the global flags from the tokens before the command
// name and returns them with the remaining arguments. Tokens from the command
// name on belong to the command, so an option value such as "--strict" in
// "complex --config --strict" is left alone.
func ParseGlobal(args []string) (GlobalFlags, []string, error) {
	n := leadingFlags(args)
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args[:n], yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	f := result.Flags
	rest := slices.Concat(result.RemainingArgs, args[n:])
	return GlobalFlags{
		ParserConfig: f.ParserConfig,
		NoColor:      f.NoColor,
		Strict:       f.Strict,
	}, rest, nil
}

// leadingFlags returns the length of the run of flag tokens at the start of
// args, counting the value that follows a bare --parser-config. It stops at
// the first other token and at "--".
func leadingFlags(args []string) int {
	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}
		if arg == "--parser-config" && i+1 < len(args) {
			i += 2
			continue
		}
		i++
	}
	return i
}

// Apply overrides cfg with the flags that were given. Flags can only turn
// strictness on and colors off.
func (g GlobalFlags) Apply(cfg kargs.Config) kargs.Config {
	if g.NoColor {
		cfg.ColorsEnabled = false
	}
	if g.Strict {
		cfg.StrictMode = true
	}
	return cfg
}

// ResolveConfig returns the parser config for a run started in dir and the
// file it came from, if any. An explicit --parser-config must exist; otherwise
// the nearest kargs config file above dir is used when there is one.
func ResolveConfig(g GlobalFlags, dir string) (kargs.Config, string, error) {
	path := g.ParserConfig
	if path == "" {
		found, err := configfile.Find(dir)
		switch {
		case errors.Is(err, os.ErrNotExist):
			return g.Apply(kargs.DefaultConfig()), "", nil
		case err != nil:
			return kargs.Config{}, "", err
		}
		path = found
	}
	cfg, err := configfile.Load(path)
	if err != nil {
		return kargs.Config{}, "", err
	}
	return g.Apply(cfg), path, nil
}
