// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yeetrun/kargs/pkg/argtype"
	"github.com/yeetrun/kargs/pkg/cli"
	"github.com/yeetrun/kargs/pkg/configfile"
	"github.com/yeetrun/kargs/pkg/kargs"
	"tailscale.com/types/ptr"
)

var (
	complexInfo = cli.CommandInfo{
		Name:        "complex",
		Description: "Process an input file using every kind of option",
		Aliases:     []string{"c"},
	}
	inspectInfo = cli.CommandInfo{
		Name:        "inspect",
		Description: "Show details about a readable path",
	}
	serveInfo = cli.CommandInfo{
		Name:        "serve",
		Description: "Print how a server would be started",
		Aliases:     []string{"s"},
	}
	configInfo = cli.CommandInfo{
		Name:        "config",
		Description: "Print the effective parser settings as TOML",
	}
)

type app struct {
	out          io.Writer
	cfg          kargs.Config
	configSource string
}

func (a *app) complexCommand() *kargs.Subcommand {
	cmd := complexInfo.NewSubcommand()
	config := kargs.NewOption(cmd, argtype.String(), kargs.OptionConfig[string]{
		Long: "config", Short: "c", Description: "Configuration file", Required: true,
	})
	format := kargs.NewOption(cmd, argtype.Choice("json", "xml", "yaml"), kargs.OptionConfig[string]{
		Long: "format", Short: "F", Description: "Output format", Default: ptr.To("json"),
	})
	threads := kargs.NewOption(cmd, argtype.IntRange(1, 32), kargs.OptionConfig[int]{
		Long: "threads", Short: "t", Description: "Worker threads", Default: ptr.To(4),
	})
	timeout := kargs.NewOption(cmd, argtype.Double(), kargs.OptionConfig[float64]{
		Long: "timeout", Description: "Timeout in seconds",
	})
	verbose := kargs.NewFlag(cmd, kargs.FlagConfig{Long: "verbose", Short: "v", Description: "Verbose output"})
	dryRun := kargs.NewFlag(cmd, kargs.FlagConfig{Long: "dry-run", Short: "n", Description: "Show what would be done"})
	force := kargs.NewFlag(cmd, kargs.FlagConfig{Long: "force", Short: "f", Description: "Overwrite existing output"})
	input := kargs.NewArgument(cmd, argtype.String(), kargs.ArgumentConfig{Name: "input", Description: "Input file"})
	output := kargs.NewArgument(cmd, argtype.String(), kargs.ArgumentConfig{Name: "output", Description: "Output file", Optional: true})

	cmd.SetRun(func(context.Context) error {
		fmt.Fprintf(a.out, "config:  %s\n", config.Value())
		fmt.Fprintf(a.out, "format:  %s\n", format.Value())
		fmt.Fprintf(a.out, "threads: %d\n", threads.Value())
		if timeout.HasValue() {
			fmt.Fprintf(a.out, "timeout: %gs\n", timeout.Value())
		}
		fmt.Fprintf(a.out, "verbose: %t\ndry-run: %t\nforce:   %t\n", verbose.Value(), dryRun.Value(), force.Value())
		fmt.Fprintf(a.out, "input:   %s\n", input.Value())
		if output.HasValue() {
			fmt.Fprintf(a.out, "output:  %s\n", output.Value())
		}
		return nil
	})
	return cmd
}

func (a *app) inspectCommand() *kargs.Subcommand {
	cmd := inspectInfo.NewSubcommand()
	path := kargs.NewArgument(cmd, argtype.FilePath{MustExist: true, MustBeReadable: true}, kargs.ArgumentConfig{
		Name: "path", Description: "Path to inspect",
	})
	writeTo := kargs.NewOption(cmd, argtype.FilePath{MustBeDirectory: true, MustBeWritable: true}, kargs.OptionConfig[string]{
		Long: "write-to", Short: "w", Description: "Directory to write a report into",
	})
	follow := kargs.NewOption(cmd, argtype.Bool(), kargs.OptionConfig[bool]{
		Long: "follow", Description: "Follow symlinks", Default: ptr.To(true),
	})

	cmd.SetRun(func(context.Context) error {
		stat := os.Stat
		if !follow.Value() {
			stat = os.Lstat
		}
		fi, err := stat(path.Value())
		if err != nil {
			return err
		}
		report := fmt.Sprintf("%s: %s, %d bytes\n", path.Value(), fi.Mode(), fi.Size())
		io.WriteString(a.out, report)
		if writeTo.HasValue() {
			fmt.Fprintf(a.out, "report directory: %s\n", writeTo.Value())
		}
		return nil
	})
	return cmd
}

func (a *app) serveCommand() *kargs.Subcommand {
	cmd := serveInfo.NewSubcommand()
	color := kargs.NewOptionalOption(cmd, kargs.OptionalOptionConfig{
		Long: "color", Description: "Color log lines (always, never, auto)", WhenPresent: "auto",
	})
	port := kargs.NewOption(cmd, argtype.IntRange(1, 65535), kargs.OptionConfig[int]{
		Long: "port", Short: "p", Description: "Port to listen on", Default: ptr.To(8080),
	})
	quiet := kargs.NewFlag(cmd, kargs.FlagConfig{Long: "quiet", Short: "q", Description: "Only log errors"})

	cmd.SetRun(func(context.Context) error {
		mode := "never"
		if color.HasValue() {
			mode = color.Value()
		}
		fmt.Fprintf(a.out, "listen: :%d\ncolor:  %s\nquiet:  %t\n", port.Value(), mode, quiet.Value())
		return nil
	})
	return cmd
}

func (a *app) configCommand() *kargs.Subcommand {
	cmd := configInfo.NewSubcommand()
	cmd.SetRun(func(context.Context) error {
		if a.configSource != "" {
			fmt.Fprintf(a.out, "# loaded from %s\n", a.configSource)
		}
		return configfile.Encode(a.out, a.cfg)
	})
	return cmd
}
