// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kargs

// Sink receives everything the parser wants a person to see. The parser
// never writes to stdout or stderr itself.
//
// Implementations render help from the exported Subcommand accessors and
// have no way to influence parsing.
type Sink interface {
	GlobalHelp(program string, cmds []*Subcommand)
	CommandHelp(program string, cmd *Subcommand)
	Version(program, version string)
	Error(msg string)
	Warning(msg string)
}

type discardSink struct{}

func (discardSink) GlobalHelp(string, []*Subcommand) {}
func (discardSink) CommandHelp(string, *Subcommand) {}
func (discardSink) Version(string, string) {}
func (discardSink) Error(string) {}
func (discardSink) Warning(string) {}
