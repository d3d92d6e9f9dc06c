// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argtype

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// FilePath is a path type whose constraints are checked against the
// filesystem by Validate, never by Convert. A path can therefore convert
// successfully and still fail validation later.
//
// A path that does not exist is valid unless MustExist is set; the other
// constraints only describe paths that exist.
type FilePath struct {
	MustExist       bool
	MustBeFile      bool
	MustBeDirectory bool
	MustBeReadable  bool
	MustBeWritable  bool
}

func (p FilePath) Name() string { return "Path" }

// Convert never fails.
func (p FilePath) Convert(raw string) (string, error) { return raw, nil }

func (p FilePath) Validate(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return !p.MustExist
		}
		return false
	}
	if p.MustBeFile && !fi.Mode().IsRegular() {
		return false
	}
	if p.MustBeDirectory && !fi.IsDir() {
		return false
	}
	if p.MustBeReadable && !canRead(path, fi) {
		return false
	}
	if p.MustBeWritable && !canWrite(path, fi) {
		return false
	}
	return true
}

func (p FilePath) Describe() string {
	var parts []string
	if p.MustExist {
		parts = append(parts, "existing")
	}
	if p.MustBeReadable {
		parts = append(parts, "readable")
	}
	if p.MustBeWritable {
		parts = append(parts, "writable")
	}
	noun := "path"
	switch {
	case p.MustBeFile:
		noun = "file"
	case p.MustBeDirectory:
		noun = "directory"
	}
	if len(parts) == 0 {
		return "any " + noun
	}
	return strings.Join(parts, ", ") + " " + noun
}

func (p FilePath) Tag() string { return "<path>" }
