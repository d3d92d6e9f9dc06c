// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows

package argtype

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func canRead(path string, _ fs.FileInfo) bool {
	return unix.Access(path, unix.R_OK) == nil
}

func canWrite(path string, _ fs.FileInfo) bool {
	return unix.Access(path, unix.W_OK) == nil
}
