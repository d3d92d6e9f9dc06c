// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runForTest(t *testing.T, wd string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(t.Context(), args, wd, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunComplex(t *testing.T) {
	code, out, errOut := runForTest(t, t.TempDir(),
		"complex", "--config", "/c.yml", "--format", "xml", "--threads", "8", "--verbose", "in.txt", "out.xml")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	want := strings.Join([]string{
		"config:  /c.yml",
		"format:  xml",
		"threads: 8",
		"verbose: true",
		"dry-run: false",
		"force:   false",
		"input:   in.txt",
		"output:  out.xml",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunOptionValueLooksLikeGlobalFlag(t *testing.T) {
	tests := [][]string{
		{"complex", "--config", "--strict", "in.txt"},
		{"complex", "-c", "--strict", "in.txt"},
	}
	for _, args := range tests {
		code, out, errOut := runForTest(t, t.TempDir(), args...)
		if code != exitOK {
			t.Fatalf("%q: exit = %d, stderr = %q", args, code, errOut)
		}
		if !strings.Contains(out, "config:  --strict\n") || !strings.Contains(out, "input:   in.txt\n") {
			t.Fatalf("%q: stdout = %q", args, out)
		}
	}

	code, out, errOut := runForTest(t, t.TempDir(), "complex", "-c", "--no-color", "in.txt")
	if code != exitOK || !strings.Contains(out, "config:  --no-color\n") {
		t.Fatalf("exit = %d, stdout = %q, stderr = %q", code, out, errOut)
	}
}

func TestRunParseErrorExitCode(t *testing.T) {
	code, out, errOut := runForTest(t, t.TempDir(), "complex", "in.txt")
	if code != exitParse {
		t.Fatalf("exit = %d, want %d", code, exitParse)
	}
	if !strings.Contains(errOut, "Error: Missing required options: --config") {
		t.Fatalf("stderr = %q", errOut)
	}
	if !strings.Contains(out, "Usage: kargs complex [options] <input> [output]") {
		t.Fatalf("stdout lacks command help: %q", out)
	}
}

func TestRunStrictGlobalFlag(t *testing.T) {
	args := []string{"complex", "-c", "x", "--bogus", "in.txt"}

	code, _, errOut := runForTest(t, t.TempDir(), args...)
	if code != exitOK || !strings.Contains(errOut, "Warning: Unknown option --bogus") {
		t.Fatalf("lenient exit = %d, stderr = %q", code, errOut)
	}

	code, _, errOut = runForTest(t, t.TempDir(), append([]string{"--strict"}, args...)...)
	if code != exitParse || !strings.Contains(errOut, "Error: Unknown option --bogus") {
		t.Fatalf("strict exit = %d, stderr = %q", code, errOut)
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	code, out, _ := runForTest(t, t.TempDir())
	if code != exitOK || !strings.Contains(out, "Usage: kargs <command> [options]") {
		t.Fatalf("empty args: exit = %d, stdout = %q", code, out)
	}

	code, out, _ = runForTest(t, t.TempDir(), "--version")
	if code != exitOK || out != "kargs v"+version+"\n" {
		t.Fatalf("--version: exit = %d, stdout = %q", code, out)
	}
}

func TestRunServe(t *testing.T) {
	code, out, errOut := runForTest(t, t.TempDir(), "s", "--color", "-p", "9000")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	if want := "listen: :9000\ncolor:  auto\nquiet:  false\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
}

func TestRunInspect(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.txt")
	if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runForTest(t, dir, "inspect", file, "--write-to", dir)
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out, file+": ") || !strings.Contains(out, ", 5 bytes") {
		t.Fatalf("stdout = %q", out)
	}
	if !strings.Contains(out, "report directory: "+dir) {
		t.Fatalf("stdout = %q", out)
	}

	code, _, errOut = runForTest(t, dir, "inspect", filepath.Join(dir, "missing"))
	if code != exitParse || !strings.Contains(errOut, "expected existing, readable path") {
		t.Fatalf("missing path: exit = %d, stderr = %q", code, errOut)
	}
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "kargs.toml"), []byte("case_sensitive = false\nversion = \"3.1\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runForTest(t, dir, "CONFIG")
	if code != exitOK {
		t.Fatalf("exit = %d, stderr = %q", code, errOut)
	}
	for _, want := range []string{"# loaded from ", "case_sensitive = false", `version = "3.1"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("stdout = %q, want it to contain %q", out, want)
		}
	}

	code, out, _ = runForTest(t, dir, "--version")
	if code != exitOK || out != "kargs v3.1.0\n" {
		t.Fatalf("--version: exit = %d, stdout = %q", code, out)
	}
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "settings.ini")
	if err := os.WriteFile(bad, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runForTest(t, dir, "--parser-config", bad, "config")
	if code != exitConfig {
		t.Fatalf("exit = %d, want %d", code, exitConfig)
	}
	if want := `kargs: failed to load parser config: unsupported config format ".ini"`; !strings.Contains(errOut, want) {
		t.Fatalf("stderr = %q, want it to contain %q", errOut, want)
	}
}
