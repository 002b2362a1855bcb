// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool locates and runs the external binaries mdreport shells out to:
// the pandoc converter and a 7-Zip archiver. Execution is synchronous; a
// non-zero exit from the child propagates to the caller unchanged.
package tool

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Runner executes one external binary with caller-supplied output streams.
type Runner interface {
	// Name returns the binary name the runner resolved (e.g. "pandoc", "7za").
	Name() string

	// Run invokes the binary with args, streaming child stdout and stderr to
	// the given writers, and blocks until the process exits.
	Run(args []string, stdout, stderr io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunStreamed(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunStreamed(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// binary implements Runner for a resolved executable.
type binary struct {
	bin  string
	exec executor
}

func (b *binary) Name() string { return b.bin }

func (b *binary) Run(args []string, stdout, stderr io.Writer) error {
	if err := b.exec.RunStreamed(b.bin, args, stdout, stderr); err != nil {
		return fmt.Errorf("running %s: %w", b.bin, err)
	}
	return nil
}

var defaultExec executor = &osExecutor{}

// Find resolves a single binary on PATH and returns a Runner for it.
func Find(name string) (Runner, error) {
	return find(defaultExec, name)
}

// FindFirst tries each candidate binary in order and returns a Runner for
// the first one present on PATH. The archiver ships under different names
// depending on platform and packaging (7z, 7za, 7zz), so callers pass the
// whole chain.
func FindFirst(names ...string) (Runner, error) {
	return findFirst(defaultExec, names...)
}

func find(exec executor, name string) (*binary, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	return &binary{bin: name, exec: exec}, nil
}

func findFirst(exec executor, names ...string) (*binary, error) {
	for _, name := range names {
		if _, err := exec.LookPath(name); err == nil {
			return &binary{bin: name, exec: exec}, nil
		}
	}
	return nil, fmt.Errorf("none of [%s] found on PATH", strings.Join(names, ", "))
}
