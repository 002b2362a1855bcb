// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tool

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// mockExecutor records calls and returns configured responses.
type mockExecutor struct {
	availableBins map[string]bool // binary -> whether LookPath succeeds
	runErr        error
	ranCmds       []string // "bin arg1 arg2" for each RunStreamed call
	stdoutText    string
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.availableBins[file] {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) RunStreamed(name string, args []string, stdout, stderr io.Writer) error {
	m.ranCmds = append(m.ranCmds, name+" "+strings.Join(args, " "))
	if m.stdoutText != "" {
		io.WriteString(stdout, m.stdoutText)
	}
	return m.runErr
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		exec    *mockExecutor
		bin     string
		wantErr bool
	}{
		{
			name: "binary on PATH",
			exec: &mockExecutor{availableBins: map[string]bool{"pandoc": true}},
			bin:  "pandoc",
		},
		{
			name:    "binary missing",
			exec:    &mockExecutor{availableBins: map[string]bool{}},
			bin:     "pandoc",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := find(tt.exec, tt.bin)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Name() != tt.bin {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.bin)
			}
		})
	}
}

func TestFindFirst(t *testing.T) {
	tests := []struct {
		name     string
		exec     *mockExecutor
		wantName string
		wantErr  bool
	}{
		{
			name:     "first candidate present",
			exec:     &mockExecutor{availableBins: map[string]bool{"7z": true, "7za": true}},
			wantName: "7z",
		},
		{
			name:     "falls through to later candidate",
			exec:     &mockExecutor{availableBins: map[string]bool{"7zz": true}},
			wantName: "7zz",
		},
		{
			name:    "none present",
			exec:    &mockExecutor{availableBins: map[string]bool{}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := findFirst(tt.exec, "7z", "7za", "7zz")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.wantName)
			}
		})
	}
}

func TestBinaryRun(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pandoc": true},
		stdoutText:    "pandoc output\n",
	}
	r, err := find(exec, "pandoc")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := r.Run([]string{"--version"}, &out, io.Discard); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := exec.ranCmds[0]; got != "pandoc --version" {
		t.Errorf("ran %q, want %q", got, "pandoc --version")
	}
	if !strings.Contains(out.String(), "pandoc output") {
		t.Errorf("stdout not streamed: %q", out.String())
	}
}

func TestBinaryRun_PropagatesExitError(t *testing.T) {
	exec := &mockExecutor{
		availableBins: map[string]bool{"pandoc": true},
		runErr:        errors.New("exit status 64"),
	}
	r, err := find(exec, "pandoc")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Run(nil, io.Discard, io.Discard); err == nil {
		t.Fatal("expected error from failing child process")
	}
}
