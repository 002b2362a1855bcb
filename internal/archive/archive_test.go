// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner implements tool.Runner for testing.
type fakeRunner struct {
	gotArgs []string
	err     error
}

func (f *fakeRunner) Name() string { return "7z" }

func (f *fakeRunner) Run(args []string, stdout, stderr io.Writer) error {
	f.gotArgs = args
	return f.err
}

func TestPathFor(t *testing.T) {
	tests := []struct {
		pdf  string
		want string
	}{
		{"out/report.pdf", "out/report.7z"},
		{"report.pdf", "report.7z"},
		{filepath.Join("a", "b", "final-v2.pdf"), filepath.Join("a", "b", "final-v2.7z")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PathFor(tt.pdf))
	}
}

func TestCreate(t *testing.T) {
	runner := &fakeRunner{}
	a := New(runner)

	require.NoError(t, a.Create("out/report.7z", "out/report.pdf", io.Discard, io.Discard))
	assert.Equal(t, []string{"a", "out/report.7z", "out/report.pdf"}, runner.gotArgs)
}

func TestCreate_ArchiverFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 2")}
	a := New(runner)

	err := a.Create("out/report.7z", "out/report.pdf", io.Discard, io.Discard)
	require.Error(t, err)
}

func TestMD5Sum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.7z")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	sum, err := MD5Sum(path)
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)
}

func TestMD5Sum_MissingFile(t *testing.T) {
	_, err := MD5Sum(filepath.Join(t.TempDir(), "nope.7z"))
	require.Error(t, err)
}
