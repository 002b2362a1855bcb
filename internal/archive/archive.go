// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive compresses generated PDFs with 7-Zip and computes content
// digests of the resulting archives.
package archive

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdreport/internal/tool"
)

// archiverBins lists the 7-Zip binary names tried in order. Which one is
// installed depends on platform and packaging.
var archiverBins = []string{"7z", "7za", "7zz"}

// Ext is the archive file extension.
const Ext = ".7z"

// Archiver wraps a resolved 7-Zip binary.
type Archiver struct {
	runner tool.Runner
}

// New returns an Archiver backed by the given runner.
func New(runner tool.Runner) *Archiver {
	return &Archiver{runner: runner}
}

// Detect resolves the first available 7-Zip binary on PATH.
func Detect() (*Archiver, error) {
	runner, err := tool.FindFirst(archiverBins...)
	if err != nil {
		return nil, fmt.Errorf("no 7-Zip archiver available: %w", err)
	}
	return New(runner), nil
}

// PathFor returns the archive path for a PDF: the PDF's stem with the
// archive extension, in the same directory.
func PathFor(pdfPath string) string {
	stem := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))
	return stem + Ext
}

// Create compresses inputPath into an archive at archivePath, streaming
// archiver output to stdout and stderr. A non-zero exit propagates as an
// error.
func (a *Archiver) Create(archivePath, inputPath string, stdout, stderr io.Writer) error {
	if err := a.runner.Run([]string{"a", archivePath, inputPath}, stdout, stderr); err != nil {
		return fmt.Errorf("archiving %s: %w", inputPath, err)
	}
	return nil
}

// MD5Sum returns the hex MD5 digest of the file at path.
func MD5Sum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
