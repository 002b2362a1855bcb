// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest writes a YAML summary of a generation run next to the
// produced PDF, so a report directory documents how its artifacts were made.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// Summary is the on-disk record of one generate invocation.
type Summary struct {
	Input         string    `yaml:"input"`
	PDF           string    `yaml:"pdf"`
	Archive       string    `yaml:"archive,omitempty"`
	MD5           string    `yaml:"md5,omitempty"`
	ConverterArgs []string  `yaml:"converter_args"`
	GeneratedAt   time.Time `yaml:"generated_at"`
}

// PathFor returns the summary path for a PDF: the PDF's stem with a
// .summary.yaml suffix, in the same directory.
func PathFor(pdfPath string) string {
	stem := strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath))
	return stem + ".summary.yaml"
}

// Write saves the summary as YAML at path.
func Write(path string, s Summary) error {
	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run summary %s: %w", path, err)
	}
	return nil
}

// Read loads a previously written summary from disk.
func Read(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run summary %s: %w", path, err)
	}
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing run summary %s: %w", path, err)
	}
	return &s, nil
}
