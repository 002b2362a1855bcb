// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template copies a Markdown report template into an output directory
// and stamps its metadata placeholders. A placeholder is the exact literal
// line fragment `key: ""`; anything formatted differently is left untouched.
package template

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// dateFmt is the ISO date form written into the date placeholder.
const dateFmt = "2006-01-02"

// Copy places the template file into outDir, preserving its filename and
// overwriting any previous copy. The output directory is created along with
// missing parents. Returns the path of the copied file.
func Copy(templatePath, outDir string) (string, error) {
	if _, err := os.Stat(templatePath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("template not found: %s", templatePath)
		}
		return "", fmt.Errorf("checking template %s: %w", templatePath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	target := filepath.Join(outDir, filepath.Base(templatePath))

	src, err := os.Open(templatePath)
	if err != nil {
		return "", fmt.Errorf("opening template %s: %w", templatePath, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("copying template to %s: %w", target, err)
	}

	return target, nil
}

// Stamp rewrites the metadata placeholders in the file at path: the literal
// fragments `title: ""`, `author: ""`, and `date: ""` become quoted values,
// with the date taken from day in ISO form. Placeholders that do not match
// the exact empty-quoted pattern are left as-is; a template with no matches
// is written back byte-identical.
func Stamp(path, title, author string, day time.Time) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	replacements := []struct{ key, value string }{
		{"title", title},
		{"author", author},
		{"date", day.Format(dateFmt)},
	}

	text := string(data)
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.key+`: ""`, fmt.Sprintf("%s: %q", r.key, r.value))
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
