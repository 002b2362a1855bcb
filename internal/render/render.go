// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a Markdown file into a PDF by invoking pandoc. The
// input format flags are fixed; template, highlight style, resource path,
// top-level division, table of contents, and section numbering come from
// configuration. A failing pandoc run aborts the generation with no retry
// and no cleanup of partial output.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/mdreport/internal/tool"
	"github.com/pdiddy/mdreport/pkg/types"
)

// Bin is the converter binary name.
const Bin = "pandoc"

// inputFormat is the fixed pandoc --from value for report sources.
const inputFormat = "markdown+yaml_metadata_block+raw_html"

// defaultTOCDepth applies when the table of contents is enabled but no
// depth is configured.
const defaultTOCDepth = 6

// Args assembles the pandoc argument list for converting input to pdfPath
// using the configured options.
func Args(input, pdfPath string, cfg types.Config) []string {
	args := []string{
		input,
		"-o", pdfPath,
		"--from", inputFormat,
		"--template", cfg.Pandoc.Template,
		"--highlight-style", cfg.Pandoc.HighlightStyle,
		"--resource-path", cfg.Paths.ResourcePath,
		"--top-level-division", cfg.Pandoc.TopLevelDivision,
	}

	if cfg.Pandoc.TOC {
		depth := cfg.Pandoc.TOCDepth
		if depth <= 0 {
			depth = defaultTOCDepth
		}
		args = append(args, "--table-of-contents", "--toc-depth", strconv.Itoa(depth))
	}

	if cfg.Pandoc.NumberSections {
		args = append(args, "--number-sections")
	}

	return args
}

// Renderer runs pandoc through an injected tool.Runner.
type Renderer struct {
	runner tool.Runner
}

// New returns a Renderer backed by the given runner.
func New(runner tool.Runner) *Renderer {
	return &Renderer{runner: runner}
}

// Detect resolves pandoc on PATH and returns a Renderer for it.
func Detect() (*Renderer, error) {
	runner, err := tool.Find(Bin)
	if err != nil {
		return nil, err
	}
	return New(runner), nil
}

// Render converts input to a PDF at pdfPath, streaming converter output to
// stdout and stderr. It blocks until pandoc exits and propagates any
// non-zero exit as an error.
func (r *Renderer) Render(input, pdfPath string, cfg types.Config, stdout, stderr io.Writer) error {
	if err := r.runner.Run(Args(input, pdfPath, cfg), stdout, stderr); err != nil {
		return fmt.Errorf("converting %s to PDF: %w", input, err)
	}
	return nil
}
