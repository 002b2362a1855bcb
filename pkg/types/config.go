package types

// MetadataConfig holds the values stamped into template placeholders by init.
type MetadataConfig struct {
	// Title replaces the `title: ""` placeholder line.
	Title string `json:"title" yaml:"title" mapstructure:"title"`

	// Author replaces the `author: ""` placeholder line.
	Author string `json:"author" yaml:"author" mapstructure:"author"`
}

// OutputConfig holds settings for generated artifacts.
type OutputConfig struct {
	// PDFName is the filename of the generated PDF inside the output directory
	// (e.g. "report.pdf").
	PDFName string `json:"pdf_name" yaml:"pdf_name" mapstructure:"pdf_name"`

	// Archive controls whether the PDF is compressed into a 7z archive
	// after generation, with an MD5 digest printed for the archive.
	Archive bool `json:"archive" yaml:"archive" mapstructure:"archive"`

	// Summary controls whether a YAML run summary is written next to the PDF.
	Summary bool `json:"summary" yaml:"summary" mapstructure:"summary"`

	// Ledger is the path to the SQLite run ledger. Empty disables recording.
	Ledger string `json:"ledger,omitempty" yaml:"ledger,omitempty" mapstructure:"ledger"`
}

// PandocConfig holds the converter options passed through to pandoc.
type PandocConfig struct {
	// Template is the pandoc template passed via --template (e.g. "eisvogel.latex").
	Template string `json:"template" yaml:"template" mapstructure:"template"`

	// HighlightStyle is the code highlight style passed via --highlight-style.
	HighlightStyle string `json:"highlight_style" yaml:"highlight_style" mapstructure:"highlight_style"`

	// TOC controls whether a table of contents is generated.
	TOC bool `json:"toc" yaml:"toc" mapstructure:"toc"`

	// TOCDepth is the table-of-contents depth (default 6 when TOC is set).
	TOCDepth int `json:"toc_depth" yaml:"toc_depth" mapstructure:"toc_depth"`

	// NumberSections controls whether section headings are numbered.
	NumberSections bool `json:"number_sections" yaml:"number_sections" mapstructure:"number_sections"`

	// TopLevelDivision is the pandoc --top-level-division value
	// (e.g. "section" or "chapter").
	TopLevelDivision string `json:"top_level_division" yaml:"top_level_division" mapstructure:"top_level_division"`
}

// PathsConfig holds filesystem locations consumed by the converter.
type PathsConfig struct {
	// ResourcePath is the directory pandoc searches for relative assets
	// (images, includes) referenced by the Markdown source.
	ResourcePath string `json:"resource_path" yaml:"resource_path" mapstructure:"resource_path"`
}

// Config groups all sections of the mdreport configuration file. It is
// loaded once per invocation and treated as immutable for the run.
type Config struct {
	Metadata MetadataConfig `json:"metadata" yaml:"metadata" mapstructure:"metadata"`
	Output   OutputConfig   `json:"output" yaml:"output" mapstructure:"output"`
	Pandoc   PandocConfig   `json:"pandoc" yaml:"pandoc" mapstructure:"pandoc"`
	Paths    PathsConfig    `json:"paths" yaml:"paths" mapstructure:"paths"`
}
