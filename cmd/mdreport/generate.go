package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/archive"
	"github.com/pdiddy/mdreport/internal/ledger"
	"github.com/pdiddy/mdreport/internal/manifest"
	"github.com/pdiddy/mdreport/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PDF report from a Markdown file",
	Long: `Generate renders the input Markdown file to a PDF via pandoc, using the
template, highlight style, resource path, and layout options from
configuration. When output.archive is set, the PDF is compressed into a 7z
archive and an MD5 digest of the archive is printed. A run summary and a run
ledger entry are written when output.summary and output.ledger are set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		input, _ := cmd.Flags().GetString("input")
		outDir, _ := cmd.Flags().GetString("output")

		renderer, err := render.Detect()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", outDir, err)
		}

		pdf := filepath.Join(outDir, cfg.Output.PDFName)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Generating PDF...")
		if err := renderer.Render(input, pdf, cfg, out, cmd.ErrOrStderr()); err != nil {
			return err
		}
		fmt.Fprintf(out, "PDF generated: %s\n", pdf)

		var archivePath, digest string
		if cfg.Output.Archive {
			archiver, err := archive.Detect()
			if err != nil {
				return err
			}

			archivePath = archive.PathFor(pdf)
			fmt.Fprintln(out, "Creating archive...")
			if err := archiver.Create(archivePath, pdf, out, cmd.ErrOrStderr()); err != nil {
				return err
			}

			digest, err = archive.MD5Sum(archivePath)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Archive: %s\n", archivePath)
			fmt.Fprintf(out, "MD5: %s\n", digest)
		}

		if cfg.Output.Summary {
			summaryPath := manifest.PathFor(pdf)
			err := manifest.Write(summaryPath, manifest.Summary{
				Input:         input,
				PDF:           pdf,
				Archive:       archivePath,
				MD5:           digest,
				ConverterArgs: render.Args(input, pdf, cfg),
				GeneratedAt:   time.Now().UTC(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Run summary: %s\n", summaryPath)
		}

		if cfg.Output.Ledger != "" {
			store, err := ledger.Open(cfg.Output.Ledger)
			if err != nil {
				return err
			}
			defer store.Close()

			if _, err := store.Record(ledger.Entry{
				Input:   input,
				PDF:     pdf,
				Archive: archivePath,
				MD5:     digest,
			}); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	generateCmd.Flags().String("input", "", "Markdown report file")
	generateCmd.Flags().String("output", "", "output directory")
	generateCmd.MarkFlagRequired("input")
	generateCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(generateCmd)
}
