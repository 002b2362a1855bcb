package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/template"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a report from a Markdown template",
	Long: `Init copies the Markdown template into the output directory, preserving
its filename, and stamps the title, author, and date metadata placeholders
from configuration. Re-running init overwrites the previous copy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tmplPath, _ := cmd.Flags().GetString("template")
		outDir, _ := cmd.Flags().GetString("output")

		target, err := template.Copy(tmplPath, outDir)
		if err != nil {
			return err
		}

		if err := template.Stamp(target, cfg.Metadata.Title, cfg.Metadata.Author, time.Now()); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Template copied to %s\n", target)
		fmt.Fprintln(out, "Edit the Markdown file, then run `mdreport generate`")
		return nil
	},
}

func init() {
	initCmd.Flags().String("template", "", "path to the Markdown template")
	initCmd.Flags().String("output", "", "output directory")
	initCmd.MarkFlagRequired("template")
	initCmd.MarkFlagRequired("output")

	rootCmd.AddCommand(initCmd)
}
