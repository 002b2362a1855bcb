// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mdreport CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mdreport/internal/config"
	"github.com/pdiddy/mdreport/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdreport CLI.
var rootCmd = &cobra.Command{
	Use:   "mdreport",
	Short: "Markdown report initializer and PDF generator",
	Long: `mdreport turns a Markdown template into a finished PDF report. The init
subcommand copies the template into an output directory and stamps its title,
author, and date metadata from configuration. The generate subcommand renders
a Markdown file to PDF with pandoc and can archive the result with 7-Zip,
printing an MD5 digest of the archive.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "path to config file")
}

// loadConfig reads the --config flag and loads the configuration file. It
// runs before any output directory is created, so a missing config file
// leaves the filesystem untouched.
func loadConfig() (types.Config, error) {
	path, err := rootCmd.PersistentFlags().GetString("config")
	if err != nil {
		return types.Config{}, err
	}
	return config.Load(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
