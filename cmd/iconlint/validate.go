package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint/internal/presentation/report"
	"github.com/iconlint/iconlint/internal/scene"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scene-file>",
	Short: "Validate an icon scene document",
	Long: `Reads a scene document (JSON, or YAML by extension) and runs the
structure, sizing and naming validators. Exits non-zero when invalid.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}

	doc, err := scene.DecodeFile(path)
	if err != nil {
		return err
	}

	result := engine.Validate(cmd.Context(), doc.Icon, doc.Category)
	fmt.Print(report.Render(doc.Icon.Name, doc.Category, result))
	fmt.Fprintln(os.Stderr, report.Verdict(result.IsValid()))

	if !result.IsValid() {
		return fmt.Errorf("icon %q does not conform", doc.Icon.Name)
	}
	return nil
}
