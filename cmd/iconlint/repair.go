package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint/internal/scene"
	"github.com/iconlint/iconlint/pkg/adapters/memory"
)

var repairCmd = &cobra.Command{
	Use:   "repair <scene-file>",
	Short: "Run the repair pipeline over an icon scene document",
	Long: `Plans and runs the repair steps (outline, union, flatten, colorize,
scale, describe) against an in-memory copy of the icon, then prints the
repaired tree as JSON on stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRepair(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Repair failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, path string) error {
	engine, set, err := newEngine(cmd)
	if err != nil {
		return err
	}

	doc, err := scene.DecodeFile(path)
	if err != nil {
		return err
	}

	mut := memory.NewMutator(set)
	result, _, err := engine.Repair(cmd.Context(), doc.Icon, doc.Category, mut,
		func(step string, index, total int) {
			fmt.Fprintf(os.Stderr, "step %d/%d: %s\n", index, total, step)
		})
	if err != nil {
		return err
	}
	if !result.Success {
		return fmt.Errorf("step %q failed: %s (completed: %d)", result.FailedStep, result.Error, len(result.CompletedSteps))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc.Icon); err != nil {
		return fmt.Errorf("failed to encode repaired icon: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Icon repaired ✅")
	return nil
}
