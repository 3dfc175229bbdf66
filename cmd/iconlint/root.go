package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint"
	"github.com/iconlint/iconlint/internal/logging"
	"github.com/iconlint/iconlint/internal/rules"
)

var rootCmd = &cobra.Command{
	Use:   "iconlint",
	Short: "iconlint validates and repairs icon scene trees",
	Long: `iconlint checks icon component trees against a per-category design
contract (sizes, strokes, safety zones, structure, naming) and can run
the repair pipeline to bring a non-conforming icon into shape.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("rules", "", "Path to a YAML rules override file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadRules resolves the rule set from the --rules flag or the defaults.
func loadRules(cmd *cobra.Command) (*rules.Set, error) {
	path, _ := cmd.Flags().GetString("rules")
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

// newLogger builds the CLI logger honoring --verbose. Output goes to
// stderr so piped report output stays clean.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// newEngine wires an engine from the shared flags.
func newEngine(cmd *cobra.Command) (*iconlint.Engine, *rules.Set, error) {
	set, err := loadRules(cmd)
	if err != nil {
		return nil, nil, err
	}
	engine := iconlint.New(
		iconlint.WithRules(set),
		iconlint.WithLogger(newLogger(cmd)),
	)
	return engine, set, nil
}
