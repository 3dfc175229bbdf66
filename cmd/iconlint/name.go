package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint/pkg/domain"
)

var nameCmd = &cobra.Command{
	Use:   "name <candidate>",
	Short: "Check an icon name and suggest a conforming one",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runName(cmd, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(nameCmd)
	nameCmd.Flags().StringP("category", "c", "glyph", "Icon category: 'glyph' or 'spot'")
}

func runName(cmd *cobra.Command, candidate string) error {
	categoryArg, _ := cmd.Flags().GetString("category")
	category, err := domain.ParseCategory(categoryArg)
	if err != nil {
		return err
	}

	engine, _, err := newEngine(cmd)
	if err != nil {
		return err
	}

	result := engine.ValidateName(candidate, category)
	if result.IsValid {
		fmt.Printf("%s ✅\n", candidate)
		return nil
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e.Message)
	}
	fmt.Println(engine.SuggestName(candidate, category))
	return nil
}
