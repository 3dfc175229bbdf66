package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iconlint/iconlint"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of iconlint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("iconlint version %s\n", strings.TrimSpace(iconlint.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
