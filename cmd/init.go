package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/mimic/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a mimic project in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}

		color.Green("✅ Created mimic.config.json")
		color.Cyan("📁 Drop sample CSVs into samples/ (business.csv, budget.csv, card.csv)")
		color.Cyan("🚀 Then run: mimic generate")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
