package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/mimic/internal/config"
	"github.com/Lumos-Labs-HQ/mimic/internal/emit"
	"github.com/Lumos-Labs-HQ/mimic/internal/generate"
	"github.com/Lumos-Labs-HQ/mimic/internal/logger"
	"github.com/Lumos-Labs-HQ/mimic/internal/profile"
	"github.com/Lumos-Labs-HQ/mimic/internal/sample"
)

var (
	genBusinesses int
	genBudgets    int
	genCards      int
	genMaxCards   int
	genSeed       int64
	genOut        string
	genVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fake rows from the sample tables",
	Long: `Profile the business, budget and card sample CSVs, then generate the
requested row counts with consistent cross-table references. Output is one
CSV per table plus a load.sql loader script.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := "info"
		if genVerbose {
			level = "debug"
		}
		log := logger.New(&logger.Config{Level: level, Format: "console"})

		runCfg := generate.RunConfig{
			BusinessCount:       cfg.Counts.Business,
			BudgetCount:         cfg.Counts.Budget,
			CardCount:           cfg.Counts.Card,
			MaxCardsPerBusiness: cfg.Counts.MaxCardsPerBusiness,
			Seed:                cfg.Seed,
		}
		if cmd.Flags().Changed("businesses") {
			runCfg.BusinessCount = genBusinesses
		}
		if cmd.Flags().Changed("budgets") {
			runCfg.BudgetCount = genBudgets
		}
		if cmd.Flags().Changed("cards") {
			runCfg.CardCount = genCards
		}
		if cmd.Flags().Changed("max-cards") {
			runCfg.MaxCardsPerBusiness = genMaxCards
		}
		if cmd.Flags().Changed("seed") {
			runCfg.Seed = genSeed
		}

		outDir := cfg.OutputDir
		if genOut != "" {
			outDir = genOut
		}

		color.Cyan("🎲 Profiling samples from %s...", cfg.SamplesDir)

		tables := make(map[string]sample.Table, 3)
		for _, name := range []string{"business", "budget", "card"} {
			t, err := sample.ReadCSV(cfg.SamplePath(name), name, cfg.SampleSize)
			if err != nil {
				return err
			}
			tables[name] = t
		}

		overrides, err := profile.LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return err
		}

		runner := generate.NewRunner(log)
		result, err := runner.Run(runCfg, tables["business"], tables["budget"], tables["card"], overrides)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		var files []emit.TableFile
		for _, t := range result.Tables() {
			f, err := emit.WriteCSV(outDir, t)
			if err != nil {
				return err
			}
			color.Green("  ✅ %s: %d rows → %s", t.Name, len(t.Rows), f.Path)
			files = append(files, f)
		}

		scriptPath, err := emit.WriteLoaderScript(outDir, files)
		if err != nil {
			return err
		}
		color.Green("  ✅ loader script → %s", scriptPath)
		color.Cyan("🎉 Generation complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&genBusinesses, "businesses", 0, "Number of business rows")
	generateCmd.Flags().IntVar(&genBudgets, "budgets", 0, "Number of budget rows")
	generateCmd.Flags().IntVar(&genCards, "cards", 0, "Number of card rows")
	generateCmd.Flags().IntVar(&genMaxCards, "max-cards", 0, "Maximum cards per business")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Deterministic RNG seed")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().BoolVar(&genVerbose, "verbose", false, "Verbose engine logging")
}
