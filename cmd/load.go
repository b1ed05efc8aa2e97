package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/mimic/internal/config"
	"github.com/Lumos-Labs-HQ/mimic/internal/database"
)

var (
	loadDir      string
	loadTruncate bool
	loadBatch    int
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load previously generated CSVs into the database",
	Long: `Read the generated business, budget and card CSVs and bulk-insert them
into the configured database, parents before children. Empty cells become
NULLs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := database.Open(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer adapter.Close()

		dir := cfg.OutputDir
		if loadDir != "" {
			dir = loadDir
		}

		tables := []string{"business", "budget", "card"}
		if loadTruncate {
			// Children first so FK constraints do not block the delete.
			for i := len(tables) - 1; i >= 0; i-- {
				if err := adapter.Truncate(ctx, tables[i]); err != nil {
					return err
				}
			}
			color.Yellow("🗑️  Tables truncated")
		}

		for _, table := range tables {
			path := filepath.Join(dir, table+".csv")
			n, err := loadTable(ctx, adapter, table, path)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", table, err)
			}
			color.Green("  ✅ %s: %d rows loaded", table, n)
		}

		color.Cyan("🎉 Load complete")
		return nil
	},
}

func loadTable(ctx context.Context, adapter *database.Adapter, table, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	columns, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}

	batchSize := loadBatch
	if batchSize <= 0 {
		batchSize = 100
	}

	total := 0
	var batch [][]any
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := adapter.InsertBatch(ctx, table, columns, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}

		row := make([]any, len(columns))
		for i := range columns {
			if i < len(record) && record[i] != "" {
				row[i] = record[i]
			}
		}
		batch = append(batch, row)

		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	return total, flush()
}

func init() {
	rootCmd.AddCommand(loadCmd)
	loadCmd.Flags().StringVar(&loadDir, "dir", "", "Directory holding the generated CSVs (overrides config)")
	loadCmd.Flags().BoolVar(&loadTruncate, "truncate", false, "Truncate tables before loading")
	loadCmd.Flags().IntVar(&loadBatch, "batch", 100, "Insert batch size")
}
