// Package emit serializes generated tables: one CSV per table plus a SQL
// loader script that bulk-loads them in hierarchy order.
package emit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Lumos-Labs-HQ/mimic/internal/generate"
)

// nullSentinel is what a NULL cell becomes in the CSV; the loader script
// declares it as the NULL marker so round-trips keep nulls.
const nullSentinel = ""

// TableFile records where one table landed on disk.
type TableFile struct {
	Table   string
	Path    string
	Columns []string
}

// WriteCSV writes one generated table under dir, header first, NULL cells as
// empty strings.
func WriteCSV(dir string, t generate.TableRows) (TableFile, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return TableFile{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.csv", t.Name))
	file, err := os.Create(path)
	if err != nil {
		return TableFile{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		return TableFile{}, fmt.Errorf("failed to write header for %s: %w", t.Name, err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			if v, ok := row[col].(string); ok {
				record[i] = v
			} else {
				record[i] = nullSentinel
			}
		}
		if err := writer.Write(record); err != nil {
			return TableFile{}, fmt.Errorf("failed to write row for %s: %w", t.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return TableFile{}, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return TableFile{Table: t.Name, Path: path, Columns: t.Columns}, nil
}

// WriteLoaderScript emits a psql script that loads the CSVs inside one
// transaction, in the order given (parents before children).
func WriteLoaderScript(dir string, files []TableFile) (string, error) {
	var b strings.Builder
	b.WriteString("-- Generated by mimic. Load with: psql -f load.sql\n")
	b.WriteString("BEGIN;\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "\\copy %s (%s) FROM '%s' WITH (FORMAT csv, HEADER true, NULL '')\n",
			f.Table, strings.Join(f.Columns, ", "), filepath.Base(f.Path))
	}
	b.WriteString("\nCOMMIT;\n")

	path := filepath.Join(dir, "load.sql")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write loader script: %w", err)
	}
	return path, nil
}
