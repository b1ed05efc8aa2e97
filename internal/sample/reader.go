// Package sample reads the header+rows sample tables that profiling runs
// against. Samples are bounded; they seed inference and are never emitted.
package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Table is one parsed sample: the header in source order and up to the
// configured number of data rows. An empty cell means NULL in the source.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Column returns the raw values of one column across all sampled rows.
func (t Table) Column(name string) []string {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values
}

// ReadCSV parses a sample file, keeping at most limit data rows (limit <= 0
// keeps everything). A file without a header row is an input error.
func ReadCSV(path, name string, limit int) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open sample file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("sample file %s is empty", path)
	}
	if err != nil {
		return Table{}, fmt.Errorf("failed to read sample header from %s: %w", path, err)
	}

	t := Table{Name: name, Columns: header}
	for limit <= 0 || len(t.Rows) < limit {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read sample row from %s: %w", path, err)
		}
		t.Rows = append(t.Rows, record)
	}

	if len(t.Rows) == 0 {
		return Table{}, fmt.Errorf("sample file %s has a header but no rows", path)
	}
	return t, nil
}
