package generate

import "github.com/Lumos-Labs-HQ/mimic/internal/profile"

// Table carries what the driver needs to generate one table: the header in
// source column order and one profile per column.
type Table struct {
	Name     string
	Columns  []string
	Profiles map[string]profile.Profile
}

// RowSeed pre-decides values for specific columns of the row at the given
// index. Seeded columns are honored verbatim; generation skips them.
type RowSeed func(index int) map[string]any

// Driver runs the per-table loop: seed, fill the remaining columns, record
// new keys, emit. It is the single writer of the shared Context.
type Driver struct {
	gen *Generator
	ctx *Context
}

func NewDriver(gen *Generator, ctx *Context) *Driver {
	return &Driver{gen: gen, ctx: ctx}
}

// Generate produces rowCount rows for the table. Keys are recorded only
// after a row is fully generated, so a row never observes its own keys in
// the context pools.
func (d *Driver) Generate(table Table, rowCount int, seed RowSeed) []map[string]any {
	rows := make([]map[string]any, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		row := make(map[string]any, len(table.Columns))
		if seed != nil {
			for col, val := range seed(i) {
				row[col] = val
			}
		}

		for _, col := range table.Columns {
			if _, ok := row[col]; ok {
				continue
			}
			row[col] = d.gen.Value(table.Name, table.Profiles[col], row)
		}

		d.recordKeys(table.Name, row)
		rows = append(rows, row)
	}
	return rows
}

// recordKeys appends the row's newly created ids into the shared context.
// This is the only mutation point of the context pools.
func (d *Driver) recordKeys(table string, row map[string]any) {
	switch table {
	case "business":
		if id := stringCell(row["id"]); id != "" {
			d.ctx.BusinessIDs = append(d.ctx.BusinessIDs, id)
		}
		if app := stringCell(row["application_id"]); app != "" {
			d.ctx.ApplicationIDs = append(d.ctx.ApplicationIDs, app)
		}
	case "budget":
		id := stringCell(row["id"])
		if id == "" {
			return
		}
		d.ctx.BudgetIDs = append(d.ctx.BudgetIDs, id)
		if biz := stringCell(row["business_uuid"]); biz != "" {
			d.ctx.BudgetsByBusiness[biz] = append(d.ctx.BudgetsByBusiness[biz], id)
		}
	}
}

func stringCell(v any) string {
	s, _ := v.(string)
	return s
}
