package generate

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/mimic/internal/allocate"
	"github.com/Lumos-Labs-HQ/mimic/internal/logger"
	"github.com/Lumos-Labs-HQ/mimic/internal/profile"
	"github.com/Lumos-Labs-HQ/mimic/internal/sample"
)

// RunConfig is the resolved generation request. Counts are validated by the
// caller; the runner only applies the capacity corrections described below.
type RunConfig struct {
	BusinessCount       int
	BudgetCount         int
	CardCount           int
	MaxCardsPerBusiness int

	// Seed drives the single rng. The same seed and counts reproduce the
	// run byte for byte when Now is pinned as well.
	Seed int64
	Now  time.Time
}

// TableRows is one generated table, rows in emission order.
type TableRows struct {
	Name    string
	Columns []string
	Rows    []map[string]any
}

// Result holds the three generated tables in hierarchy order.
type Result struct {
	Business TableRows
	Budget   TableRows
	Card     TableRows
}

// Tables returns the result in business → budget → card order.
func (r *Result) Tables() []TableRows {
	return []TableRows{r.Business, r.Budget, r.Card}
}

// Runner wires profiling, allocation and row generation into the sequential
// business → budget → card pipeline.
type Runner struct {
	log *logger.Logger
}

func NewRunner(log *logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{log: log}
}

// Run executes one full generation pass. Each stage completes before the next
// begins: business rows seed budget allocation, and budget rows seed the
// per-business card plans.
func (r *Runner) Run(cfg RunConfig, business, budget, card sample.Table, overrides profile.Overrides) (*Result, error) {
	if cfg.BusinessCount < 1 {
		return nil, fmt.Errorf("business count must be at least 1, got %d", cfg.BusinessCount)
	}

	if err := requireColumns(business, "id"); err != nil {
		return nil, err
	}
	if err := requireColumns(budget, "id", "business_uuid"); err != nil {
		return nil, err
	}
	if err := requireColumns(card, "id", "budget_id"); err != nil {
		return nil, err
	}

	bizTable := r.profileTable(business, overrides)
	budTable := r.profileTable(budget, overrides)
	cardTable := r.profileTable(card, overrides)

	ctx := NewContext()
	var gen *Generator
	if cfg.Now.IsZero() {
		gen = NewGenerator(cfg.Seed, ctx)
	} else {
		gen = NewGeneratorAt(cfg.Seed, ctx, cfg.Now)
	}
	driver := NewDriver(gen, ctx)

	result := &Result{}
	result.Business = TableRows{
		Name:    bizTable.Name,
		Columns: bizTable.Columns,
		Rows:    driver.Generate(bizTable, cfg.BusinessCount, nil),
	}

	budgetRows, err := r.runBudgets(cfg, driver, ctx, budTable)
	if err != nil {
		return nil, err
	}
	result.Budget = TableRows{Name: budTable.Name, Columns: budTable.Columns, Rows: budgetRows}

	cardRows, err := r.runCards(cfg, driver, gen, ctx, cardTable)
	if err != nil {
		return nil, err
	}
	result.Card = TableRows{Name: cardTable.Name, Columns: cardTable.Columns, Rows: cardRows}

	return result, nil
}

// requireColumns rejects a sample whose header is missing a hierarchy
// column. The pools and allocation plans depend on these, so a sample
// without them is unusable input, not something generation can degrade
// around.
func requireColumns(t sample.Table, names ...string) error {
	for _, name := range names {
		found := false
		for _, col := range t.Columns {
			if col == name {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s sample is missing required column %q", t.Name, name)
		}
	}
	return nil
}

func (r *Runner) profileTable(t sample.Table, overrides profile.Overrides) Table {
	profiles := make(map[string]profile.Profile, len(t.Columns))
	for _, col := range t.Columns {
		p := profile.Infer(col, t.Column(col))
		profiles[col] = overrides.Apply(t.Name, p)
	}
	r.log.Debug().Str("table", t.Name).Int("columns", len(t.Columns)).Msg("profiled table")
	return Table{Name: t.Name, Columns: t.Columns, Profiles: profiles}
}

func (r *Runner) runBudgets(cfg RunConfig, driver *Driver, ctx *Context, table Table) ([]map[string]any, error) {
	budgetCount := cfg.BudgetCount
	if budgetCount < cfg.BusinessCount {
		r.log.Warn().
			Int("requested", budgetCount).
			Int("adjusted", cfg.BusinessCount).
			Msg("budget count below business count, raising so every business gets a budget")
		budgetCount = cfg.BusinessCount
	}

	counts := allocate.Budgets(cfg.BusinessCount, budgetCount)
	if got := allocate.Total(counts); got != budgetCount {
		return nil, fmt.Errorf("budget allocation drifted: requested %d, allocated %d", budgetCount, got)
	}

	// Expand the per-business counts into one owner per budget row.
	owners := make([]string, 0, budgetCount)
	for i, n := range counts {
		for j := 0; j < n; j++ {
			owners = append(owners, ctx.BusinessIDs[i])
		}
	}

	seed := func(i int) map[string]any {
		return map[string]any{"business_uuid": owners[i]}
	}
	return driver.Generate(table, budgetCount, seed), nil
}

func (r *Runner) runCards(cfg RunConfig, driver *Driver, gen *Generator, ctx *Context, table Table) ([]map[string]any, error) {
	cardCount := cfg.CardCount
	if cardCount < 0 {
		cardCount = 0
	}
	if capacity := allocate.Capacity(cfg.BusinessCount, cfg.MaxCardsPerBusiness); cardCount > capacity {
		r.log.Warn().
			Int("requested", cardCount).
			Int("capacity", capacity).
			Msg("card count exceeds business capacity, capping")
		cardCount = capacity
	}

	counts := allocate.Cards(cfg.BusinessCount, cardCount, cfg.MaxCardsPerBusiness)
	if got := allocate.Total(counts); got != cardCount {
		return nil, fmt.Errorf("card allocation drifted: requested %d, allocated %d", cardCount, got)
	}

	plans := make([]BusinessPlan, len(counts))
	for i, n := range counts {
		id := ctx.BusinessIDs[i]
		plans[i] = BusinessPlan{BusinessID: id, BudgetIDs: ctx.BudgetsByBusiness[id], CardCount: n}
	}

	// One plan reference per card row, in business order.
	assigned := make([]*BusinessPlan, 0, cardCount)
	for i := range plans {
		for j := 0; j < plans[i].CardCount; j++ {
			assigned = append(assigned, &plans[i])
		}
	}

	seed := func(i int) map[string]any {
		pool := assigned[i].BudgetIDs
		if len(pool) == 0 {
			pool = ctx.BudgetIDs
		}
		return map[string]any{"budget_id": gen.Pick(pool)}
	}
	return driver.Generate(table, cardCount, seed), nil
}
