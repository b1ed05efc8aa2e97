package generate

// Context is the run-scoped registry of keys produced by completed rows.
// The active table's driver is its only writer; later tables read it when
// drawing foreign keys. It is never reset mid-run.
type Context struct {
	BusinessIDs       []string
	BudgetIDs         []string
	ApplicationIDs    []string
	BudgetsByBusiness map[string][]string
}

func NewContext() *Context {
	return &Context{
		BudgetsByBusiness: make(map[string][]string),
	}
}

// BusinessPlan pairs one business with its budget pool and its planned card
// count. Plans are built only after budget generation completes, so the
// budget pools are final.
type BusinessPlan struct {
	BusinessID string
	BudgetIDs  []string
	CardCount  int
}
