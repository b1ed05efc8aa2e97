package generate

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Lumos-Labs-HQ/mimic/internal/profile"
)

// lookbackWindow is the default timestamp range when a profile carries no
// observed date bounds.
const lookbackWindow = 3 * 365 * 24 * time.Hour

// Generator produces cell values from column profiles. All randomness flows
// through the single seeded rng, so a fixed seed and a fixed traversal order
// reproduce output byte for byte.
type Generator struct {
	rng *rand.Rand
	ctx *Context
	now time.Time
}

func NewGenerator(seed int64, ctx *Context) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		ctx: ctx,
		now: time.Now().UTC().Truncate(time.Second),
	}
}

// NewGeneratorAt pins "now" for the updated_at and date-window logic.
// Generation is fully deterministic only with a pinned clock.
func NewGeneratorAt(seed int64, ctx *Context, now time.Time) *Generator {
	g := NewGenerator(seed, ctx)
	g.now = now.UTC().Truncate(time.Second)
	return g
}

// Value produces one cell (a string, or nil for NULL) for the named table
// and column profile, given the row built so far. The dispatch order below
// is a fixed policy: identity and hierarchy columns are decided before null
// sampling so they can never come out null.
func (g *Generator) Value(table string, prof profile.Profile, row map[string]any) any {
	name := prof.Name

	if name == "id" {
		return g.UUID()
	}

	switch {
	case table == "budget" && name == "business_uuid":
		return g.pickOrUUID(g.ctx.BusinessIDs)
	case table == "card" && name == "budget_id":
		return g.pickOrUUID(g.ctx.BudgetIDs)
	case table == "card" && name == "application_id":
		return g.pickOrUUID(g.ctx.ApplicationIDs)
	}

	if table == "budget" && name == "root_budget_id" {
		if id := stringCell(row["id"]); id != "" {
			return id
		}
		return g.UUID()
	}

	if table == "budget" && name == "path" {
		return g.budgetPath(row)
	}

	if table == "card" && name == "masked_pan" {
		return g.maskedPAN()
	}

	if table == "card" && name == "exp_date" {
		return g.expDate()
	}

	if name == "updated_at" {
		if created := stringCell(row["created_at"]); created != "" {
			if v, ok := g.afterInstant(created); ok {
				return v
			}
		}
	}

	if g.rng.Float64() < prof.NullRate {
		return nil
	}

	if len(prof.Enum) > 0 && prof.Type != profile.TypeString {
		return prof.Enum[g.rng.Intn(len(prof.Enum))]
	}

	return g.byType(prof)
}

func (g *Generator) byType(prof profile.Profile) string {
	switch prof.Type {
	case profile.TypeUUID:
		return g.UUID()
	case profile.TypeBoolean:
		if g.rng.Intn(2) == 1 {
			return "true"
		}
		return "false"
	case profile.TypeNumber:
		return g.number(prof)
	case profile.TypeTimestamp:
		return g.instantIn(prof).Format(profile.TimestampLayout)
	case profile.TypeDate:
		return g.instantIn(prof).Format(profile.DateLayout)
	case profile.TypeExpDate:
		return g.expDate()
	case profile.TypeJSON:
		return g.jsonFromTemplate(prof.JSONSample)
	default:
		return g.str(prof)
	}
}

// UUID returns a fresh random UUID drawn from the seeded rng.
func (g *Generator) UUID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

func (g *Generator) pickOrUUID(pool []string) string {
	if len(pool) == 0 {
		return g.UUID()
	}
	return pool[g.rng.Intn(len(pool))]
}

// Pick draws uniformly from pool, falling back to a fresh UUID when the pool
// is empty. Exposed for row seeds that draw from plan-scoped pools.
func (g *Generator) Pick(pool []string) string {
	return g.pickOrUUID(pool)
}

// budgetPath builds the two-segment hierarchy label
// {root-with-underscores}.{id-with-underscores}. parent_budget_id is always
// null here, so the path never grows beyond two segments.
func (g *Generator) budgetPath(row map[string]any) string {
	id := stringCell(row["id"])
	if id == "" {
		id = g.UUID()
	}
	root := stringCell(row["root_budget_id"])
	if root == "" {
		root = id
	}
	underscore := func(s string) string { return strings.ReplaceAll(s, "-", "_") }
	return underscore(root) + "." + underscore(id)
}

func (g *Generator) maskedPAN() string {
	return g.digits(6) + "******" + g.digits(4)
}

func (g *Generator) expDate() string {
	month := g.rng.Intn(12) + 1
	year := 24 + g.rng.Intn(7)
	return fmt.Sprintf("%02d/%02d", month, year)
}

// afterInstant returns a random timestamp between the given created_at value
// and now. Reports false when created_at does not parse as a timestamp.
func (g *Generator) afterInstant(created string) (string, bool) {
	base, err := time.ParseInLocation(profile.TimestampLayout, created, time.UTC)
	if err != nil {
		return "", false
	}
	if !base.Before(g.now) {
		return base.Format(profile.TimestampLayout), true
	}
	delta := g.now.Unix() - base.Unix()
	t := base.Add(time.Duration(g.rng.Int63n(delta+1)) * time.Second)
	return t.Format(profile.TimestampLayout), true
}

func (g *Generator) number(prof profile.Profile) string {
	min, max := prof.NumberMin, prof.NumberMax
	if !prof.HasNumberRange {
		min, max = 0, 1000
	}
	v := min + g.rng.Float64()*(max-min)
	return strconv.FormatFloat(v, 'f', prof.NumberScale, 64)
}

func (g *Generator) instantIn(prof profile.Profile) time.Time {
	min, max := prof.DateMin, prof.DateMax
	if !prof.HasDateRange || min.IsZero() {
		max = g.now
		min = max.Add(-lookbackWindow)
	}
	if !min.Before(max) {
		return min
	}
	delta := max.Unix() - min.Unix()
	return time.Unix(min.Unix()+g.rng.Int63n(delta+1), 0).UTC()
}

func (g *Generator) str(prof profile.Profile) string {
	if len(prof.Enum) > 0 {
		return prof.Enum[g.rng.Intn(len(prof.Enum))]
	}
	if v, ok := g.stringByName(prof.Name); ok {
		return g.clamp(v, prof.MaxLength)
	}
	if prof.Pattern != nil {
		return g.clamp(g.fromPattern(prof.Pattern), prof.MaxLength)
	}
	return g.clamp(g.alnumBetween(prof.MinLength, prof.MaxLength), prof.MaxLength)
}

// stringByName picks a generator from the column name. The cases overlap, so
// the more specific ones come first.
func (g *Generator) stringByName(name string) (string, bool) {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "company") || strings.Contains(lower, "business") || strings.Contains(lower, "legal"):
		return g.companyName(), true
	case strings.Contains(lower, "first_name") || strings.Contains(lower, "firstname"):
		return g.firstName(), true
	case strings.Contains(lower, "last_name") || strings.Contains(lower, "lastname"):
		return g.lastName(), true
	case strings.Contains(lower, "name"):
		return g.personName(), true
	case strings.Contains(lower, "title"):
		return g.title(), true
	case strings.Contains(lower, "email"):
		return g.email(), true
	case strings.Contains(lower, "phone"):
		return g.phone(), true
	case strings.Contains(lower, "country"):
		return g.countryCode(), true
	case strings.Contains(lower, "currency"):
		return g.currencyCode(), true
	case strings.Contains(lower, "description") || strings.Contains(lower, "note") || strings.Contains(lower, "comment") || strings.Contains(lower, "memo"):
		return g.sentence(), true
	case strings.Contains(lower, "address") || strings.Contains(lower, "street"):
		return g.address(), true
	case strings.Contains(lower, "city"):
		return g.city(), true
	case strings.Contains(lower, "postal") || strings.Contains(lower, "zip"):
		return g.postalCode(), true
	}
	return "", false
}

func (g *Generator) fromPattern(p *profile.StringPattern) string {
	switch p.Kind {
	case profile.PatternNumeric:
		return g.digits(p.Length)
	case profile.PatternMaskedPAN:
		return g.maskedPAN()
	case profile.PatternPrefixDigits:
		return p.Prefix + g.digits(p.DigitCount)
	case profile.PatternPrefixSeparator:
		return p.Prefix + p.Separator + g.alnum(p.SuffixLength)
	case profile.PatternHex:
		return g.hex(p.Length)
	case profile.PatternAlphanumeric:
		return g.alnumBetween(p.MinLength, p.MaxLength)
	default:
		return g.alnumBetween(0, 0)
	}
}

func (g *Generator) clamp(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

const (
	digitChars = "0123456789"
	hexChars   = "0123456789abcdef"
	alnumChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func (g *Generator) fill(n int, chars string) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = chars[g.rng.Intn(len(chars))]
	}
	return string(b)
}

func (g *Generator) digits(n int) string { return g.fill(n, digitChars) }
func (g *Generator) hex(n int) string    { return g.fill(n, hexChars) }
func (g *Generator) alnum(n int) string  { return g.fill(n, alnumChars) }

func (g *Generator) alnumBetween(min, max int) string {
	if max <= 0 {
		min, max = 6, 12
	}
	if min <= 0 {
		min = 1
	}
	if min > max {
		min = max
	}
	return g.alnum(min + g.rng.Intn(max-min+1))
}
