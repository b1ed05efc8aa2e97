package generate

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/mimic/internal/profile"
)

func newTestGenerator(seed int64) (*Generator, *Context) {
	ctx := NewContext()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return NewGeneratorAt(seed, ctx, now), ctx
}

func TestIDColumnAlwaysFreshUUID(t *testing.T) {
	g, _ := newTestGenerator(1)
	prof := profile.Profile{Name: "id", Type: profile.TypeString, NullRate: 1.0}

	v := g.Value("business", prof, map[string]any{})
	require.IsType(t, "", v)
	_, err := uuid.Parse(v.(string))
	assert.NoError(t, err)
}

func TestForeignKeyDrawsFromPool(t *testing.T) {
	g, ctx := newTestGenerator(2)
	ctx.BusinessIDs = []string{"biz-1", "biz-2", "biz-3"}

	prof := profile.Profile{Name: "business_uuid", Type: profile.TypeUUID}
	for i := 0; i < 20; i++ {
		v := g.Value("budget", prof, map[string]any{})
		assert.Contains(t, ctx.BusinessIDs, v)
	}
}

func TestForeignKeyEmptyPoolFallsBackToUUID(t *testing.T) {
	g, _ := newTestGenerator(3)
	prof := profile.Profile{Name: "budget_id", Type: profile.TypeUUID}

	v := g.Value("card", prof, map[string]any{})
	_, err := uuid.Parse(v.(string))
	assert.NoError(t, err)
}

func TestRootBudgetEchoesOwnID(t *testing.T) {
	g, _ := newTestGenerator(4)
	prof := profile.Profile{Name: "root_budget_id", Type: profile.TypeUUID}

	row := map[string]any{"id": "aaaa-bbbb"}
	assert.Equal(t, "aaaa-bbbb", g.Value("budget", prof, row))
}

func TestBudgetPathTwoSegments(t *testing.T) {
	g, _ := newTestGenerator(5)
	prof := profile.Profile{Name: "path", Type: profile.TypeString}

	row := map[string]any{
		"id":             "11-22-33",
		"root_budget_id": "11-22-33",
	}
	assert.Equal(t, "11_22_33.11_22_33", g.Value("budget", prof, row))
}

func TestMaskedPANShape(t *testing.T) {
	g, _ := newTestGenerator(6)
	prof := profile.Profile{Name: "masked_pan", Type: profile.TypeString}

	v := g.Value("card", prof, map[string]any{})
	assert.Regexp(t, regexp.MustCompile(`^\d{6}\*{6}\d{4}$`), v)
}

func TestExpDateBounds(t *testing.T) {
	g, _ := newTestGenerator(7)
	prof := profile.Profile{Name: "exp_date", Type: profile.TypeExpDate}

	re := regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	for i := 0; i < 50; i++ {
		v := g.Value("card", prof, map[string]any{}).(string)
		m := re.FindStringSubmatch(v)
		require.NotNil(t, m, "bad exp_date %q", v)
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		assert.GreaterOrEqual(t, month, 1)
		assert.LessOrEqual(t, month, 12)
		assert.GreaterOrEqual(t, year, 24)
		assert.LessOrEqual(t, year, 30)
	}
}

func TestUpdatedAtNotBeforeCreatedAt(t *testing.T) {
	g, _ := newTestGenerator(8)
	prof := profile.Profile{Name: "updated_at", Type: profile.TypeTimestamp}

	for i := 0; i < 50; i++ {
		row := map[string]any{"created_at": "2024-03-01 08:00:00"}
		v := g.Value("business", prof, row).(string)
		updated, err := time.ParseInLocation(profile.TimestampLayout, v, time.UTC)
		require.NoError(t, err)
		created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		assert.False(t, updated.Before(created))
	}
}

func TestNullSamplingSkipsSpecialColumns(t *testing.T) {
	g, ctx := newTestGenerator(9)
	ctx.BudgetIDs = []string{"b-1"}

	always := profile.Profile{Name: "budget_id", Type: profile.TypeUUID, NullRate: 1.0}
	assert.Equal(t, "b-1", g.Value("card", always, map[string]any{}))

	plain := profile.Profile{Name: "nickname", Type: profile.TypeString, NullRate: 1.0}
	assert.Nil(t, g.Value("business", plain, map[string]any{}))
}

func TestEnumSubstitutionForNonStringType(t *testing.T) {
	g, _ := newTestGenerator(10)
	prof := profile.Profile{
		Name: "status_code",
		Type: profile.TypeNumber,
		Enum: []string{"100", "200", "300"},
	}
	for i := 0; i < 20; i++ {
		assert.Contains(t, prof.Enum, g.Value("business", prof, map[string]any{}))
	}
}

func TestNumberRespectsRangeAndScale(t *testing.T) {
	g, _ := newTestGenerator(11)
	prof := profile.Profile{
		Name:           "amount",
		Type:           profile.TypeNumber,
		NumberMin:      5,
		NumberMax:      10,
		NumberScale:    2,
		HasNumberRange: true,
	}
	for i := 0; i < 50; i++ {
		v := g.Value("budget", prof, map[string]any{}).(string)
		f, err := strconv.ParseFloat(v, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f, 5.0)
		assert.LessOrEqual(t, f, 10.0)
	}
}

func TestStringClampedToMaxLength(t *testing.T) {
	g, _ := newTestGenerator(12)
	prof := profile.Profile{
		Name:      "description",
		Type:      profile.TypeString,
		MaxLength: 10,
	}
	for i := 0; i < 20; i++ {
		v := g.Value("business", prof, map[string]any{}).(string)
		assert.LessOrEqual(t, len(v), 10)
	}
}

func TestPatternFill(t *testing.T) {
	g, _ := newTestGenerator(13)
	prof := profile.Profile{
		Name:      "account_ref",
		Type:      profile.TypeString,
		MaxLength: 6,
		Pattern:   &profile.StringPattern{Kind: profile.PatternPrefixDigits, Prefix: "ABC", DigitCount: 3},
	}
	v := g.Value("business", prof, map[string]any{}).(string)
	assert.Regexp(t, regexp.MustCompile(`^ABC\d{3}$`), v)
}

func TestSameSeedSameSequence(t *testing.T) {
	prof := profile.Profile{Name: "label", Type: profile.TypeString, MinLength: 4, MaxLength: 12}

	g1, _ := newTestGenerator(42)
	g2, _ := newTestGenerator(42)
	for i := 0; i < 25; i++ {
		assert.Equal(t, g1.Value("business", prof, map[string]any{}), g2.Value("business", prof, map[string]any{}))
	}
}
