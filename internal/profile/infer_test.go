package profile

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferBoolean(t *testing.T) {
	p := Infer("is_active", []string{"true", "false", "true"})
	assert.Equal(t, TypeBoolean, p.Type)
}

func TestInferUUID(t *testing.T) {
	p := Infer("owner", []string{
		"8b28a8cc-aaa4-4d58-a815-513be57f3f11",
		"0a9a2023-9b2c-4b0f-9d36-2f78f06f85b2",
	})
	assert.Equal(t, TypeUUID, p.Type)
}

func TestInferTimestamp(t *testing.T) {
	p := Infer("created_at", []string{
		"2024-01-01 10:30:00",
		"2024-06-15 23:59:59.123456",
	})
	assert.Equal(t, TypeTimestamp, p.Type)
	assert.True(t, p.HasDateRange)
}

func TestInferDateRange(t *testing.T) {
	p := Infer("opened_on", []string{"2024-01-01", "2024-06-15"})
	require.Equal(t, TypeDate, p.Type)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), p.DateMin)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), p.DateMax)
}

func TestInferExpDate(t *testing.T) {
	p := Infer("exp_date", []string{"01/25", "12/27"})
	assert.Equal(t, TypeExpDate, p.Type)
}

func TestInferNumberStats(t *testing.T) {
	p := Infer("amount", []string{"10.50", "3.1", "-2.25"})
	require.Equal(t, TypeNumber, p.Type)
	assert.Equal(t, 2, p.NumberScale)
	assert.Equal(t, -2.25, p.NumberMin)
	assert.Equal(t, 10.50, p.NumberMax)
}

func TestInferJSON(t *testing.T) {
	p := Infer("metadata", []string{`{"city":"Austin"}`, `{"city":"Boston"}`})
	require.Equal(t, TypeJSON, p.Type)
	assert.Equal(t, `{"city":"Austin"}`, p.JSONSample)
}

func TestInferMixedFallsBackToString(t *testing.T) {
	// One non-boolean sample breaks the unanimity requirement.
	p := Infer("flag", []string{"true", "false", "maybe"})
	assert.Equal(t, TypeString, p.Type)
}

func TestPrecedenceCommitsToFirstMatch(t *testing.T) {
	// All-digit strings are numbers by type precedence; the numeric string
	// pattern only applies when an earlier validator fails.
	p := Infer("code", []string{"123456", "654321"})
	assert.Equal(t, TypeNumber, p.Type)
}

func TestNullRate(t *testing.T) {
	p := Infer("nickname", []string{"a", "", "b", ""})
	assert.Equal(t, 0.5, p.NullRate)
}

func TestNullRateEmptySampleDefault(t *testing.T) {
	p := Infer("anything", nil)
	assert.Equal(t, 0.1, p.NullRate)
	assert.Equal(t, TypeString, p.Type)
}

func TestLengthBounds(t *testing.T) {
	p := Infer("label", []string{"ab", "abcd", "abc"})
	assert.Equal(t, 2, p.MinLength)
	assert.Equal(t, 4, p.MaxLength)
}

func TestEnumAttachedForHintedColumn(t *testing.T) {
	p := Infer("status", []string{"active", "inactive", "active", "pending"})
	assert.ElementsMatch(t, []string{"active", "inactive", "pending"}, p.Enum)
}

func TestEnumRejectedForUnhintedColumn(t *testing.T) {
	p := Infer("nickname", []string{"a", "b", "a"})
	assert.Empty(t, p.Enum)
}

func TestEnumRejectedForIDSuffix(t *testing.T) {
	assert.False(t, shouldUseEnum("plan_id"))
	assert.False(t, shouldUseEnum("currency_uuid"))
	assert.False(t, shouldUseEnum("type_name"))
	assert.False(t, shouldUseEnum("status_token"))
	assert.True(t, shouldUseEnum("client_type"))
	assert.True(t, shouldUseEnum("industry"))
}

func TestEnumDistinctCountUsesFullSample(t *testing.T) {
	// The first 50 values carry only one distinct entry, but the tail pushes
	// the full sample past the distinct limit. Only shape inference is
	// bounded to 50 samples; enum candidacy must see everything.
	values := make([]string, 0, 75)
	for i := 0; i < 50; i++ {
		values = append(values, "active")
	}
	for i := 0; i < 25; i++ {
		values = append(values, fmt.Sprintf("state_%d", i))
	}

	p := Infer("status", values)
	assert.Empty(t, p.Enum)
}

func TestEnumDiscardedAboveDistinctLimit(t *testing.T) {
	values := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		values = append(values, string(rune('a'+i)))
	}
	p := Infer("status", values)
	assert.Empty(t, p.Enum)
}

func TestInferDeterministic(t *testing.T) {
	samples := []string{"ABC123", "ABC456", "", "ABC789"}
	first := Infer("account_ref", samples)
	second := Infer("account_ref", samples)
	assert.True(t, reflect.DeepEqual(first, second))
}
