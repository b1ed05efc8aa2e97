package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesQualifiedKeyWins(t *testing.T) {
	o := Overrides{
		"budget.currency": {"USD"},
		"currency":        {"EUR", "GBP"},
	}

	p := Infer("currency", []string{"CAD", "AUD"})
	merged := o.Apply("budget", p)
	assert.Equal(t, []string{"USD"}, merged.Enum)

	merged = o.Apply("card", p)
	assert.Equal(t, []string{"EUR", "GBP"}, merged.Enum)
}

func TestOverridesReplaceNotUnion(t *testing.T) {
	o := Overrides{"status": {"enabled", "disabled"}}

	p := Infer("status", []string{"active", "inactive"})
	require.NotEmpty(t, p.Enum)

	merged := o.Apply("business", p)
	assert.Equal(t, []string{"enabled", "disabled"}, merged.Enum)
	// The inferred profile is untouched.
	assert.ElementsMatch(t, []string{"active", "inactive"}, p.Enum)
}

func TestOverridesNoMatchReturnsProfileUnchanged(t *testing.T) {
	o := Overrides{"status": {"x"}}
	p := Infer("label", []string{"aa", "bb"})
	assert.Equal(t, p, o.Apply("business", p))
}

func TestLoadOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	content := "business.industry:\n  - fintech\n  - retail\ncurrency:\n  - USD\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	o, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fintech", "retail"}, o["business.industry"])
	assert.Equal(t, []string{"USD"}, o["currency"])
}

func TestLoadOverridesEmptyPath(t *testing.T) {
	o, err := LoadOverrides("")
	require.NoError(t, err)
	assert.Empty(t, o)
}

func TestLoadOverridesInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("::::\n\t"), 0644))

	_, err := LoadOverrides(path)
	assert.Error(t, err)
}
