package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides maps "table.column" or bare "column" keys to closed value sets
// supplied outside the sample. A table-qualified key wins over a bare one,
// and an override replaces the inferred enum rather than extending it.
type Overrides map[string][]string

// LoadOverrides reads an override file. A missing path yields an empty set.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}
	if o == nil {
		o = Overrides{}
	}
	return o, nil
}

// Apply merges any override for table.column into p, returning a new profile.
// The original is left untouched.
func (o Overrides) Apply(table string, p Profile) Profile {
	values, ok := o[table+"."+p.Name]
	if !ok {
		values, ok = o[p.Name]
	}
	if !ok || len(values) == 0 {
		return p
	}

	merged := p
	merged.Enum = append([]string(nil), values...)
	merged.Pattern = nil
	return merged
}
