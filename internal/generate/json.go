package generate

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/Lumos-Labs-HQ/mimic/internal/profile"
)

// jsonFromTemplate re-randomizes every leaf of the sampled JSON document
// while keeping its structure. Object keys are walked in sorted order so the
// rng draw sequence is stable.
func (g *Generator) jsonFromTemplate(sample string) string {
	if sample == "" {
		return "{}"
	}
	var v any
	if err := json.Unmarshal([]byte(sample), &v); err != nil {
		return sample
	}
	out, err := json.Marshal(g.cloneJSON("", v))
	if err != nil {
		return sample
	}
	return string(out)
}

func (g *Generator) cloneJSON(key string, v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return g.rng.Intn(2) == 1
	case float64:
		if t == math.Trunc(t) {
			return float64(g.rng.Intn(1000))
		}
		return math.Round(g.rng.Float64()*100000) / 100
	case string:
		return g.jsonString(key)
	case []any:
		if len(t) == 0 {
			return []any{}
		}
		n := g.rng.Intn(3)
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, g.cloneJSON(key, t[0]))
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make(map[string]any, len(t))
		for _, k := range keys {
			out[k] = g.cloneJSON(k, t[k])
		}
		return out
	default:
		return v
	}
}

// jsonString re-randomizes a string leaf, picking a generator from the field
// name when one of the keyword heuristics matches.
func (g *Generator) jsonString(key string) string {
	lower := strings.ToLower(key)
	switch {
	case strings.Contains(lower, "email"):
		return g.email()
	case strings.Contains(lower, "phone"):
		return g.phone()
	case strings.Contains(lower, "country"):
		return g.countryCode()
	case strings.Contains(lower, "postal") || strings.Contains(lower, "zip"):
		return g.postalCode()
	case strings.Contains(lower, "city"):
		return g.city()
	case strings.Contains(lower, "address") || strings.Contains(lower, "street"):
		return g.address()
	case strings.Contains(lower, "first"):
		return g.firstName()
	case strings.Contains(lower, "last"):
		return g.lastName()
	case strings.Contains(lower, "dob") || strings.Contains(lower, "birth"):
		return g.instantIn(profile.Profile{}).Format(profile.DateLayout)
	case strings.Contains(lower, "id"):
		return g.UUID()
	default:
		return g.word()
	}
}
