package profile

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// maxShapeSamples bounds the number of non-empty values used for
	// length, type and pattern inference.
	maxShapeSamples = 50

	// defaultNullRate is assumed when a column has no sample at all.
	defaultNullRate = 0.1

	// maxEnumValues is the largest distinct-value count still treated as
	// a closed enum.
	maxEnumValues = 20
)

var (
	numberRegex  = regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`)
	expDateRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// enumHints are column-name substrings that mark a column as a candidate for
// closed-set generation.
var enumHints = []string{"status", "type", "plan", "industry", "currency", "country", "client_type"}

// Infer builds a Profile for one column from a bounded sample of raw string
// values. Empty strings count as NULLs in the source.
func Infer(name string, samples []string) Profile {
	var nonEmpty []string
	for _, s := range samples {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	p := Profile{Name: name, NullRate: defaultNullRate}
	if len(samples) > 0 {
		p.NullRate = float64(len(samples)-len(nonEmpty)) / float64(len(samples))
	}

	if len(nonEmpty) == 0 {
		p.Type = TypeString
		return p
	}

	// Length, type and pattern inference run on a bounded prefix; the enum
	// distinct count below uses the full non-empty sample.
	shape := nonEmpty
	if len(shape) > maxShapeSamples {
		shape = shape[:maxShapeSamples]
	}

	p.MinLength = len(shape[0])
	for _, s := range shape {
		if len(s) < p.MinLength {
			p.MinLength = len(s)
		}
		if len(s) > p.MaxLength {
			p.MaxLength = len(s)
		}
	}

	p.Type = classify(shape)

	switch p.Type {
	case TypeNumber:
		p.NumberScale, p.NumberMin, p.NumberMax = numberStats(shape)
		p.HasNumberRange = true
	case TypeTimestamp:
		p.DateMin, p.DateMax = dateStats(shape, parseTimestamp)
		p.HasDateRange = true
	case TypeDate:
		p.DateMin, p.DateMax = dateStats(shape, parseDate)
		p.HasDateRange = true
	case TypeJSON:
		p.JSONSample = shape[0]
	}

	if shouldUseEnum(name) {
		if enum := distinctValues(nonEmpty); len(enum) > 0 && len(enum) <= maxEnumValues {
			p.Enum = enum
		}
	}

	if p.Type == TypeString && len(p.Enum) == 0 {
		p.Pattern = inferStringPattern(shape)
	}

	return p
}

// classify runs the type-precedence chain: every non-empty sample must pass a
// validator before its type is assigned, and the first full match wins. The
// order is load-bearing (an all-digit string column must hit the numeric
// string pattern, not the number type, only when an earlier validator fails).
func classify(values []string) Type {
	chain := []struct {
		typ   Type
		valid func(string) bool
	}{
		{TypeBoolean, isBoolean},
		{TypeUUID, isUUID},
		{TypeTimestamp, isTimestamp},
		{TypeDate, isDate},
		{TypeExpDate, isExpDate},
		{TypeNumber, isNumber},
		{TypeJSON, isJSON},
	}

	for _, step := range chain {
		if allMatch(values, step.valid) {
			return step.typ
		}
	}
	return TypeString
}

func allMatch(values []string, valid func(string) bool) bool {
	for _, v := range values {
		if !valid(v) {
			return false
		}
	}
	return true
}

func isBoolean(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false":
		return true
	}
	return false
}

func isUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return u.Version() >= 1 && u.Version() <= 5 && u.Variant() == uuid.RFC4122
}

func parseTimestamp(s string) (time.Time, bool) {
	if t, err := time.ParseInLocation(TimestampLayout, s, time.UTC); err == nil {
		return t, true
	}
	if strings.Contains(s, ".") {
		if t, err := time.ParseInLocation(TimestampFracLayout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isTimestamp(s string) bool {
	_, ok := parseTimestamp(s)
	return ok
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	return t, err == nil
}

func isDate(s string) bool {
	_, ok := parseDate(s)
	return ok
}

func isExpDate(s string) bool {
	return expDateRegex.MatchString(s)
}

func isNumber(s string) bool {
	return numberRegex.MatchString(s)
}

func isJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return false
	}
	return json.Valid([]byte(trimmed))
}

func numberStats(values []string) (scale int, min, max float64) {
	for i, v := range values {
		if dot := strings.IndexByte(v, '.'); dot >= 0 {
			if frac := len(v) - dot - 1; frac > scale {
				scale = frac
			}
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		if i == 0 {
			min, max = f, f
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return scale, min, max
}

func dateStats(values []string, parse func(string) (time.Time, bool)) (min, max time.Time) {
	for _, v := range values {
		t, ok := parse(v)
		if !ok {
			continue
		}
		if min.IsZero() || t.Before(min) {
			min = t
		}
		if max.IsZero() || t.After(max) {
			max = t
		}
	}
	return min, max
}

// shouldUseEnum gates enum candidacy on the column name: it must carry one of
// the curated hints and must not look like a free-text name, an id, or a
// secret.
func shouldUseEnum(name string) bool {
	lower := strings.ToLower(name)

	hinted := false
	for _, hint := range enumHints {
		if strings.Contains(lower, hint) {
			hinted = true
			break
		}
	}
	if !hinted {
		return false
	}

	if strings.Contains(lower, "name") {
		return false
	}
	if strings.HasSuffix(lower, "id") || strings.HasSuffix(lower, "uuid") {
		return false
	}
	if strings.Contains(lower, "token") || strings.Contains(lower, "pass") {
		return false
	}
	return true
}

// distinctValues returns the unique sample values in first-seen order.
func distinctValues(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
