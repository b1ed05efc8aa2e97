package profile

import "regexp"

var (
	digitsRegex    = regexp.MustCompile(`^\d+$`)
	maskedPANRegex = regexp.MustCompile(`^\d{6}\*{6}\d{4}$`)
	prefixDigits   = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)
	prefixSep      = regexp.MustCompile(`^([A-Za-z]+)([_-])([A-Za-z0-9]+)$`)
	hex32Regex     = regexp.MustCompile(`^[0-9a-fA-F]{32}$`)
	alnumRegex     = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// inferStringPattern runs the shape-precedence chain over the sampled values.
// A shape is accepted only when every sample matches it; the first accepted
// shape wins. Returns nil when no shape is unanimous.
func inferStringPattern(values []string) *StringPattern {
	chain := []func([]string) *StringPattern{
		matchNumeric,
		matchMaskedPAN,
		matchPrefixDigits,
		matchPrefixSeparator,
		matchHex,
		matchAlphanumeric,
	}
	for _, match := range chain {
		if p := match(values); p != nil {
			return p
		}
	}
	return nil
}

func matchNumeric(values []string) *StringPattern {
	length := 0
	for _, v := range values {
		if !digitsRegex.MatchString(v) {
			return nil
		}
		if len(v) > length {
			length = len(v)
		}
	}
	return &StringPattern{Kind: PatternNumeric, Length: length}
}

func matchMaskedPAN(values []string) *StringPattern {
	for _, v := range values {
		if !maskedPANRegex.MatchString(v) {
			return nil
		}
	}
	return &StringPattern{Kind: PatternMaskedPAN}
}

func matchPrefixDigits(values []string) *StringPattern {
	var prefix string
	digits := 0
	for i, v := range values {
		m := prefixDigits.FindStringSubmatch(v)
		if m == nil {
			return nil
		}
		if i == 0 {
			prefix = m[1]
			digits = len(m[2])
			continue
		}
		if m[1] != prefix {
			return nil
		}
	}
	return &StringPattern{Kind: PatternPrefixDigits, Prefix: prefix, DigitCount: digits}
}

func matchPrefixSeparator(values []string) *StringPattern {
	var prefix, sep string
	suffixLen := 0
	for i, v := range values {
		m := prefixSep.FindStringSubmatch(v)
		if m == nil {
			return nil
		}
		if i == 0 {
			prefix, sep = m[1], m[2]
			suffixLen = len(m[3])
			continue
		}
		if m[1] != prefix || m[2] != sep {
			return nil
		}
	}
	return &StringPattern{Kind: PatternPrefixSeparator, Prefix: prefix, Separator: sep, SuffixLength: suffixLen}
}

func matchHex(values []string) *StringPattern {
	for _, v := range values {
		if !hex32Regex.MatchString(v) {
			return nil
		}
	}
	return &StringPattern{Kind: PatternHex, Length: 32}
}

func matchAlphanumeric(values []string) *StringPattern {
	min, max := len(values[0]), 0
	for _, v := range values {
		if !alnumRegex.MatchString(v) {
			return nil
		}
		if len(v) < min {
			min = len(v)
		}
		if len(v) > max {
			max = len(v)
		}
	}
	return &StringPattern{Kind: PatternAlphanumeric, MinLength: min, MaxLength: max}
}
