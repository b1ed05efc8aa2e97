package profile

import "time"

// Type is the inferred semantic type of a column.
type Type string

const (
	TypeUUID      Type = "uuid"
	TypeBoolean   Type = "boolean"
	TypeNumber    Type = "number"
	TypeTimestamp Type = "timestamp"
	TypeDate      Type = "date"
	TypeExpDate   Type = "exp_date"
	TypeJSON      Type = "json"
	TypeString    Type = "string"
)

// Timestamp layouts accepted by inference and emitted by generation.
const (
	TimestampLayout     = "2006-01-02 15:04:05"
	TimestampFracLayout = "2006-01-02 15:04:05.999999"
	DateLayout          = "2006-01-02"
)

// PatternKind identifies one of the closed set of string shapes.
type PatternKind string

const (
	PatternNumeric         PatternKind = "numeric"
	PatternMaskedPAN       PatternKind = "masked_pan"
	PatternPrefixDigits    PatternKind = "prefix_digits"
	PatternPrefixSeparator PatternKind = "prefix_separator"
	PatternHex             PatternKind = "hex"
	PatternAlphanumeric    PatternKind = "alphanumeric"
)

// StringPattern describes a shape that every sampled value of a column
// matched. Only the fields relevant to its Kind are set.
type StringPattern struct {
	Kind         PatternKind
	Prefix       string
	Separator    string
	Length       int // numeric, hex
	DigitCount   int // prefix_digits
	SuffixLength int // prefix_separator
	MinLength    int // alphanumeric
	MaxLength    int // alphanumeric
}

// Profile is the inferred description of one column. It is built once by
// Infer and never mutated; override merging returns a copy.
type Profile struct {
	Name      string
	Type      Type
	NullRate  float64
	MinLength int
	MaxLength int

	// Enum, when non-empty, is a closed candidate set for the column.
	Enum []string

	// JSONSample is a structural template for json columns.
	JSONSample string

	NumberScale    int
	NumberMin      float64
	NumberMax      float64
	HasNumberRange bool

	DateMin      time.Time
	DateMax      time.Time
	HasDateRange bool

	// Pattern is set only for string columns without an enum whose samples
	// unanimously matched one shape.
	Pattern *StringPattern
}
