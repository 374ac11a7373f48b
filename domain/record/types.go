package record

import (
	"strconv"
	"strings"
)

// TestType identifies the statistical test family a reported result belongs to.
type TestType string

const (
	TestCorrelation TestType = "r"
	TestT           TestType = "t"
	TestF           TestType = "f"
	TestChiSquare   TestType = "chi2"
	TestZ           TestType = "z"
)

// IsValid reports whether the test type is one of the recognized codes
func (tt TestType) IsValid() bool {
	switch tt {
	case TestCorrelation, TestT, TestF, TestChiSquare, TestZ:
		return true
	}
	return false
}

// Operator is the comparison the author used when reporting the p-value
type Operator string

const (
	OpEquals      Operator = "="
	OpLessThan    Operator = "<"
	OpGreaterThan Operator = ">"
)

// IsValid reports whether the operator is one of the recognized codes
func (op Operator) IsValid() bool {
	switch op {
	case OpEquals, OpLessThan, OpGreaterThan:
		return true
	}
	return false
}

// Tail marks a test as one- or two-tailed
type Tail string

const (
	TailOne Tail = "one"
	TailTwo Tail = "two"
)

// IsValid reports whether the tail flag is recognized (empty defaults to two)
func (t Tail) IsValid() bool {
	return t == TailOne || t == TailTwo || t == ""
}

// TestRecord is a single reported statistical test as emitted by the
// external extraction step. It is a value object: validated once, never
// mutated afterwards.
//
// ReportedP is nil when the author reported a non-numeric p-value such as
// "ns"; such records are surfaced as unverifiable rather than rejected as
// malformed.
type TestRecord struct {
	TestType      TestType `json:"test_type"`
	DF1           *float64 `json:"df1"`
	DF2           *float64 `json:"df2"`
	TestValue     float64  `json:"test_value"`
	TestValueText string   `json:"test_value_text,omitempty"`
	Operator      Operator `json:"operator"`
	ReportedP     *float64 `json:"reported_p_value"`
	ReportedPText string   `json:"reported_p_value_text,omitempty"`
	Epsilon       *float64 `json:"epsilon"`
	Tail          Tail     `json:"tail"`
}

// ReportedPDecimals returns the number of decimal places the p-value was
// reported with, used to widen an "=" comparison by the author's own
// rounding. Zero when no p-value was reported.
func (r TestRecord) ReportedPDecimals() int {
	if r.ReportedP == nil {
		return 0
	}
	text := r.ReportedPText
	if text == "" {
		text = strconv.FormatFloat(*r.ReportedP, 'f', -1, 64)
	}
	return DecimalPlaces(text)
}

// EffectiveTail resolves the tail flag, defaulting to two-tailed
func (r TestRecord) EffectiveTail() Tail {
	if r.Tail == TailOne {
		return TailOne
	}
	return TailTwo
}

// StatisticDecimals returns the number of decimal places the statistic was
// reported with. A statistic reported with fewer than two decimals is
// treated as having two, so the rounding interval never exceeds +/-0.005.
func (r TestRecord) StatisticDecimals() int {
	text := r.TestValueText
	if text == "" {
		text = strconv.FormatFloat(r.TestValue, 'f', -1, 64)
	}
	d := DecimalPlaces(text)
	if d < 2 {
		return 2
	}
	return d
}

// MeanRecord is a reported sample mean destined for the GRIM feasibility
// check.
type MeanRecord struct {
	ReportedMean      float64 `json:"reported_mean"`
	ReportedMeanText  string  `json:"reported_mean_text,omitempty"`
	SampleSize        int     `json:"sample_size"`
	DiscreteReasoning string  `json:"discrete_reasoning,omitempty"`
}

// Decimals returns the number of decimal places the mean was reported with
func (m MeanRecord) Decimals() int {
	text := m.ReportedMeanText
	if text == "" {
		text = strconv.FormatFloat(m.ReportedMean, 'f', -1, 64)
	}
	return DecimalPlaces(text)
}

// DecimalPlaces counts the decimal places in a numeric string, including
// trailing zeros ("3.60" has two).
func DecimalPlaces(text string) int {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '.'); i >= 0 {
		return len(text) - i - 1
	}
	return 0
}
