package verdict

import (
	"fmt"
)

// InconsistencyKind classifies how a reported p-value disagrees with the
// recomputed range
type InconsistencyKind string

const (
	KindNone    InconsistencyKind = "none"
	KindRegular InconsistencyKind = "regular"
	KindGross   InconsistencyKind = "gross"
)

// PRange is the interval of p-values consistent with the rounded statistic
// as reported. Lower <= Upper always holds; both lie in (0, 1).
type PRange struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// String renders the range the way the report table prints it
func (pr PRange) String() string {
	return fmt.Sprintf("%.5f to %.5f", pr.Lower, pr.Upper)
}

// Contains reports whether p falls inside the closed interval
func (pr PRange) Contains(p float64) bool {
	return p >= pr.Lower && p <= pr.Upper
}

// Width returns the interval width
func (pr PRange) Width() float64 {
	return pr.Upper - pr.Lower
}

// Verdict is the terminal artifact of a single statcheck verification.
// Never mutated after creation.
type Verdict struct {
	Consistent bool              `json:"consistent"`
	Kind       InconsistencyKind `json:"inconsistency_kind"`
	APA        string            `json:"apa_string"`
	Range      PRange            `json:"range"`
	Notes      []string          `json:"notes,omitempty"`
}

// GrimVerdict is the terminal artifact of a GRIM feasibility check
type GrimVerdict struct {
	Possible bool `json:"possible"`
	// NearestLow and NearestHigh are the achievable means bracketing the
	// reported one, to aid diagnosis when the report is infeasible.
	NearestLow  float64 `json:"nearest_low"`
	NearestHigh float64 `json:"nearest_high"`
	Decimals    int     `json:"decimals"`
	// Applicable is false when sample_size > 10^decimals; every mean is
	// then reconstructible and the check carries no information.
	Applicable bool `json:"applicable"`
}

// Status tags a batch outcome as verified or excluded at validation
type Status string

const (
	StatusVerified     Status = "verified"
	StatusUnverifiable Status = "unverifiable"
)

// Outcome is the per-record result of a batch run. Exactly one of Verdict
// and Grim is set for verified outcomes; unverifiable outcomes carry the
// reason instead. Index preserves the extraction order.
type Outcome struct {
	Index   int          `json:"index"`
	Status  Status       `json:"status"`
	Reason  string       `json:"reason,omitempty"`
	Verdict *Verdict     `json:"verdict,omitempty"`
	Grim    *GrimVerdict `json:"grim,omitempty"`
	// APA is filled even for some unverifiable records (e.g. "ns" reports)
	// so the report table always has something to print.
	APA string `json:"apa_string,omitempty"`
}
