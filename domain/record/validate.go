package record

import (
	"errors"
	"fmt"
	"math"

	"veristat/domain/core"
)

// Reason texts surfaced to the caller when a record cannot be verified.
// These match the wording the presentation layer prints verbatim.
const (
	ReasonCorrelationNeedsDF = "Correlation test requires degrees of freedom (df1). None provided."
	ReasonFNeedsTwoDF        = "F-test requires two DF. Only one DF provided."
	ReasonPNeverZero         = "A p-value is never exactly 0."
	ReasonReportedNS         = "Reported as ns."
)

// Validate checks a candidate test record against the per-family field
// requirements. It returns nil for a verifiable record, or an error whose
// message is the reason surfaced to the caller. Validation never panics:
// malformed extractor output becomes a reason string, not a fault.
func (r TestRecord) Validate() error {
	if !r.TestType.IsValid() {
		return fmt.Errorf("%w: %q", core.ErrUnknownTestType, string(r.TestType))
	}
	if !r.Operator.IsValid() {
		return fmt.Errorf("%w: %q", core.ErrBadOperator, string(r.Operator))
	}
	if !r.Tail.IsValid() {
		return fmt.Errorf("%w: %q", core.ErrBadTail, string(r.Tail))
	}
	if math.IsNaN(r.TestValue) || math.IsInf(r.TestValue, 0) {
		return core.NewValidationError("test_value", "not a finite number")
	}

	switch r.TestType {
	case TestCorrelation:
		if r.DF1 == nil {
			return fmt.Errorf("%w: %s", core.ErrMissingDF, ReasonCorrelationNeedsDF)
		}
		if math.Abs(r.TestValue) > 1 {
			return core.NewValidationError("test_value", "correlation coefficient must lie in [-1, 1]")
		}
	case TestT, TestChiSquare:
		if r.DF1 == nil {
			return fmt.Errorf("%w: %s-test requires degrees of freedom (df1)", core.ErrMissingDF, r.TestType)
		}
		if r.TestType == TestChiSquare && r.TestValue < 0 {
			return core.NewValidationError("test_value", "chi-square statistic cannot be negative")
		}
	case TestF:
		if r.DF1 == nil || r.DF2 == nil {
			return fmt.Errorf("%w: %s", core.ErrMissingDF, ReasonFNeedsTwoDF)
		}
		if r.TestValue < 0 {
			return core.NewValidationError("test_value", "F statistic cannot be negative")
		}
	case TestZ:
		// z-tests carry no degrees of freedom
	}

	if r.DF1 != nil && *r.DF1 <= 0 {
		return fmt.Errorf("%w: df1 = %v", core.ErrNonPositiveDF, *r.DF1)
	}
	if r.DF2 != nil && *r.DF2 <= 0 {
		return fmt.Errorf("%w: df2 = %v", core.ErrNonPositiveDF, *r.DF2)
	}

	if r.ReportedP == nil {
		return ErrReportedNS
	}
	if *r.ReportedP == 0 {
		return fmt.Errorf("%w: %s", core.ErrPOutOfRange, ReasonPNeverZero)
	}
	if *r.ReportedP < 0 || *r.ReportedP >= 1 {
		return fmt.Errorf("%w: %v", core.ErrPOutOfRange, *r.ReportedP)
	}
	return nil
}

// ErrReportedNS tags records whose p-value was reported as "ns". They are
// not malformed, just unverifiable; callers distinguish via errors.Is.
var ErrReportedNS = errors.New(ReasonReportedNS)

// Validate checks a candidate mean record for the GRIM feasibility engine
func (m MeanRecord) Validate() error {
	if m.SampleSize <= 0 {
		return fmt.Errorf("%w: %d", core.ErrBadSampleSize, m.SampleSize)
	}
	if math.IsNaN(m.ReportedMean) || math.IsInf(m.ReportedMean, 0) {
		return core.NewValidationError("reported_mean", "not a finite number")
	}
	return nil
}
