package engine

import (
	"veristat/domain/record"
	"veristat/domain/verdict"
)

// DefaultAlpha is the significance boundary used to separate regular from
// gross inconsistencies.
const DefaultAlpha = 0.05

// Compatible reports whether the reported p-value, read through its
// operator, can coexist with the recomputed range. An "=" report is
// widened by the author's own rounding before the overlap test.
func Compatible(pr verdict.PRange, op record.Operator, reported float64, reportedDecimals int) bool {
	switch op {
	case record.OpLessThan:
		return pr.Lower < reported
	case record.OpGreaterThan:
		return pr.Upper > reported
	case record.OpEquals:
		riv := RoundingBounds(reported, reportedDecimals)
		return riv.Upper >= pr.Lower && riv.Lower <= pr.Upper
	}
	return false
}

// ReportedSignificant determines which side of alpha the author's report
// claims. Returns nil when the operator leaves the side indeterminate.
func ReportedSignificant(op record.Operator, reported, alpha float64) *bool {
	var sig bool
	switch op {
	case record.OpEquals, record.OpLessThan:
		sig = reported <= alpha
	case record.OpGreaterThan:
		sig = reported < alpha
	default:
		return nil
	}
	return &sig
}

// RecomputedSignificant determines which side of alpha the recomputed
// range falls on. Returns nil when the range straddles alpha.
func RecomputedSignificant(pr verdict.PRange, alpha float64) *bool {
	var sig bool
	switch {
	case pr.Upper < alpha:
		sig = true
	case pr.Lower > alpha:
		sig = false
	default:
		return nil
	}
	return &sig
}

// ClassifyInconsistency decides whether a mismatch is gross (the
// significance conclusion at alpha flips) or regular. Call only for
// records already found incompatible.
func ClassifyInconsistency(pr verdict.PRange, op record.Operator, reported, alpha float64) verdict.InconsistencyKind {
	repSig := ReportedSignificant(op, reported, alpha)
	recSig := RecomputedSignificant(pr, alpha)
	if repSig != nil && recSig != nil && *repSig != *recSig {
		return verdict.KindGross
	}
	return verdict.KindRegular
}
