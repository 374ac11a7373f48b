package engine

import (
	"veristat/domain/record"
	"veristat/domain/verdict"
)

// NoteGrossInconsistency and friends are the note texts attached to
// verdicts; the report table prints them verbatim.
const (
	NoteGrossInconsistency = "Gross inconsistency: reported p-value and recalculated p-value differ in significance."
	NoteRegularMismatch    = "Recalculated p-value does not match the reported p-value."
	NoteOneTailedSalvage   = "Consistent for one-tailed, inconsistent for two-tailed."
)

// Verifier composes the boundary resolver, distribution layer, and
// classifier into the single-record statcheck verification. It is pure and
// safe for concurrent use.
type Verifier struct {
	calc  *Calculator
	alpha float64
}

// NewVerifier creates a verifier with the given significance boundary;
// alpha <= 0 falls back to DefaultAlpha.
func NewVerifier(alpha float64) *Verifier {
	if alpha <= 0 {
		alpha = DefaultAlpha
	}
	return &Verifier{calc: NewCalculator(), alpha: alpha}
}

// Alpha returns the significance boundary in use
func (v *Verifier) Alpha() float64 {
	return v.alpha
}

// Verify recomputes the valid p-value range for an already-validated test
// record and classifies the reported p-value against it. The verdict's APA
// string reflects the recalculated statistic and degrees of freedom, never
// a copy of the input text.
func (v *Verifier) Verify(rec record.TestRecord) (verdict.Verdict, error) {
	tail := rec.EffectiveTail()

	pr, corr, err := v.calc.PRange(rec, tail)
	if err != nil {
		return verdict.Verdict{}, err
	}

	reported := *rec.ReportedP
	consistent := Compatible(pr, rec.Operator, reported, rec.ReportedPDecimals())

	var notes []string
	if corr.Applied {
		notes = append(notes, corr.Note)
	}

	kind := verdict.KindNone
	if !consistent {
		kind = ClassifyInconsistency(pr, rec.Operator, reported, v.alpha)
		if kind == verdict.KindGross {
			notes = append(notes, NoteGrossInconsistency)
		} else {
			notes = append(notes, NoteRegularMismatch)
		}

		// A two-tailed mismatch is sometimes a one-tailed report in
		// disguise; flag it so the reader can judge.
		if tail == record.TailTwo && oneTailedCandidate(rec.TestType) {
			if prOne, _, errOne := v.calc.PRange(rec, record.TailOne); errOne == nil {
				if Compatible(prOne, rec.Operator, reported, rec.ReportedPDecimals()) {
					notes = append(notes, NoteOneTailedSalvage)
				}
			}
		}
	}

	apa := APAReconstruction(rec, corr)
	if pointP, errP := v.calc.PointP(rec, tail); errP == nil {
		apa += ", " + FormatAPAP(pointP)
	}

	return verdict.Verdict{
		Consistent: consistent,
		Kind:       kind,
		APA:        apa,
		Range:      pr,
		Notes:      notes,
	}, nil
}

// oneTailedCandidate reports whether the family has a meaningful one-tailed
// variant. F and chi-square are inherently one-sided already.
func oneTailedCandidate(tt record.TestType) bool {
	return tt == record.TestT || tt == record.TestZ || tt == record.TestCorrelation
}
