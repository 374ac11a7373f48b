package engine

import (
	"math"
	"testing"

	"veristat/adapters/stats/dist"
	"veristat/domain/record"
	"veristat/internal/testkit"
)

func TestPRange_WorkedExample(t *testing.T) {
	// t(30) = 1.96 reported at two decimals: the exact statistic lies in
	// (1.955, 1.965), which maps to the p interval (0.05873, 0.05996).
	calc := NewCalculator()
	rec := testkit.TTest(30, 1.96, 0.059)

	pr, corr, err := calc.PRange(rec, record.TailTwo)
	if err != nil {
		t.Fatalf("PRange() error = %v", err)
	}
	if corr.Applied {
		t.Error("no correction expected for a t-test")
	}
	if math.Abs(pr.Lower-0.05873) > 1e-4 {
		t.Errorf("Lower = %.5f, want ~0.05873", pr.Lower)
	}
	if math.Abs(pr.Upper-0.05996) > 1e-4 {
		t.Errorf("Upper = %.5f, want ~0.05996", pr.Upper)
	}
}

func TestPRange_MonotonicInversion(t *testing.T) {
	// The survival transform decreases in |statistic|, so the lower
	// statistic bound must map to the UPPER p bound.
	calc := NewCalculator()
	d := dist.NewDistributions()
	rec := testkit.TTest(30, 1.96, 0.059)

	pr, _, err := calc.PRange(rec, record.TailTwo)
	if err != nil {
		t.Fatalf("PRange() error = %v", err)
	}

	iv := RoundingBounds(1.96, 2)
	pAtLowerStat := math.Min(2*d.StudentTSurvival(math.Abs(iv.Lower), 30), 1)
	if math.Abs(pr.Upper-pAtLowerStat) > 1e-12 {
		t.Errorf("Upper = %v, want p at lower statistic bound %v", pr.Upper, pAtLowerStat)
	}
	if pr.Lower > pr.Upper {
		t.Errorf("inverted range (%v, %v)", pr.Lower, pr.Upper)
	}
}

func TestPRange_OneTailedHalves(t *testing.T) {
	calc := NewCalculator()
	rec := testkit.TTest(30, 1.96, 0.059)

	two, _, err := calc.PRange(rec, record.TailTwo)
	if err != nil {
		t.Fatalf("PRange(two) error = %v", err)
	}
	one, _, err := calc.PRange(rec, record.TailOne)
	if err != nil {
		t.Fatalf("PRange(one) error = %v", err)
	}

	if math.Abs(two.Lower-2*one.Lower) > 1e-12 || math.Abs(two.Upper-2*one.Upper) > 1e-12 {
		t.Errorf("two-tailed range (%v, %v) should double one-tailed (%v, %v)",
			two.Lower, two.Upper, one.Lower, one.Upper)
	}
}

func TestPRange_TailFlagIgnoredForFAndChiSquare(t *testing.T) {
	calc := NewCalculator()

	for _, rec := range []record.TestRecord{
		testkit.FTest(2, 40, 3.21, nil, 0.05),
		testkit.ChiSquare(1, 3.84, 0.05),
	} {
		two, _, err := calc.PRange(rec, record.TailTwo)
		if err != nil {
			t.Fatalf("PRange(two) error = %v", err)
		}
		one, _, err := calc.PRange(rec, record.TailOne)
		if err != nil {
			t.Fatalf("PRange(one) error = %v", err)
		}
		if two != one {
			t.Errorf("%s: tail flag changed the range: %v vs %v", rec.TestType, two, one)
		}
	}
}

func TestPRange_CorrelationMatchesTConversion(t *testing.T) {
	calc := NewCalculator()
	d := dist.NewDistributions()
	rec := testkit.Correlation(28, 0.45, 0.012)

	pr, _, err := calc.PRange(rec, record.TailTwo)
	if err != nil {
		t.Fatalf("PRange() error = %v", err)
	}

	iv := CorrelationBounds(0.45, 2)
	tLow := d.CorrelationT(iv.Lower, 28)
	pUpper := math.Min(2*d.StudentTSurvival(math.Abs(tLow), 28), 1)
	if math.Abs(pr.Upper-pUpper) > 1e-12 {
		t.Errorf("Upper = %v, want %v via t conversion", pr.Upper, pUpper)
	}
}

func TestPRange_CorrelationAtDomainEdge(t *testing.T) {
	// r = 1.00 clips to the correlation domain; the range must stay
	// finite and ordered, with the upper statistic bound mapping to p=0's
	// neighborhood rather than NaN.
	calc := NewCalculator()
	rec := testkit.Correlation(28, 1.00, 0.001)

	pr, _, err := calc.PRange(rec, record.TailTwo)
	if err != nil {
		t.Fatalf("PRange() error = %v", err)
	}
	if math.IsNaN(pr.Lower) || math.IsNaN(pr.Upper) {
		t.Fatalf("range contains NaN: (%v, %v)", pr.Lower, pr.Upper)
	}
	if pr.Lower > pr.Upper {
		t.Errorf("inverted range (%v, %v)", pr.Lower, pr.Upper)
	}
}

func TestPRange_HuynhFeldtCorrected(t *testing.T) {
	calc := NewCalculator()
	d := dist.NewDistributions()
	rec := testkit.FTest(2, 40, 4.00, eps(0.79), 0.03)

	pr, corr, err := calc.PRange(rec, record.TailTwo)
	if err != nil {
		t.Fatalf("PRange() error = %v", err)
	}
	if !corr.Applied {
		t.Fatal("expected the Huynh-Feldt correction to apply")
	}

	iv := RoundingBounds(4.00, 2)
	want := d.FSurvival(iv.Lower, 1.58, 31.6)
	if math.Abs(pr.Upper-want) > 1e-12 {
		t.Errorf("Upper = %v, want %v under corrected dfs", pr.Upper, want)
	}
}

func TestPRange_ZeroStatisticStaysInDomain(t *testing.T) {
	// A statistic displayed as 0.00 has a rounding interval reaching below
	// zero. F and chi-square are only defined on [0, inf), so the interval
	// must be floored at zero instead of handing a negative value to the
	// survival function (gonum's F panics on it).
	calc := NewCalculator()

	for _, rec := range []record.TestRecord{
		testkit.FTest(1, 30, 0.00, nil, 0.9),
		testkit.ChiSquare(1, 0.00, 0.9),
	} {
		pr, _, err := calc.PRange(rec, record.TailTwo)
		if err != nil {
			t.Fatalf("%s: PRange() error = %v", rec.TestType, err)
		}
		if pr.Upper != 1 {
			t.Errorf("%s: survival at statistic 0 should be 1, got upper %v", rec.TestType, pr.Upper)
		}
		if pr.Lower <= 0 || pr.Lower >= 1 {
			t.Errorf("%s: Lower = %v, want in (0, 1)", rec.TestType, pr.Lower)
		}
	}
}

func TestPointP(t *testing.T) {
	calc := NewCalculator()

	p, err := calc.PointP(testkit.TTest(30, 1.96, 0.059), record.TailTwo)
	if err != nil {
		t.Fatalf("PointP() error = %v", err)
	}
	if math.Abs(p-0.0594) > 5e-4 {
		t.Errorf("PointP t(30)=1.96 = %v, want ~0.0594", p)
	}

	p, err = calc.PointP(testkit.ZTest(1.96, 0.05), record.TailTwo)
	if err != nil {
		t.Fatalf("PointP() error = %v", err)
	}
	if math.Abs(p-0.05) > 1e-3 {
		t.Errorf("PointP z=1.96 = %v, want ~0.05", p)
	}
}
