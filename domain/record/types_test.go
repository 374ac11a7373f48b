package record

import (
	"testing"
)

func TestDecimalPlaces(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"1.96", 2},
		{"3.6", 1},
		{"3.60", 2},
		{"0.059", 3},
		{"12", 0},
		{" 4.250 ", 3},
	}

	for _, tt := range tests {
		if got := DecimalPlaces(tt.text); got != tt.want {
			t.Errorf("DecimalPlaces(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestStatisticDecimals_MinimumTwo(t *testing.T) {
	tests := []struct {
		name string
		rec  TestRecord
		want int
	}{
		{"two decimals", TestRecord{TestValue: 1.96, TestValueText: "1.96"}, 2},
		{"one decimal treated as two", TestRecord{TestValue: 2.5, TestValueText: "2.5"}, 2},
		{"integer treated as two", TestRecord{TestValue: 3, TestValueText: "3"}, 2},
		{"three decimals kept", TestRecord{TestValue: 1.962, TestValueText: "1.962"}, 3},
		{"no text falls back to value", TestRecord{TestValue: 1.962}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.StatisticDecimals(); got != tt.want {
				t.Errorf("StatisticDecimals() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReportedPDecimals(t *testing.T) {
	p := 0.05
	rec := TestRecord{ReportedP: &p, ReportedPText: "0.050"}
	if got := rec.ReportedPDecimals(); got != 3 {
		t.Errorf("ReportedPDecimals() with text = %d, want 3", got)
	}

	rec.ReportedPText = ""
	if got := rec.ReportedPDecimals(); got != 2 {
		t.Errorf("ReportedPDecimals() without text = %d, want 2", got)
	}

	none := TestRecord{}
	if got := none.ReportedPDecimals(); got != 0 {
		t.Errorf("ReportedPDecimals() with nil p = %d, want 0", got)
	}
}

func TestEffectiveTail(t *testing.T) {
	if (TestRecord{Tail: TailOne}).EffectiveTail() != TailOne {
		t.Error("explicit one-tailed flag should survive")
	}
	if (TestRecord{}).EffectiveTail() != TailTwo {
		t.Error("missing tail flag should default to two-tailed")
	}
}
