package engine

import (
	"testing"

	"veristat/internal/testkit"
)

func TestAPAReconstruction(t *testing.T) {
	tests := []struct {
		name string
		apa  string
		want string
	}{
		{"t-test", APAReconstruction(testkit.TTest(30, 1.96, 0.059), Correction{}), "t(30) = 1.96"},
		{"f-test", APAReconstruction(testkit.FTest(2, 40, 3.21, nil, 0.05), Correction{}), "f(2, 40) = 3.21"},
		{"chi-square", APAReconstruction(testkit.ChiSquare(1, 3.84, 0.05), Correction{}), "chi2(1) = 3.84"},
		{"z-test has no dfs", APAReconstruction(testkit.ZTest(1.96, 0.05), Correction{}), "z = 1.96"},
		{"corrected f-test", APAReconstruction(testkit.FTest(2, 40, 4.00, eps(0.79), 0.03),
			Correction{DF1: 1.58, DF2: 31.6, Applied: true}), "f(1.58, 31.6) = 4.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.apa != tt.want {
				t.Errorf("APA = %q, want %q", tt.apa, tt.want)
			}
		})
	}
}

func TestFormatAPAP(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0.059, "p = .059"},
		{0.0594, "p = .059"},
		{0.0005, "p < .001"},
		{0.9999, "p > .999"},
		{0.5, "p = .500"},
	}

	for _, tt := range tests {
		if got := FormatAPAP(tt.p); got != tt.want {
			t.Errorf("FormatAPAP(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}
