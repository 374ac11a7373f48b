package testkit

import (
	"veristat/domain/record"
)

// Ptr returns a pointer to v, for the optional numeric fields on records
func Ptr(v float64) *float64 {
	return &v
}

// TTest builds a two-tailed t-test record reported with "="
func TTest(df, value, reportedP float64) record.TestRecord {
	return record.TestRecord{
		TestType:  record.TestT,
		DF1:       Ptr(df),
		TestValue: value,
		Operator:  record.OpEquals,
		ReportedP: Ptr(reportedP),
		Tail:      record.TailTwo,
	}
}

// ZTest builds a two-tailed z-test record reported with "="
func ZTest(value, reportedP float64) record.TestRecord {
	return record.TestRecord{
		TestType:  record.TestZ,
		TestValue: value,
		Operator:  record.OpEquals,
		ReportedP: Ptr(reportedP),
		Tail:      record.TailTwo,
	}
}

// FTest builds an F-test record reported with "="; epsilon may be nil
func FTest(df1, df2, value float64, epsilon *float64, reportedP float64) record.TestRecord {
	return record.TestRecord{
		TestType:  record.TestF,
		DF1:       Ptr(df1),
		DF2:       Ptr(df2),
		TestValue: value,
		Operator:  record.OpEquals,
		ReportedP: Ptr(reportedP),
		Epsilon:   epsilon,
		Tail:      record.TailTwo,
	}
}

// ChiSquare builds a chi-square record reported with "="
func ChiSquare(df, value, reportedP float64) record.TestRecord {
	return record.TestRecord{
		TestType:  record.TestChiSquare,
		DF1:       Ptr(df),
		TestValue: value,
		Operator:  record.OpEquals,
		ReportedP: Ptr(reportedP),
		Tail:      record.TailTwo,
	}
}

// Correlation builds a two-tailed correlation record reported with "="
func Correlation(df, value, reportedP float64) record.TestRecord {
	return record.TestRecord{
		TestType:  record.TestCorrelation,
		DF1:       Ptr(df),
		TestValue: value,
		Operator:  record.OpEquals,
		ReportedP: Ptr(reportedP),
		Tail:      record.TailTwo,
	}
}

// Mean builds a GRIM mean record; text carries the displayed precision
func Mean(text string, value float64, n int) record.MeanRecord {
	return record.MeanRecord{
		ReportedMean:     value,
		ReportedMeanText: text,
		SampleSize:       n,
	}
}
