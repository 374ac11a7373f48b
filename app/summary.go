package app

import (
	"github.com/montanaflynn/stats"

	"veristat/domain/verdict"
)

// BatchSummary aggregates a batch of outcomes for the presentation layer
type BatchSummary struct {
	Total            int     `json:"total"`
	Verified         int     `json:"verified"`
	Unverifiable     int     `json:"unverifiable"`
	Consistent       int     `json:"consistent"`
	Regular          int     `json:"regular_inconsistencies"`
	Gross            int     `json:"gross_inconsistencies"`
	GrimPossible     int     `json:"grim_possible"`
	GrimImpossible   int     `json:"grim_impossible"`
	MedianRangeWidth float64 `json:"median_range_width"`
}

// Summarize folds a batch of outcomes into headline counts plus the median
// width of the recomputed p-value ranges (a narrow median means precisely
// reported statistics).
func Summarize(outcomes []verdict.Outcome) BatchSummary {
	s := BatchSummary{Total: len(outcomes)}
	var widths []float64

	for _, out := range outcomes {
		if out.Status != verdict.StatusVerified {
			s.Unverifiable++
			continue
		}
		s.Verified++

		if out.Verdict != nil {
			widths = append(widths, out.Verdict.Range.Width())
			switch out.Verdict.Kind {
			case verdict.KindNone:
				s.Consistent++
			case verdict.KindRegular:
				s.Regular++
			case verdict.KindGross:
				s.Gross++
			}
		}
		if out.Grim != nil {
			if out.Grim.Possible {
				s.GrimPossible++
			} else {
				s.GrimImpossible++
			}
		}
	}

	if len(widths) > 0 {
		if median, err := stats.Median(widths); err == nil {
			s.MedianRangeWidth = median
		}
	}
	return s
}
