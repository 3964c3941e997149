// Copyright (c) 2026 Gutensearch. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BuildHistogram bins log10 book lengths into bins equal-width buckets shared
// by every group. Non-positive lengths are ignored.
func BuildHistogram(lengths []BookLength, bins int) Histogram {
	if bins < 1 {
		bins = 1
	}

	byGroup := make(map[string][]float64, len(Groups()))
	var all []float64

	for _, book := range lengths {
		if book.Length <= 0 {
			continue
		}

		group := book.Group
		if !slices.Contains(Groups(), group) {
			group = GroupOther
		}

		value := math.Log10(float64(book.Length))
		byGroup[group] = append(byGroup[group], value)
		all = append(all, value)
	}

	histogram := Histogram{Scale: "log10", Edges: []float64{}, Series: []HistogramGroup{}}
	if len(all) == 0 {
		for _, group := range Groups() {
			histogram.Series = append(histogram.Series, HistogramGroup{Group: group, Counts: []float64{}})
		}
		return histogram
	}

	// The upper edge is exclusive, so nudge it past the longest book.
	lo, hi := floats.Min(all), math.Nextafter(floats.Max(all), math.Inf(1))
	if hi-lo < 1e-9 {
		hi = lo + 1
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	histogram.Edges = dividers

	for _, group := range Groups() {
		values := byGroup[group]
		slices.Sort(values)

		histogram.Series = append(histogram.Series, HistogramGroup{
			Group:  group,
			Books:  len(values),
			Counts: stat.Histogram(nil, dividers, values, nil),
		})
	}

	return histogram
}
