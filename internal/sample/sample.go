// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sample generates random chart data for demos.
package sample

import (
	"math/rand/v2"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/ggchart/pie"
)

var printer = message.NewPrinter(language.English)

// PieSegments splits total into at most maxSegments random parts of at
// least minValue each, the last part taking the remainder. Labels are
// percentages of total. The dataset ID is the title.
func PieSegments(rng *rand.Rand, title string, maxSegments int, minValue, total float64) pie.Dataset {
	var segs []pie.Segment
	used := 0.0
	for len(segs) < maxSegments-1 && minValue < total-used-minValue {
		v := uniform(rng, minValue, total-used-minValue)
		segs = append(segs, pie.Segment{Value: v, Label: percent(v, total)})
		used += v
	}
	rest := total - used
	segs = append(segs, pie.Segment{Value: rest, Label: percent(rest, total)})
	return pie.Dataset{ID: title, Title: title, Segments: segs}
}

func percent(v, total float64) string {
	return printer.Sprintf("%.1f %%", v/total*100)
}

// MonthExpenses draws one expense per day of the month containing now
// (UTC). Each day spends between a fifth and one and a half times the daily
// average of total. When a draw would overspend, the series ends with
// whatever is left of total.
func MonthExpenses(rng *rand.Rand, now time.Time, total float64) []float64 {
	days := DaysInMonth(now)
	avg := total / float64(days)
	values := make([]float64, 0, days)
	remaining := total
	for range days {
		v := uniform(rng, avg/5, avg*1.5)
		if remaining-v < 0 {
			values = append(values, remaining)
			break
		}
		values = append(values, v)
		remaining -= v
	}
	return values
}

// DaysInMonth returns the number of days in the UTC month containing t.
func DaysInMonth(t time.Time) int {
	t = t.UTC()
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
