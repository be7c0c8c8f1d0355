package models

import "time"

// TimeSeriesSample is one point of a synthesized price history.
//
// Fields:
//   - Date: calendar day of the sample (UTC, date-only). Within a series
//     dates are contiguous and strictly ascending.
//   - Value: price at that day, clamped to the requested bounds and
//     rounded to 2 decimal places.
//   - Volume: traded volume, sampled independently of Value.
type TimeSeriesSample struct {
	Date   time.Time `json:"date"`
	Value  float64   `json:"value"`
	Volume int64     `json:"volume"`
}

// SeriesRequest parameterizes one bounded random walk generation.
//
// Fields:
//   - Periods: number of walk steps; the series has Periods+1 samples
//     (the anchor day plus one per step).
//   - Seed: optional starting value. When nil the generator draws the
//     start uniformly from its configured starting range.
//   - MinValue, MaxValue: hard clamp applied after every step.
//   - StepMagnitude: maximum absolute per-step delta; each step moves the
//     walk by a uniform draw in [-StepMagnitude/2, +StepMagnitude/2).
type SeriesRequest struct {
	Periods       int
	Seed          *float64
	MinValue      float64
	MaxValue      float64
	StepMagnitude float64
}
