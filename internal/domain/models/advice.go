package models

import "time"

// Advice source labels. Every advisory response carries one so callers
// can tell a live completion from locally generated fallback content.
const (
	SourceLLM  = "llm"
	SourceMock = "mock"
)

// Advice is the result of an advisory request (farmer advice or buyer
// timing), regardless of whether the upstream completion API or the mock
// fallback produced it.
type Advice struct {
	Crop        string    `json:"crop" example:"wheat"`
	Text        string    `json:"text"`
	Source      string    `json:"source" example:"llm"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Trend bundles a synthesized price history for one crop with a short
// commentary line.
//
// Fields:
//   - Label: the crop the series was generated for.
//   - History: Periods+1 daily samples ending at the generation day.
//   - Commentary: one-paragraph trend read, from the completion API or
//     the canned fallback.
//   - Source: where Commentary came from (SourceLLM or SourceMock); the
//     history itself is always synthesized.
type Trend struct {
	Label      string             `json:"label" example:"wheat"`
	History    []TimeSeriesSample `json:"history"`
	Commentary string             `json:"commentary"`
	Source     string             `json:"source" example:"mock"`
}
