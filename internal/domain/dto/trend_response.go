package dto

import (
	"fmt"

	"agropulse/internal/domain/models"
)

// HistoryPoint is one element of a trend response's history array.
// Dates are serialized as YYYY-MM-DD.
type HistoryPoint struct {
	Date   string  `json:"date" example:"2026-08-01"`
	Price  float64 `json:"price" example:"182.41"`
	Volume int64   `json:"volume" example:"3120"`
}

// TrendResponse is the envelope returned by GET /api/market/trends/:crop.
type TrendResponse struct {
	Label      string         `json:"label" example:"wheat"`
	History    []HistoryPoint `json:"history"`
	Period     string         `json:"period" example:"30 days"`
	Commentary string         `json:"commentary"`
	Source     string         `json:"source" example:"mock"`
}

// OverviewResponse is the envelope returned by GET /api/market/overview.
type OverviewResponse struct {
	Trends []TrendResponse `json:"trends"`
}

// NewTrendResponse converts a domain Trend into its wire representation.
//
// The period string counts walk steps, not samples: a 31-sample series
// covering 30 days reads "30 days".
func NewTrendResponse(t *models.Trend) TrendResponse {
	history := make([]HistoryPoint, 0, len(t.History))
	for _, s := range t.History {
		history = append(history, HistoryPoint{
			Date:   s.Date.Format("2006-01-02"),
			Price:  s.Value,
			Volume: s.Volume,
		})
	}
	return TrendResponse{
		Label:      t.Label,
		History:    history,
		Period:     fmt.Sprintf("%d days", len(t.History)-1),
		Commentary: t.Commentary,
		Source:     t.Source,
	}
}
