package service

import (
	"fmt"

	"agropulse/internal/catalog"
	"agropulse/internal/domain/models"
)

// Canned fallback content. Kept deliberately generic: it must read as
// reasonable guidance for any crop the caller names.

func mockFarmerAdvice(q AdviceQuery) string {
	where := q.Location
	if where == "" {
		where = "your region"
	}
	return fmt.Sprintf(
		"For %s in %s, prioritize soil moisture management this week: irrigate early in the day and mulch to reduce evaporation. "+
			"Scout fields every two to three days for early pest and fungal pressure, and treat only affected patches. "+
			"Split your fertilizer application and keep certified seed for the next sowing window.",
		q.Crop, where)
}

func mockBuyerTiming(q TimingQuery) string {
	return fmt.Sprintf(
		"Spot prices for %s are trading inside their seasonal band with no strong directional driver. "+
			"Consider covering roughly half of your requirement now and staggering the remainder over the next two to three weeks, watching arrivals and weather updates.",
		q.Crop)
}

// mockCommentary derives a one-line trend read from the generated series
// itself, so the fallback stays consistent with the numbers the caller
// sees.
func mockCommentary(crop catalog.Crop, history []models.TimeSeriesSample) string {
	if len(history) < 2 {
		return fmt.Sprintf("Not enough history for %s to read a trend; prices are holding near current levels.", crop.Name)
	}
	first := history[0].Value
	last := history[len(history)-1].Value
	if first == 0 {
		return fmt.Sprintf("Prices for %s are holding near current levels.", crop.Name)
	}
	change := (last - first) / first * 100

	direction := "held steady"
	switch {
	case change > 2:
		direction = "trended up"
	case change < -2:
		direction = "trended down"
	}
	return fmt.Sprintf("Prices for %s %s over the period (%+.1f%%), closing at %.2f per %s. Expect continued movement within the recent range.",
		crop.Name, direction, change, last, crop.Unit)
}
