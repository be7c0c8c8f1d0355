package service

import (
	"fmt"
	"strings"

	"agropulse/internal/catalog"
)

// System prompts sent with every completion request. Output-format rules
// live here so handlers can return the text verbatim.
const (
	farmerSystemPrompt = `You are an experienced agronomist advising smallholder farmers.
Give practical, season-aware guidance: sowing windows, irrigation, soil
preparation, pest pressure, and input planning. Be specific and concise.
Answer in plain text, at most three short paragraphs, no markdown.`

	timingSystemPrompt = `You are a commodity procurement advisor for bulk crop buyers.
Recommend whether to buy now or wait, with a rough time window and the
main price drivers to watch. Be decisive and concise.
Answer in plain text, at most two short paragraphs, no markdown.`

	trendSystemPrompt = `You are a market analyst summarizing agricultural price movements.
Given a crop and its recent daily prices, describe the trend direction,
volatility, and a one-line outlook. Answer in one short paragraph, plain
text, no markdown.`
)

// farmerPrompt builds the user prompt for POST /api/farmer/advice.
func farmerPrompt(q AdviceQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crop: %s.", q.Crop)
	if q.Location != "" {
		fmt.Fprintf(&b, " Location: %s.", q.Location)
	}
	if q.Season != "" {
		fmt.Fprintf(&b, " Season: %s.", q.Season)
	}
	b.WriteString(" What should the farmer focus on right now?")
	return b.String()
}

// timingPrompt builds the user prompt for POST /api/buyer/timing.
func timingPrompt(q TimingQuery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Crop: %s.", q.Crop)
	if q.Quantity != "" {
		fmt.Fprintf(&b, " Intended purchase: %s.", q.Quantity)
	}
	b.WriteString(" Should the buyer purchase now or wait, and why?")
	return b.String()
}

// trendPrompt builds the user prompt for trend commentary. Only the last
// few prices go upstream; the full series stays local.
func trendPrompt(crop catalog.Crop, prices []float64) string {
	tail := prices
	if len(tail) > 7 {
		tail = tail[len(tail)-7:]
	}
	parts := make([]string, len(tail))
	for i, p := range tail {
		parts[i] = fmt.Sprintf("%.2f", p)
	}
	return fmt.Sprintf("Crop: %s (per %s). Last daily prices: %s. Summarize the trend.",
		crop.Name, crop.Unit, strings.Join(parts, ", "))
}
