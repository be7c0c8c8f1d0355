// Package catalog holds the in-memory crop catalog. It plays the role a
// reference table would in a persistent system: per-crop price bands that
// parameterize the mock series generator.
package catalog

import "strings"

// Crop describes one catalog entry.
//
// Fields:
//   - Name: canonical lowercase crop name.
//   - Unit: pricing unit used in prompts (e.g., "quintal").
//   - MinPrice, MaxPrice: hard bounds for the synthesized price walk.
//   - StepMagnitude: maximum absolute per-day price delta.
type Crop struct {
	Name          string
	Unit          string
	MinPrice      float64
	MaxPrice      float64
	StepMagnitude float64
}

// CropRepository defines the contract for catalog lookups.
type CropRepository interface {
	// Lookup resolves a crop by name (case-insensitive). Unknown crops
	// return a default band with ok=false; the API deliberately never
	// rejects a crop name, since all market data here is synthetic.
	Lookup(name string) (Crop, bool)

	// Names lists the known crop names in stable order.
	Names() []string
}

type cropRepository struct {
	crops map[string]Crop
	order []string
}

// defaultBand is used for crops the catalog has never heard of.
var defaultBand = Crop{
	Unit:          "quintal",
	MinPrice:      50,
	MaxPrice:      300,
	StepMagnitude: 10,
}

// seed is the built-in catalog. Bands are rough INR-per-quintal shapes;
// they only need to look plausible, not be accurate.
var seed = []Crop{
	{Name: "wheat", Unit: "quintal", MinPrice: 1800, MaxPrice: 2600, StepMagnitude: 40},
	{Name: "rice", Unit: "quintal", MinPrice: 1900, MaxPrice: 3200, StepMagnitude: 50},
	{Name: "maize", Unit: "quintal", MinPrice: 1400, MaxPrice: 2200, StepMagnitude: 35},
	{Name: "cotton", Unit: "quintal", MinPrice: 5500, MaxPrice: 8000, StepMagnitude: 120},
	{Name: "sugarcane", Unit: "tonne", MinPrice: 280, MaxPrice: 400, StepMagnitude: 6},
	{Name: "soybean", Unit: "quintal", MinPrice: 3800, MaxPrice: 5200, StepMagnitude: 80},
	{Name: "potato", Unit: "quintal", MinPrice: 600, MaxPrice: 1600, StepMagnitude: 45},
	{Name: "onion", Unit: "quintal", MinPrice: 800, MaxPrice: 2400, StepMagnitude: 70},
	{Name: "tomato", Unit: "quintal", MinPrice: 500, MaxPrice: 2000, StepMagnitude: 90},
	{Name: "mustard", Unit: "quintal", MinPrice: 4500, MaxPrice: 6200, StepMagnitude: 85},
}

// NewCropRepository builds the repository from the built-in seed.
func NewCropRepository() CropRepository {
	r := &cropRepository{crops: make(map[string]Crop, len(seed))}
	for _, c := range seed {
		r.crops[c.Name] = c
		r.order = append(r.order, c.Name)
	}
	return r
}

func (r *cropRepository) Lookup(name string) (Crop, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := r.crops[key]; ok {
		return c, true
	}
	c := defaultBand
	c.Name = key
	return c, false
}

func (r *cropRepository) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
