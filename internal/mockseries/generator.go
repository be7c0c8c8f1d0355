// Package mockseries synthesizes daily price histories with a bounded
// random walk. It backs the market endpoints whenever no real market-data
// source exists, which in this service is always.
package mockseries

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"agropulse/internal/domain/models"
)

// Source yields uniform floats in [0, 1). It is the generator's only
// randomness dependency; tests inject a fixed sequence to make output
// deterministic.
//
// A Generator shared across goroutines draws from its Source
// concurrently, so the Source must be safe for concurrent use.
// NewLockedSource supplies one; a bare *rand.Rand is not.
type Source interface {
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// NewLockedSource returns a seeded Source safe for concurrent use.
func NewLockedSource(seed int64) Source {
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

// ErrInvalidParameter is the sentinel wrapped by every parameter
// validation failure, so callers can branch with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports which SeriesRequest field violated its
// constraint.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// Defaults applied when a Generator is built without overriding options.
// Start range and volume range match the shape of typical produce prices.
const (
	DefaultStartMin  = 100.0
	DefaultStartMax  = 200.0
	DefaultVolumeMin = 500
	DefaultVolumeMax = 5500
)

// Generator produces bounded random walk series. It holds no per-call
// state; a single instance is safe for any number of concurrent callers.
type Generator struct {
	src       Source
	now       func() time.Time
	startMin  float64
	startMax  float64
	volumeMin int64
	volumeMax int64
}

// Option customizes a Generator at construction time.
type Option func(*Generator)

// WithClock overrides the time source used to anchor series at "today".
// Tests pin it to a fixed instant.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithStartRange overrides the [min, max) range the walk starts from when
// the request carries no seed.
func WithStartRange(min, max float64) Option {
	return func(g *Generator) { g.startMin, g.startMax = min, max }
}

// WithVolumeRange overrides the [min, max) range volumes are drawn from.
func WithVolumeRange(min, max int64) Option {
	return func(g *Generator) { g.volumeMin, g.volumeMax = min, max }
}

// New builds a Generator around the given randomness source. A nil source
// falls back to a time-seeded locked source.
func New(src Source, opts ...Option) *Generator {
	if src == nil {
		src = NewLockedSource(time.Now().UnixNano())
	}
	g := &Generator{
		src:       src,
		now:       time.Now,
		startMin:  DefaultStartMin,
		startMax:  DefaultStartMax,
		volumeMin: DefaultVolumeMin,
		volumeMax: DefaultVolumeMax,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one bounded random walk and returns req.Periods+1 samples
// in ascending date order, ending at the generation day.
//
// Behavior:
//   - The start value is req.Seed when present, otherwise a uniform draw
//     from the configured start range. Either way it is clamped into
//     [MinValue, MaxValue] before emission.
//   - Each step adds a uniform delta in [-StepMagnitude/2, +StepMagnitude/2)
//     and clamps the result immediately; the walk continues from the
//     clamped value, so it can sit pinned at a bound for several steps.
//   - Values are clamped first, then rounded to 2 decimal places
//     (math.Round over the binary value, half away from zero).
//   - Volumes are drawn independently per sample from the volume range.
//
// Returns:
//   - []models.TimeSeriesSample: the generated series.
//   - error: *InvalidParameterError when Periods < 0, MinValue > MaxValue,
//     or StepMagnitude < 0; nil otherwise.
//
// Generate never produces a partial series: it validates first and the
// walk itself cannot fail.
func (g *Generator) Generate(req models.SeriesRequest) ([]models.TimeSeriesSample, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	current := g.startValue(req)
	current = clamp(current, req.MinValue, req.MaxValue)

	today := dateOnly(g.now().UTC())
	samples := make([]models.TimeSeriesSample, 0, req.Periods+1)
	samples = append(samples, models.TimeSeriesSample{
		Date:   today.AddDate(0, 0, -req.Periods),
		Value:  round2(current),
		Volume: g.sampleVolume(),
	})

	for i := 1; i <= req.Periods; i++ {
		delta := (g.src.Float64() - 0.5) * req.StepMagnitude
		current = clamp(current+delta, req.MinValue, req.MaxValue)
		samples = append(samples, models.TimeSeriesSample{
			Date:   today.AddDate(0, 0, -(req.Periods - i)),
			Value:  round2(current),
			Volume: g.sampleVolume(),
		})
	}

	return samples, nil
}

func validate(req models.SeriesRequest) error {
	if req.Periods < 0 {
		return &InvalidParameterError{Field: "periods", Reason: "must be >= 0"}
	}
	if req.MinValue > req.MaxValue {
		return &InvalidParameterError{Field: "bounds", Reason: "minValue must be <= maxValue"}
	}
	if req.StepMagnitude < 0 {
		return &InvalidParameterError{Field: "stepMagnitude", Reason: "must be >= 0"}
	}
	return nil
}

// startValue picks the walk's first value. Without a seed it draws
// uniformly from the configured start range narrowed to the request
// bounds; when the two don't intersect at all, it draws from the bounds
// themselves so every series still starts somewhere inside its band.
func (g *Generator) startValue(req models.SeriesRequest) float64 {
	if req.Seed != nil {
		return *req.Seed
	}
	lo := math.Max(g.startMin, req.MinValue)
	hi := math.Min(g.startMax, req.MaxValue)
	if lo >= hi {
		lo, hi = req.MinValue, req.MaxValue
	}
	return lo + g.src.Float64()*(hi-lo)
}

func (g *Generator) sampleVolume() int64 {
	span := g.volumeMax - g.volumeMin
	if span <= 0 {
		return g.volumeMin
	}
	return g.volumeMin + int64(g.src.Float64()*float64(span))
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
