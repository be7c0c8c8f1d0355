// Package service holds the advisory business logic: prompt assembly,
// calls to the upstream completion API, and the mock fallback that keeps
// the endpoints serving when the upstream is unconfigured or failing.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"agropulse/internal/catalog"
	"agropulse/internal/domain/models"
	"agropulse/internal/llm"
	"agropulse/internal/logger"
	"agropulse/internal/mockseries"
)

// maxDays caps the requested history length; anything longer is a client
// error, not a bigger walk.
const maxDays = 365

// maxOverviewCrops caps how many crops one overview request may fan out.
const maxOverviewCrops = 10

// overviewParallelism limits concurrent trend generation in an overview.
const overviewParallelism = 5

// ErrDaysOutOfRange is returned when a requested history length exceeds
// maxDays. Handlers map it to 400.
var ErrDaysOutOfRange = fmt.Errorf("days must be between 1 and %d", maxDays)

// ErrTooManyCrops is returned when an overview request names more than
// maxOverviewCrops crops. Handlers map it to 400.
var ErrTooManyCrops = fmt.Errorf("at most %d crops per overview request", maxOverviewCrops)

// AdviceQuery carries the inputs of a farmer-advice request.
type AdviceQuery struct {
	Crop     string
	Location string
	Season   string
}

// TimingQuery carries the inputs of a buyer-timing request.
type TimingQuery struct {
	Crop     string
	Quantity string
}

// AdvisoryService defines the business logic consumed by the HTTP layer.
type AdvisoryService interface {
	FarmerAdvice(ctx context.Context, q AdviceQuery) (*models.Advice, error)
	BuyerTiming(ctx context.Context, q TimingQuery) (*models.Advice, error)
	MarketTrends(ctx context.Context, crop string, days int) (*models.Trend, error)
	MarketOverview(ctx context.Context, crops []string, days int) ([]models.Trend, error)
}

type advisoryService struct {
	provider    llm.Provider
	gen         *mockseries.Generator
	crops       catalog.CropRepository
	defaultDays int
	now         func() time.Time
}

// NewAdvisoryService wires the advisory logic.
//
// Parameters:
//   - provider (llm.Provider): upstream completion API; errors from it
//     trigger the mock fallback, they are never surfaced to callers.
//   - gen (*mockseries.Generator): price history synthesizer.
//   - crops (catalog.CropRepository): per-crop price bands.
//   - defaultDays (int): history length when a request omits days.
func NewAdvisoryService(provider llm.Provider, gen *mockseries.Generator, crops catalog.CropRepository, defaultDays int) AdvisoryService {
	return &advisoryService{
		provider:    provider,
		gen:         gen,
		crops:       crops,
		defaultDays: defaultDays,
		now:         time.Now,
	}
}

// FarmerAdvice answers a farmer-advice request from the completion API,
// or from the canned fallback when the upstream fails.
func (s *advisoryService) FarmerAdvice(ctx context.Context, q AdviceQuery) (*models.Advice, error) {
	text, source := s.complete(ctx, farmerSystemPrompt, farmerPrompt(q), func() string {
		return mockFarmerAdvice(q)
	})
	return &models.Advice{
		Crop:        q.Crop,
		Text:        text,
		Source:      source,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// BuyerTiming answers a purchase-timing request, same fallback contract
// as FarmerAdvice.
func (s *advisoryService) BuyerTiming(ctx context.Context, q TimingQuery) (*models.Advice, error) {
	text, source := s.complete(ctx, timingSystemPrompt, timingPrompt(q), func() string {
		return mockBuyerTiming(q)
	})
	return &models.Advice{
		Crop:        q.Crop,
		Text:        text,
		Source:      source,
		GeneratedAt: s.now().UTC(),
	}, nil
}

// MarketTrends synthesizes a price history for the crop and attaches a
// trend commentary. The history is always generated locally; only the
// commentary degrades between upstream and fallback.
func (s *advisoryService) MarketTrends(ctx context.Context, crop string, days int) (*models.Trend, error) {
	if days <= 0 {
		days = s.defaultDays
	}
	if days > maxDays {
		return nil, ErrDaysOutOfRange
	}

	band, _ := s.crops.Lookup(crop)
	history, err := s.gen.Generate(models.SeriesRequest{
		Periods:       days,
		MinValue:      band.MinPrice,
		MaxValue:      band.MaxPrice,
		StepMagnitude: band.StepMagnitude,
	})
	if err != nil {
		return nil, fmt.Errorf("generate history for %q: %w", band.Name, err)
	}

	prices := make([]float64, len(history))
	for i, smp := range history {
		prices[i] = smp.Value
	}
	commentary, source := s.complete(ctx, trendSystemPrompt, trendPrompt(band, prices), func() string {
		return mockCommentary(band, history)
	})

	return &models.Trend{
		Label:      band.Name,
		History:    history,
		Commentary: commentary,
		Source:     source,
	}, nil
}

// MarketOverview generates trends for several crops concurrently. Output
// order matches input order. An empty crop list means the whole catalog.
func (s *advisoryService) MarketOverview(ctx context.Context, crops []string, days int) ([]models.Trend, error) {
	if len(crops) == 0 {
		crops = s.crops.Names()
	}
	if len(crops) > maxOverviewCrops {
		return nil, ErrTooManyCrops
	}

	trends := make([]models.Trend, len(crops))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewParallelism)
	for i, crop := range crops {
		i, crop := i, crop
		g.Go(func() error {
			t, err := s.MarketTrends(gctx, crop, days)
			if err != nil {
				return err
			}
			trends[i] = *t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trends, nil
}

// complete runs one upstream completion and degrades to the fallback on
// any error. The fallback path is not an error: the caller gets content
// either way, with the source label telling them which.
func (s *advisoryService) complete(ctx context.Context, system, user string, fallback func() string) (text, source string) {
	out, err := s.provider.Complete(ctx, system, user)
	if err != nil {
		log := logger.With("advisory")
		evt := log.Warn()
		if errors.Is(err, llm.ErrNotConfigured) {
			evt = log.Debug()
		}
		evt.Err(err).Msg("completion unavailable, serving mock content")
		return fallback(), models.SourceMock
	}
	return out, models.SourceLLM
}
