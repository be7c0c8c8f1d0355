package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"agropulse/internal/catalog"
	"agropulse/internal/domain/models"
	"agropulse/internal/llm"
	"agropulse/internal/mockseries"
)

func testGenerator() *mockseries.Generator {
	anchor := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	return mockseries.New(
		mockseries.NewLockedSource(1),
		mockseries.WithClock(func() time.Time { return anchor }),
	)
}

func newService(p llm.Provider) AdvisoryService {
	return NewAdvisoryService(p, testGenerator(), catalog.NewCropRepository(), 30)
}

func TestFarmerAdvice_TableDriven(t *testing.T) {
	cases := []struct {
		name       string
		provider   llm.Provider
		wantSource string
		wantText   string
	}{
		{
			name:       "llm success",
			provider:   llm.Static{Text: "sow before the rains"},
			wantSource: models.SourceLLM,
			wantText:   "sow before the rains",
		},
		{
			name:       "llm failure falls back",
			provider:   llm.Static{Err: errors.New("upstream down")},
			wantSource: models.SourceMock,
		},
		{
			name:       "unconfigured falls back",
			provider:   llm.Static{Err: llm.ErrNotConfigured},
			wantSource: models.SourceMock,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(tc.provider)
			out, err := svc.FarmerAdvice(context.Background(), AdviceQuery{Crop: "wheat", Location: "Punjab"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Source != tc.wantSource {
				t.Fatalf("source %q, want %q", out.Source, tc.wantSource)
			}
			if tc.wantText != "" && out.Text != tc.wantText {
				t.Fatalf("text %q, want %q", out.Text, tc.wantText)
			}
			if tc.wantSource == models.SourceMock && !strings.Contains(out.Text, "wheat") {
				t.Fatalf("fallback must mention the crop: %q", out.Text)
			}
			if out.GeneratedAt.IsZero() {
				t.Fatalf("generated_at not set")
			}
		})
	}
}

func TestBuyerTiming_Fallback(t *testing.T) {
	svc := newService(llm.Static{Err: errors.New("boom")})
	out, err := svc.BuyerTiming(context.Background(), TimingQuery{Crop: "maize", Quantity: "20 tons"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Source != models.SourceMock || !strings.Contains(out.Text, "maize") {
		t.Fatalf("unexpected fallback: %+v", out)
	}
}

func TestMarketTrends_HistoryShape(t *testing.T) {
	svc := newService(llm.Static{Text: "prices are firming"})
	trend, err := svc.MarketTrends(context.Background(), "Wheat", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trend.Label != "wheat" {
		t.Fatalf("label %q, want normalized 'wheat'", trend.Label)
	}
	if len(trend.History) != 11 {
		t.Fatalf("history length %d, want 11", len(trend.History))
	}
	for i, s := range trend.History {
		if s.Value < 1800 || s.Value > 2600 {
			t.Fatalf("sample %d outside wheat band: %v", i, s.Value)
		}
	}
	if trend.Source != models.SourceLLM || trend.Commentary != "prices are firming" {
		t.Fatalf("unexpected commentary: %+v", trend)
	}
}

func TestMarketTrends_DefaultAndCappedDays(t *testing.T) {
	svc := newService(llm.Static{Err: llm.ErrNotConfigured})

	trend, err := svc.MarketTrends(context.Background(), "rice", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trend.History) != 31 {
		t.Fatalf("default days not applied: got %d samples", len(trend.History))
	}

	if _, err := svc.MarketTrends(context.Background(), "rice", 366); !errors.Is(err, ErrDaysOutOfRange) {
		t.Fatalf("expected ErrDaysOutOfRange, got %v", err)
	}
}

func TestMarketTrends_UnknownCropStillServed(t *testing.T) {
	svc := newService(llm.Static{Err: llm.ErrNotConfigured})
	trend, err := svc.MarketTrends(context.Background(), "dragonfruit", 5)
	if err != nil {
		t.Fatalf("unknown crop must still be served: %v", err)
	}
	if trend.Label != "dragonfruit" || len(trend.History) != 6 {
		t.Fatalf("unexpected trend: label=%q samples=%d", trend.Label, len(trend.History))
	}
	if trend.Source != models.SourceMock || trend.Commentary == "" {
		t.Fatalf("expected mock commentary, got %+v", trend)
	}
}

func TestMarketOverview_OrderAndConcurrency(t *testing.T) {
	svc := newService(llm.Static{Err: llm.ErrNotConfigured})
	crops := []string{"wheat", "rice", "onion"}
	trends, err := svc.MarketOverview(context.Background(), crops, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trends) != 3 {
		t.Fatalf("want 3 trends, got %d", len(trends))
	}
	for i, tr := range trends {
		if tr.Label != crops[i] {
			t.Fatalf("order not stable: position %d is %q", i, tr.Label)
		}
		if len(tr.History) != 8 {
			t.Fatalf("trend %q history length %d, want 8", tr.Label, len(tr.History))
		}
	}
}

func TestMarketOverview_EmptyMeansCatalog(t *testing.T) {
	svc := newService(llm.Static{Err: llm.ErrNotConfigured})
	trends, err := svc.MarketOverview(context.Background(), nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trends) != len(catalog.NewCropRepository().Names()) {
		t.Fatalf("expected whole catalog, got %d trends", len(trends))
	}
}

func TestMarketOverview_TooManyCrops(t *testing.T) {
	svc := newService(llm.Static{Err: llm.ErrNotConfigured})
	crops := make([]string, maxOverviewCrops+1)
	for i := range crops {
		crops[i] = "wheat"
	}
	if _, err := svc.MarketOverview(context.Background(), crops, 3); !errors.Is(err, ErrTooManyCrops) {
		t.Fatalf("expected ErrTooManyCrops, got %v", err)
	}
}

// countingProvider counts Complete calls; used to verify the overview
// fans out one completion per crop.
type countingProvider struct {
	calls atomic.Int64
}

func (p *countingProvider) Complete(_ context.Context, _, _ string) (string, error) {
	p.calls.Add(1)
	return "steady", nil
}

func TestMarketOverview_OneCompletionPerCrop(t *testing.T) {
	p := &countingProvider{}
	svc := newService(p)
	if _, err := svc.MarketOverview(context.Background(), []string{"wheat", "rice"}, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := p.calls.Load(); got != 2 {
		t.Fatalf("completion calls %d, want 2", got)
	}
}
