package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"agropulse/config"
	"agropulse/internal/api"
	"agropulse/internal/catalog"
	"agropulse/internal/domain/dto"
	"agropulse/internal/llm"
	"agropulse/internal/mockseries"
	"agropulse/internal/service"
)

// newStack wires the real service, generator, and LLM client against a
// local completion server, through the real router. No mocks below the
// HTTP boundary.
func newStack(t *testing.T, upstream http.HandlerFunc) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var provider llm.Provider
	if upstream != nil {
		srv := httptest.NewServer(upstream)
		t.Cleanup(srv.Close)
		provider = llm.NewClient(config.LLMConfig{
			APIKey:  "test-key",
			BaseURL: srv.URL,
			Model:   "test-model",
			Timeout: 2 * time.Second,
		})
	} else {
		// Unconfigured upstream: everything is served from the fallback.
		provider = llm.NewClient(config.LLMConfig{BaseURL: "http://localhost:1", Model: "m"})
	}

	gen := mockseries.New(mockseries.NewLockedSource(1))
	svc := service.NewAdvisoryService(provider, gen, catalog.NewCropRepository(), 30)
	return api.NewRouter(api.NewHandler(svc))
}

func TestFullStack_AdviceFromUpstream(t *testing.T) {
	router := newStack(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"sow in the first week of November"}}]}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/farmer/advice",
		strings.NewReader(`{"crop":"wheat","location":"Punjab","season":"rabi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var out dto.AdviceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Source != "llm" || out.Advice != "sow in the first week of November" {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestFullStack_FallbackWhenUpstreamFails(t *testing.T) {
	router := newStack(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/buyer/timing",
		strings.NewReader(`{"crop":"maize"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("fallback must still serve 200, got %d: %s", w.Code, w.Body.String())
	}
	var out dto.AdviceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Source != "mock" || !strings.Contains(out.Advice, "maize") {
		t.Fatalf("unexpected fallback: %+v", out)
	}
}

func TestFullStack_TrendsEnvelope(t *testing.T) {
	router := newStack(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/market/trends/rice?days=14", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var out dto.TrendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Label != "rice" || out.Period != "14 days" || len(out.History) != 15 {
		t.Fatalf("unexpected envelope: label=%q period=%q samples=%d", out.Label, out.Period, len(out.History))
	}
	// Wire dates are YYYY-MM-DD and ascending
	prev := ""
	for _, p := range out.History {
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			t.Fatalf("bad date %q: %v", p.Date, err)
		}
		if prev != "" && p.Date <= prev {
			t.Fatalf("dates not ascending: %q after %q", p.Date, prev)
		}
		prev = p.Date
	}
	if out.Source != "mock" || out.Commentary == "" {
		t.Fatalf("expected mock commentary, got %+v", out)
	}
}

func TestFullStack_OverviewConcurrent(t *testing.T) {
	router := newStack(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/market/overview?crops=wheat,rice,onion&days=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var out dto.OverviewResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(out.Trends) != 3 {
		t.Fatalf("expected 3 trends, got %d", len(out.Trends))
	}
	for i, want := range []string{"wheat", "rice", "onion"} {
		if out.Trends[i].Label != want {
			t.Fatalf("trend %d is %q, want %q", i, out.Trends[i].Label, want)
		}
	}
}
