package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewRegistersAllSeries(t *testing.T) {
	m := New()
	m.GamesProcessed.WithLabelValues("2019").Inc()
	m.ExamplesEmitted.WithLabelValues("2019").Add(2)
	m.ExamplesSkipped.WithLabelValues("2019").Inc()
	m.SpreadCacheHits.Inc()
	m.SpreadCacheMisses.Inc()
	m.BetsGraded.WithLabelValues("Correct").Inc()
	m.SetBankroll(decimal.NewFromFloat(1045.0))

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 7 {
		t.Errorf("expected 7 metric families, got %d", len(families))
	}
}

func TestHandlerServesScrape(t *testing.T) {
	m := New()
	m.Bankroll.Set(1000)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "predictor_bankroll 1000") {
		t.Errorf("scrape output missing bankroll gauge:\n%s", rec.Body.String())
	}
}

func TestIndependentRegistries(t *testing.T) {
	a := New()
	b := New()
	a.SpreadCacheHits.Inc()

	families, err := b.Registry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			if c := metric.GetCounter(); c != nil && c.GetValue() != 0 {
				t.Errorf("fresh registry has non-zero counter in %s", f.GetName())
			}
		}
	}
}
