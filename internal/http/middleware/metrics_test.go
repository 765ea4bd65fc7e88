package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters_Histograms_InflightAndPathFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())

	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "hello")
	})
	// No body, size stays -1 and the size histogram is skipped.
	r.GET("/statusonly", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	// Baselines so other tests in the package cannot interfere.
	baseOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/ok", "200"))
	base404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/does-not-exist", "404"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET /ok -> %d", w.Code)
	}

	// Unmatched route falls back to the raw URL path label.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /does-not-exist -> %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/statusonly", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("GET /statusonly -> %d", w.Code)
	}

	gotOK := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/ok", "200"))
	if gotOK != baseOK+1 {
		t.Fatalf("counter /ok 200 = %v; want %v", gotOK, baseOK+1)
	}
	got404 := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/does-not-exist", "404"))
	if got404 != base404+1 {
		t.Fatalf("counter 404 fallback = %v; want %v", got404, base404+1)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}

func TestDomainCounters(t *testing.T) {
	baseLeft := testutil.ToFloat64(swipesTotal.WithLabelValues("left"))
	baseRight := testutil.ToFloat64(swipesTotal.WithLabelValues("right"))
	baseMatches := testutil.ToFloat64(matchesTotal)
	baseMsgs := testutil.ToFloat64(messagesTotal)

	CountSwipe("left", false)
	CountSwipe("right", true)
	CountMessage()

	if got := testutil.ToFloat64(swipesTotal.WithLabelValues("left")); got != baseLeft+1 {
		t.Fatalf("left swipes = %v; want %v", got, baseLeft+1)
	}
	if got := testutil.ToFloat64(swipesTotal.WithLabelValues("right")); got != baseRight+1 {
		t.Fatalf("right swipes = %v; want %v", got, baseRight+1)
	}
	if got := testutil.ToFloat64(matchesTotal); got != baseMatches+1 {
		t.Fatalf("matches = %v; want %v", got, baseMatches+1)
	}
	if got := testutil.ToFloat64(messagesTotal); got != baseMsgs+1 {
		t.Fatalf("messages = %v; want %v", got, baseMsgs+1)
	}
}
