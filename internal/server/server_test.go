package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/pipeline"
	"github.com/insighthub/insighthub/internal/report"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubFetcher struct {
	mu    sync.Mutex
	calls []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) crawl.PageMetrics {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()
	return crawl.PageMetrics{URL: url, StatusCode: 200, LoadTime: 1.2, WordCount: 900, Title: "Stub"}
}

func newTestServer(max int) (*Server, *stubFetcher) {
	fetcher := &stubFetcher{}
	pipe := &pipeline.Pipeline{Fetcher: fetcher}
	cfg := config.Server{Addr: ":0", RateLimit: 1000, RateBurst: 1000}
	return New(pipe, cfg, max), fetcher
}

func postAnalyze(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv, _ := newTestServer(5)
	r := srv.Router()

	w := postAnalyze(t, r, gin.H{
		"url":      "https://example.com",
		"keywords": []string{"seo"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var rep report.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "https://example.com", rep.URL)
	assert.Equal(t, "https://example.com", rep.Result.Site.URL)
	assert.Len(t, rep.Result.Keywords, 1)
	assert.GreaterOrEqual(t, rep.Result.Analysis.OverallScore, 0.0)
}

func TestAnalyzeEndpoint_MissingURL(t *testing.T) {
	srv, _ := newTestServer(5)
	w := postAnalyze(t, srv.Router(), gin.H{"keywords": []string{"seo"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "URL is required")
}

func TestAnalyzeEndpoint_CapsCompetitors(t *testing.T) {
	srv, fetcher := newTestServer(2)
	w := postAnalyze(t, srv.Router(), gin.H{
		"url":         "https://example.com",
		"competitors": []string{"https://a.example", "https://b.example", "https://c.example"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	// Subject plus the first two competitors; the third is dropped.
	assert.Len(t, fetcher.calls, 3)
	assert.NotContains(t, fetcher.calls, "https://c.example")
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(5)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(5)
	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	fetcher := &stubFetcher{}
	pipe := &pipeline.Pipeline{Fetcher: fetcher}
	cfg := config.Server{Addr: ":0", RateLimit: 1, RateBurst: 2}
	r := New(pipe, cfg, 5).Router()

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
