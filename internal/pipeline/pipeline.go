// Package pipeline orchestrates the fetch, research, and analysis phases of
// one insighthub run.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/insight"
	"github.com/insighthub/insighthub/internal/keyword"
	"github.com/insighthub/insighthub/internal/tips"
)

// PageFetcher retrieves page metrics. Failures surface as error-flagged
// records, never as errors.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) crawl.PageMetrics
}

// KeywordResearcher fetches keyword metrics, degrading per keyword.
type KeywordResearcher interface {
	Research(ctx context.Context, keywords []string) []keyword.Metric
}

// PageCache is the optional read-through cache consulted before fetching.
type PageCache interface {
	GetPage(url string, maxAge time.Duration) (crawl.PageMetrics, bool, error)
	PutPage(m crawl.PageMetrics) error
}

// Request describes one analysis run.
type Request struct {
	URL         string   `json:"url"`
	Competitors []string `json:"competitors"`
	Keywords    []string `json:"keywords"`
}

// Result carries everything one run produced.
type Result struct {
	Site           crawl.PageMetrics      `json:"site"`
	Competitors    []crawl.PageMetrics    `json:"competitors"`
	Keywords       []keyword.Metric       `json:"keywords"`
	KeywordSummary keyword.Summary        `json:"keyword_summary"`
	Analysis       insight.AnalysisResult `json:"analysis"`
	Tips           []string               `json:"tips"`
}

// Pipeline wires the collaborators together. Only Fetcher is required:
// Research defaults to the simulated client, Tips to Unavailable, and
// Cache to none.
type Pipeline struct {
	Fetcher  PageFetcher
	Research KeywordResearcher
	Tips     tips.Source
	Cache    PageCache
	CacheTTL time.Duration
}

// Run executes the full pipeline: the subject fetch, every competitor
// fetch, and the keyword research all run concurrently, then the pure
// analysis runs over the joined results. Collaborator degradation never
// fails the run, so the returned error is only ever a context
// cancellation surfaced through the fetch layer.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	research := p.Research
	if research == nil {
		research = keyword.NewClient("")
	}
	tipSource := p.Tips
	if tipSource == nil {
		tipSource = tips.Unavailable{}
	}

	res := Result{
		Competitors: make([]crawl.PageMetrics, len(req.Competitors)),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res.Site = p.fetch(gctx, req.URL)
		return nil
	})

	for i, comp := range req.Competitors {
		g.Go(func() error {
			res.Competitors[i] = p.fetch(gctx, comp)
			return nil
		})
	}

	if len(req.Keywords) > 0 {
		g.Go(func() error {
			res.Keywords = research.Research(gctx, req.Keywords)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res.KeywordSummary = keyword.Summarize(res.Keywords)
	res.Analysis = insight.Analyze(res.Site, res.Competitors, res.Keywords)
	res.Tips = tips.Generate(ctx, tipSource, res.Site)

	return res, nil
}

// fetch consults the cache before the crawler and writes fresh successful
// fetches back. Cache errors are treated as misses; error records are not
// cached.
func (p *Pipeline) fetch(ctx context.Context, url string) crawl.PageMetrics {
	if p.Cache != nil && p.CacheTTL > 0 {
		if m, ok, err := p.Cache.GetPage(url, p.CacheTTL); err == nil && ok {
			return m
		}
	}

	m := p.Fetcher.Fetch(ctx, url)

	if p.Cache != nil && !m.Failed() {
		_ = p.Cache.PutPage(m)
	}
	return m
}
