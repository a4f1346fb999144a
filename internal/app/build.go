package app

import (
	"fmt"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/keyword"
	"github.com/insighthub/insighthub/internal/llm"
	"github.com/insighthub/insighthub/internal/pipeline"
	"github.com/insighthub/insighthub/internal/store"
	"github.com/insighthub/insighthub/internal/tips"
)

// buildPipeline assembles the pipeline from configuration. The returned
// close function releases the page cache, if one was opened.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, func(), error) {
	pipe := &pipeline.Pipeline{
		Fetcher:  crawl.NewCrawler(crawl.WithTimeout(cfg.Crawl.Timeout)),
		Research: keyword.NewClient(cfg.KeywordAPIKey, keyword.WithTimeout(cfg.Keywords.Timeout)),
		Tips:     tipSource(cfg),
	}

	closeFn := func() {}
	if cfg.Crawl.CacheEnabled {
		db, err := store.Open(config.DBPath())
		if err != nil {
			return nil, nil, fmt.Errorf("opening page cache: %w", err)
		}
		pipe.Cache = db
		pipe.CacheTTL = cfg.Crawl.CacheTTL
		closeFn = func() { _ = db.Close() }
	}

	return pipe, closeFn, nil
}

// tipSource selects the AI tip source: the Groq client when a key is
// configured, otherwise the unavailable variant that forces rule-based
// tips.
func tipSource(cfg *config.Config) tips.Source {
	if cfg.GroqAPIKey == "" {
		return tips.Unavailable{}
	}
	return llm.NewClient(cfg.GroqAPIKey,
		llm.WithModel(cfg.LLM.Model),
		llm.WithTimeout(cfg.LLM.Timeout))
}
