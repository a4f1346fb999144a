// Package config provides configuration loading and defaults for insighthub.
package config

import "time"

// DefaultConfigDir is the default location for insighthub configuration.
const DefaultConfigDir = "~/.config/insighthub"

// DefaultDBName is the filename for the SQLite page cache.
const DefaultDBName = "insighthub.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix is the prefix for environment variable overrides,
// e.g. INSIGHTHUB_GROQ_API_KEY.
const EnvPrefix = "INSIGHTHUB"

// DefaultCrawl holds the default crawl settings.
var DefaultCrawl = Crawl{
	Timeout:        15 * time.Second,
	CacheEnabled:   true,
	CacheTTL:       30 * time.Minute,
	MaxCompetitors: 5,
}

// DefaultLLM holds the default language-model settings.
var DefaultLLM = LLM{
	Model:   "llama3-8b-8192",
	Timeout: 30 * time.Second,
}

// DefaultKeywords holds the default keyword research settings.
var DefaultKeywords = Keywords{
	Timeout: 10 * time.Second,
}

// DefaultServer holds the default HTTP API settings.
var DefaultServer = Server{
	Addr:      ":8080",
	RateLimit: 10,
	RateBurst: 20,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
