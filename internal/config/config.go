package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the top-level insighthub configuration.
type Config struct {
	GroqAPIKey    string   `mapstructure:"groq_api_key"`
	KeywordAPIKey string   `mapstructure:"keyword_api_key"`
	Crawl         Crawl    `mapstructure:"crawl"`
	LLM           LLM      `mapstructure:"llm"`
	Keywords      Keywords `mapstructure:"keywords"`
	Server        Server   `mapstructure:"server"`
	Output        Output   `mapstructure:"output"`
}

// Crawl defines page fetch settings.
type Crawl struct {
	Timeout        time.Duration `mapstructure:"timeout"`
	CacheEnabled   bool          `mapstructure:"cache_enabled"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
	MaxCompetitors int           `mapstructure:"max_competitors"`
}

// LLM defines language-model settings.
type LLM struct {
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Keywords defines keyword research settings.
type Keywords struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Server defines HTTP API settings.
type Server struct {
	Addr      string  `mapstructure:"addr"`
	RateLimit float64 `mapstructure:"rate_limit"` // requests per second per client
	RateBurst int     `mapstructure:"rate_burst"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A .env file in the
// working directory is loaded first, then INSIGHTHUB_* environment
// variables override file values.
func Load(cfgFile string) (*Config, error) {
	// Missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()

	// Set defaults.
	v.SetDefault("groq_api_key", "")
	v.SetDefault("keyword_api_key", "")
	v.SetDefault("crawl.timeout", DefaultCrawl.Timeout)
	v.SetDefault("crawl.cache_enabled", DefaultCrawl.CacheEnabled)
	v.SetDefault("crawl.cache_ttl", DefaultCrawl.CacheTTL)
	v.SetDefault("crawl.max_competitors", DefaultCrawl.MaxCompetitors)
	v.SetDefault("llm.model", DefaultLLM.Model)
	v.SetDefault("llm.timeout", DefaultLLM.Timeout)
	v.SetDefault("keywords.timeout", DefaultKeywords.Timeout)
	v.SetDefault("server.addr", DefaultServer.Addr)
	v.SetDefault("server.rate_limit", DefaultServer.RateLimit)
	v.SetDefault("server.rate_burst", DefaultServer.RateBurst)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite page cache.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
