package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Crawl.Timeout != DefaultCrawl.Timeout {
		t.Errorf("Crawl.Timeout = %v, want %v", cfg.Crawl.Timeout, DefaultCrawl.Timeout)
	}
	if cfg.Crawl.MaxCompetitors != DefaultCrawl.MaxCompetitors {
		t.Errorf("Crawl.MaxCompetitors = %d", cfg.Crawl.MaxCompetitors)
	}
	if cfg.LLM.Model != DefaultLLM.Model {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
	if cfg.Server.Addr != DefaultServer.Addr {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should default to true")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INSIGHTHUB_GROQ_API_KEY", "gsk-test")
	t.Setenv("INSIGHTHUB_SERVER_ADDR", ":9999")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.GroqAPIKey != "gsk-test" {
		t.Errorf("GroqAPIKey = %q", cfg.GroqAPIKey)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("crawl:\n  timeout: 20s\n  max_competitors: 3\nllm:\n  model: test-model\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Crawl.Timeout != 20*time.Second {
		t.Errorf("Crawl.Timeout = %v, want 20s", cfg.Crawl.Timeout)
	}
	if cfg.Crawl.MaxCompetitors != 3 {
		t.Errorf("Crawl.MaxCompetitors = %d, want 3", cfg.Crawl.MaxCompetitors)
	}
	if cfg.LLM.Model != "test-model" {
		t.Errorf("LLM.Model = %q", cfg.LLM.Model)
	}
	// Untouched keys keep their defaults.
	if cfg.Server.RateBurst != DefaultServer.RateBurst {
		t.Errorf("Server.RateBurst = %d", cfg.Server.RateBurst)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Errorf("missing config file should not error, got %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := expandPath("~/.config/insighthub")
	want := filepath.Join(home, ".config/insighthub")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}

	if got := expandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
