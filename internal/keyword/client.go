package keyword

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultEndpoint = "https://api.exa.ai/search"
	defaultTimeout  = 10 * time.Second
)

// Client fetches keyword metrics from a research provider. Without an API
// key every lookup uses the simulated fallback, so a zero-config client is
// always usable.
type Client struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the provider endpoint, mainly for tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient builds a keyword research client. An empty apiKey selects the
// deterministic simulated fallback for every lookup.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// providerRequest is the per-keyword request body.
type providerRequest struct {
	Query          string `json:"query"`
	Type           string `json:"type"`
	IncludeMetrics bool   `json:"includeMetrics"`
}

// providerResponse is the subset of the provider response we consume.
// Pointer fields distinguish "absent" from zero.
type providerResponse struct {
	SearchVolume    *int     `json:"searchVolume"`
	Difficulty      *int     `json:"difficulty"`
	CPC             *float64 `json:"cpc"`
	RelatedKeywords []string `json:"relatedKeywords"`
}

// Research fetches metrics for each keyword, preserving input order. It
// never returns an error: any per-keyword provider failure falls back to
// the simulated metric for that keyword.
func (c *Client) Research(ctx context.Context, keywords []string) []Metric {
	metrics := make([]Metric, 0, len(keywords))
	for _, kw := range keywords {
		if c.apiKey == "" {
			metrics = append(metrics, Simulate(kw))
			continue
		}
		m, err := c.lookup(ctx, kw)
		if err != nil {
			m = Simulate(kw)
		}
		metrics = append(metrics, m)
	}
	return metrics
}

func (c *Client) lookup(ctx context.Context, kw string) (Metric, error) {
	body, err := json.Marshal(providerRequest{
		Query:          kw,
		Type:           "keyword",
		IncludeMetrics: true,
	})
	if err != nil {
		return Metric{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Metric{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Metric{}, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Metric{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Metric{}, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(respBytes))
	}

	var pr providerResponse
	if err := json.Unmarshal(respBytes, &pr); err != nil {
		return Metric{}, fmt.Errorf("unmarshaling response: %w", err)
	}

	m := Metric{Keyword: kw, Related: pr.RelatedKeywords}
	if pr.SearchVolume != nil {
		m.SearchVolume = *pr.SearchVolume
		m.VolumeKnown = true
	}
	if pr.Difficulty != nil {
		m.Difficulty = *pr.Difficulty
	}
	if pr.CPC != nil {
		m.CPC = *pr.CPC
	}
	if len(m.Related) == 0 {
		m.Related = RelatedKeywords(kw)
	}
	return m, nil
}
