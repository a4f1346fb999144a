package crawl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "Mozilla/5.0 (compatible; InsightHub/1.0; +https://github.com/insighthub/insighthub)"
	maxBodyBytes     = 5 << 20
)

// Crawler fetches pages and extracts PageMetrics.
type Crawler struct {
	client    *http.Client
	userAgent string
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Crawler) { c.client.Timeout = d }
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Crawler) { c.client = hc }
}

// NewCrawler builds a crawler with connection pooling and a browser-like
// user agent.
func NewCrawler(opts ...Option) *Crawler {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	c := &Crawler{
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves a page and measures it. It never returns an error:
// transport failures, timeouts, and non-2xx responses all yield an
// error-flagged record with safe defaults so analysis can continue.
func (c *Crawler) Fetch(ctx context.Context, rawURL string) PageMetrics {
	target := normalizeURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return ErrorMetrics(target, fmt.Sprintf("invalid URL: %v", err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return ErrorMetrics(target, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	loadTime := time.Since(start).Seconds()
	if err != nil {
		return ErrorMetrics(target, fmt.Sprintf("reading body: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m := ErrorMetrics(target, fmt.Sprintf("status %d", resp.StatusCode))
		m.StatusCode = resp.StatusCode
		m.LoadTime = loadTime
		return m
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		m := ErrorMetrics(target, fmt.Sprintf("parsing HTML: %v", err))
		m.StatusCode = resp.StatusCode
		m.LoadTime = loadTime
		return m
	}

	m := PageMetrics{
		URL:           target,
		StatusCode:    resp.StatusCode,
		LoadTime:      loadTime,
		ContentLength: len(body),
		HasSSL:        strings.HasPrefix(strings.ToLower(target), "https://"),
		HasGzip:       resp.Uncompressed || resp.Header.Get("Content-Encoding") != "",
	}
	c.extract(doc, target, &m)
	return m
}

// extract pulls the on-page signals out of the parsed document.
func (c *Crawler) extract(doc *goquery.Document, target string, m *PageMetrics) {
	m.Title = strings.TrimSpace(doc.Find("title").First().Text())
	m.MetaDescription = metaContent(doc, "description")
	m.MetaKeywords = metaContent(doc, "keywords")
	m.RobotsMeta = metaContent(doc, "robots")

	m.Headings = emptyHeadings()
	for level := range m.Headings {
		m.Headings[level] = doc.Find(level).Length()
	}

	m.WordCount = countWords(doc)
	m.ImageCount = doc.Find("img").Length()
	m.InternalLinks, m.ExternalLinks = countLinks(doc, target)

	viewport := metaContent(doc, "viewport")
	m.MobileFriendly = strings.Contains(viewport, "width=device-width")

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		m.HasCanonical = true
		m.CanonicalURL = strings.TrimSpace(href)
	}
	m.HasOGTags = doc.Find(`meta[property^="og:"]`).Length() > 0
	m.HasTwitterCard = doc.Find(`meta[name^="twitter:"]`).Length() > 0
	m.HasSchema = doc.Find(`script[type="application/ld+json"]`).Length() > 0
}

func metaContent(doc *goquery.Document, name string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).First().Attr("content")
	return strings.TrimSpace(content)
}

// countWords counts whitespace-separated words in the body, excluding
// script and style text.
func countWords(doc *goquery.Document) int {
	body := doc.Find("body").Clone()
	body.Find("script, style, noscript").Remove()
	return len(strings.Fields(body.Text()))
}

// countLinks classifies anchors as internal or external relative to the
// page host. Fragment-only and unparseable hrefs are skipped.
func countLinks(doc *goquery.Document, target string) (internal, external int) {
	base, err := url.Parse(target)
	if err != nil {
		return 0, 0
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") ||
			strings.HasPrefix(href, "javascript:") {
			return
		}
		u, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(u)
		if resolved.Host == base.Host {
			internal++
		} else {
			external++
		}
	})
	return internal, external
}

// normalizeURL defaults to https when no scheme is given.
func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}
