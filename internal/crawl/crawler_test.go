package crawl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
<title>Sample Page</title>
<meta name="description" content="A sample page for testing">
<meta name="keywords" content="sample, testing">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="robots" content="index, follow">
<meta property="og:title" content="Sample Page">
<link rel="canonical" href="https://example.com/sample">
<script type="application/ld+json">{"@type":"WebPage"}</script>
<style>body { color: red; }</style>
</head>
<body>
<h1>Main Heading</h1>
<h2>Sub One</h2>
<h2>Sub Two</h2>
<p>Some body text with exactly a handful of words here.</p>
<script>var ignored = "script words should not count";</script>
<img src="/a.png"><img src="/b.png">
<a href="/internal">in</a>
<a href="#fragment">skip</a>
<a href="mailto:x@example.com">skip</a>
<a href="https://other.example.org/page">out</a>
</body>
</html>`

func TestFetch_ExtractsMetrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	c := NewCrawler()
	m := c.Fetch(context.Background(), srv.URL)

	if m.Failed() {
		t.Fatalf("unexpected error record: %s", m.Error)
	}
	if m.StatusCode != 200 {
		t.Errorf("StatusCode = %d, want 200", m.StatusCode)
	}
	if m.Title != "Sample Page" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.MetaDescription != "A sample page for testing" {
		t.Errorf("MetaDescription = %q", m.MetaDescription)
	}
	if m.MetaKeywords != "sample, testing" {
		t.Errorf("MetaKeywords = %q", m.MetaKeywords)
	}
	if m.Headings["h1"] != 1 || m.Headings["h2"] != 2 || m.Headings["h3"] != 0 {
		t.Errorf("Headings = %v", m.Headings)
	}
	if !m.MobileFriendly {
		t.Error("expected mobile friendly from viewport meta")
	}
	if m.ImageCount != 2 {
		t.Errorf("ImageCount = %d, want 2", m.ImageCount)
	}
	if m.InternalLinks != 1 {
		t.Errorf("InternalLinks = %d, want 1", m.InternalLinks)
	}
	if m.ExternalLinks != 1 {
		t.Errorf("ExternalLinks = %d, want 1", m.ExternalLinks)
	}
	if !m.HasCanonical || m.CanonicalURL != "https://example.com/sample" {
		t.Errorf("canonical = %v %q", m.HasCanonical, m.CanonicalURL)
	}
	if !m.HasOGTags {
		t.Error("expected OG tags detected")
	}
	if m.HasTwitterCard {
		t.Error("unexpected twitter card")
	}
	if !m.HasSchema {
		t.Error("expected schema markup detected")
	}
	if m.RobotsMeta != "index, follow" {
		t.Errorf("RobotsMeta = %q", m.RobotsMeta)
	}
	if m.LoadTime <= 0 {
		t.Errorf("LoadTime = %v, want > 0", m.LoadTime)
	}
	if m.ContentLength == 0 {
		t.Error("ContentLength should be set")
	}
}

func TestFetch_WordCountExcludesScriptAndStyle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePage))
	}))
	defer srv.Close()

	m := NewCrawler().Fetch(context.Background(), srv.URL)

	// Heading and paragraph words only; script text is excluded.
	if m.WordCount == 0 {
		t.Fatal("WordCount = 0")
	}
	// "ignored", "script", "count" appear only inside the script tag.
	if m.WordCount > 20 {
		t.Errorf("WordCount = %d, script text apparently counted", m.WordCount)
	}
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	m := NewCrawler().Fetch(context.Background(), srv.URL)

	if !m.Failed() {
		t.Fatal("expected error record")
	}
	if m.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", m.StatusCode)
	}
	if !strings.Contains(m.Error, "404") {
		t.Errorf("Error = %q, want status mentioned", m.Error)
	}
	// Error records keep the full zeroed heading map.
	if len(m.Headings) != 6 {
		t.Errorf("Headings = %v, want 6 zeroed levels", m.Headings)
	}
}

func TestFetch_UnreachableHost(t *testing.T) {
	c := NewCrawler(WithTimeout(500 * time.Millisecond))
	m := c.Fetch(context.Background(), "http://127.0.0.1:1")

	if !m.Failed() {
		t.Fatal("expected error record for unreachable host")
	}
	if m.WordCount != 0 || m.Title != "" {
		t.Errorf("error record should hold zero values, got %+v", m)
	}
}

func TestFetch_SchemeDefault(t *testing.T) {
	c := NewCrawler(WithTimeout(500 * time.Millisecond))
	m := c.Fetch(context.Background(), "definitely-not-a-real-host.invalid")

	if !strings.HasPrefix(m.URL, "https://") {
		t.Errorf("URL = %q, want https scheme prepended", m.URL)
	}
}

func TestErrorMetrics(t *testing.T) {
	m := ErrorMetrics("https://example.com", "timeout")
	if !m.Failed() {
		t.Error("expected Failed()")
	}
	if m.Headings["h1"] != 0 || len(m.Headings) != 6 {
		t.Errorf("Headings = %v", m.Headings)
	}
}
