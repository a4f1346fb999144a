package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/insight"
	"github.com/insighthub/insighthub/internal/keyword"
	"github.com/insighthub/insighthub/internal/pipeline"
)

func sampleResult() pipeline.Result {
	site := crawl.PageMetrics{
		URL:        "https://example.com",
		StatusCode: 200,
		LoadTime:   6.0,
		WordCount:  100,
		Headings:   map[string]int{"h1": 1},
	}
	res := pipeline.Result{
		Site:     site,
		Keywords: []keyword.Metric{{Keyword: "seo", SearchVolume: 2000, VolumeKnown: true}},
		Tips:     []string{"Write a descriptive title tag under 60 characters"},
	}
	res.KeywordSummary = keyword.Summarize(res.Keywords)
	res.Analysis = insight.Analyze(site, nil, res.Keywords)
	return res
}

func TestAssemble(t *testing.T) {
	r := Assemble("https://example.com", sampleResult())

	if r.ID == "" {
		t.Error("expected a run ID")
	}
	if r.URL != "https://example.com" {
		t.Errorf("URL = %q", r.URL)
	}
	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}

	other := Assemble("https://example.com", sampleResult())
	if other.ID == r.ID {
		t.Error("run IDs should be unique")
	}
}

func TestWriteJSON(t *testing.T) {
	r := Assemble("https://example.com", sampleResult())

	var buf bytes.Buffer
	if err := WriteJSON(&buf, r); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if got.ID != r.ID || got.URL != r.URL {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Result.Site.LoadTime != 6.0 {
		t.Errorf("Result.Site.LoadTime = %v", got.Result.Site.LoadTime)
	}
}

func TestRenderMarkdown_AllSections(t *testing.T) {
	r := Assemble("https://example.com", sampleResult())
	md := RenderMarkdown(r, DefaultOptions())

	for _, want := range []string{
		"# SEO Analysis Report: https://example.com",
		"## Executive Summary",
		"Overall SEO Score:",
		"## Action Plan",
		"### Immediate Actions",
		"## Detailed Insights",
		"### Site Analysis",
		"## Optimization Tips",
		"1. Write a descriptive title tag under 60 characters",
		"## Technical Data",
		"| Load time | 6.00s |",
		"### Keyword Summary",
		"- Keywords researched: 1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestRenderMarkdown_SectionToggles(t *testing.T) {
	r := Assemble("https://example.com", sampleResult())
	md := RenderMarkdown(r, Options{ExecutiveSummary: true})

	if !strings.Contains(md, "## Executive Summary") {
		t.Error("expected executive summary")
	}
	for _, absent := range []string{"## Action Plan", "## Detailed Insights", "## Technical Data", "## Optimization Tips"} {
		if strings.Contains(md, absent) {
			t.Errorf("markdown should not contain %q", absent)
		}
	}
}

func TestRenderMarkdown_EmptyTips(t *testing.T) {
	res := sampleResult()
	res.Tips = nil
	md := RenderMarkdown(Assemble("https://example.com", res), DefaultOptions())

	if strings.Contains(md, "## Optimization Tips") {
		t.Error("tips section should be skipped when there are no tips")
	}
}
