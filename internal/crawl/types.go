// Package crawl fetches a web page and extracts the SEO-relevant signals
// the analysis pipeline consumes.
package crawl

// PageMetrics is the raw measurement of one analyzed page. All fields are
// populated with safe zero values when the underlying signal is absent, so
// downstream consumers never need nil checks.
type PageMetrics struct {
	URL             string         `json:"url"`
	StatusCode      int            `json:"status_code"`
	LoadTime        float64        `json:"page_load_time"` // seconds
	Title           string         `json:"title"`
	MetaDescription string         `json:"meta_description"`
	MetaKeywords    string         `json:"meta_keywords"`
	Headings        map[string]int `json:"headings"` // "h1".."h6" -> count
	WordCount       int            `json:"word_count"`
	ImageCount      int            `json:"image_count"`
	InternalLinks   int            `json:"internal_links"`
	ExternalLinks   int            `json:"external_links"`
	MobileFriendly  bool           `json:"mobile_friendly"`
	HasSSL          bool           `json:"has_ssl"`
	ContentLength   int            `json:"content_length"`

	// Technical checks.
	HasCanonical   bool   `json:"has_canonical"`
	CanonicalURL   string `json:"canonical_url"`
	HasOGTags      bool   `json:"has_og_tags"`
	HasTwitterCard bool   `json:"has_twitter_card"`
	HasSchema      bool   `json:"has_schema"`
	HasGzip        bool   `json:"has_gzip"`
	RobotsMeta     string `json:"robots_meta"`

	// Error is non-empty when the fetch failed. The rest of the record
	// holds defaults so the analysis pipeline can still run.
	Error string `json:"error,omitempty"`
}

// Failed reports whether this record came from a failed fetch.
func (m PageMetrics) Failed() bool {
	return m.Error != ""
}

// emptyHeadings returns a heading map with every level present at zero.
// Generators treat "heading data exists" as a non-empty map, so even error
// records carry the full key set, matching the crawler's success shape.
func emptyHeadings() map[string]int {
	return map[string]int{"h1": 0, "h2": 0, "h3": 0, "h4": 0, "h5": 0, "h6": 0}
}

// ErrorMetrics builds the degraded record returned when a page cannot be
// fetched. Numeric and boolean fields hold safe defaults.
func ErrorMetrics(url, reason string) PageMetrics {
	return PageMetrics{
		URL:      url,
		Headings: emptyHeadings(),
		Error:    reason,
	}
}
