package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/insighthub/insighthub/internal/crawl"
)

// PutPage stores the metrics for a URL, replacing any previous entry.
func (db *DB) PutPage(m crawl.PageMetrics) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}

	_, err = db.conn.Exec(`
		INSERT INTO pages (url, metrics, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET metrics = excluded.metrics, fetched_at = excluded.fetched_at
	`, m.URL, string(payload), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("storing page %s: %w", m.URL, err)
	}
	return nil
}

// GetPage returns the cached metrics for a URL if they were fetched within
// maxAge. The second return value reports a cache hit.
func (db *DB) GetPage(url string, maxAge time.Duration) (crawl.PageMetrics, bool, error) {
	var payload, fetchedAt string
	row := db.conn.QueryRow("SELECT metrics, fetched_at FROM pages WHERE url = ?", url)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return crawl.PageMetrics{}, false, nil
		}
		return crawl.PageMetrics{}, false, fmt.Errorf("reading page %s: %w", url, err)
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || time.Since(at) > maxAge {
		return crawl.PageMetrics{}, false, nil
	}

	var m crawl.PageMetrics
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return crawl.PageMetrics{}, false, fmt.Errorf("unmarshaling page %s: %w", url, err)
	}
	return m, true, nil
}

// PrunePages deletes cache entries older than maxAge and reports how many
// were removed.
func (db *DB) PrunePages(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-maxAge).Format(time.RFC3339)
	res, err := db.conn.Exec("DELETE FROM pages WHERE fetched_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning pages: %w", err)
	}
	return res.RowsAffected()
}
