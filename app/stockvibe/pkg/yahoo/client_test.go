package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Yahoo! Finance: AAPL News</title>
  <link>https://finance.yahoo.com/q/h?s=AAPL</link>
  <item>
    <title>Apple unveils new chips</title>
    <link>https://finance.yahoo.com/news/apple-chips</link>
    <description>Apple announced its next generation silicon.</description>
    <pubDate>Mon, 12 Jan 2026 14:30:00 +0000</pubDate>
  </item>
  <item>
    <title>[Removed]</title>
    <link>https://finance.yahoo.com/news/removed</link>
    <pubDate>Mon, 12 Jan 2026 13:00:00 +0000</pubDate>
  </item>
</channel>
</rss>`

func TestSearch(t *testing.T) {
	var symbol string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		symbol = r.URL.Query().Get("s")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	articles, err := NewClient(srv.URL).Search(context.Background(), news.NewRequest("AAPL"))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if symbol != "AAPL" {
		t.Errorf("s = %q, want AAPL", symbol)
	}
	// 过滤由 news.Client 负责，这里原样返回
	if len(articles) != 2 {
		t.Fatalf("len = %d, want 2", len(articles))
	}
	first := articles[0]
	if first.Title != "Apple unveils new chips" || first.URL != "https://finance.yahoo.com/news/apple-chips" {
		t.Errorf("first = %+v", first)
	}
	if first.SourceName != "Yahoo! Finance: AAPL News" {
		t.Errorf("SourceName = %q", first.SourceName)
	}
	if first.PublishedAt.Year() != 2026 || first.PublishedAt.Hour() != 14 {
		t.Errorf("PublishedAt = %v", first.PublishedAt)
	}
}

func TestSearchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Search(context.Background(), news.NewRequest("AAPL"))
	if !errs.IsUpstream(err) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
}

func TestSearchConcurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	var wg sync.WaitGroup
	errCh := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			articles, err := c.Search(context.Background(), news.NewRequest("NVDA"))
			if err == nil && len(articles) != 2 {
				t.Errorf("len = %d, want 2", len(articles))
			}
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			t.Errorf("Search() error = %v", err)
		}
	}
}
