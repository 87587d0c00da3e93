package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
)

func newTestClient(url string) *Client {
	c := NewClient("tvly-key")
	c.baseURL = url
	return c
}

func TestSearch(t *testing.T) {
	var got SearchRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"query":"Stock: AAPL","results":[
			{"title":"Apple beats estimates","url":"https://www.cnbc.com/apple","content":"Services revenue hit a record","score":0.9,"published_date":"Mon, 12 Jan 2026 09:30:00 GMT"}
		]}`))
	}))
	defer srv.Close()

	articles, err := newTestClient(srv.URL).Search(context.Background(), news.NewRequest("AAPL"))
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if auth != "Bearer tvly-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Query != "Stock: AAPL" || got.Topic != "news" || got.MaxResults != 10 || got.SearchDepth != "basic" {
		t.Errorf("request = %+v", got)
	}
	if len(articles) != 1 {
		t.Fatalf("len = %d", len(articles))
	}
	a := articles[0]
	if a.SourceName != "cnbc.com" || a.Description != "Services revenue hit a record" || a.PublishedAt.IsZero() {
		t.Errorf("article = %+v", a)
	}
}

func TestSearchErrors(t *testing.T) {
	if _, err := NewClient("").Search(context.Background(), news.NewRequest("AAPL")); !errs.IsConfiguration(err) {
		t.Errorf("missing key err = %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Search(context.Background(), news.NewRequest("AAPL"))
	if !errs.IsUpstream(err) {
		t.Errorf("err = %v, want UpstreamError", err)
	}
}
