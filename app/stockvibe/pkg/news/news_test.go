package news

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

type fakeSearcher struct {
	articles []model.Article
	err      error
	requests []*Request
}

func (f *fakeSearcher) Search(ctx context.Context, req *Request) ([]model.Article, error) {
	f.requests = append(f.requests, req)
	return f.articles, f.err
}

func (f *fakeSearcher) Name() string { return "fake" }

func TestNewRequest(t *testing.T) {
	want := &Request{Ticker: "NVDA", Query: "Stock: NVDA", Language: "en", SortBy: "publishedAt", PageSize: 10}
	if diff := cmp.Diff(want, NewRequest("NVDA")); diff != "" {
		t.Errorf("NewRequest mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterRemoved(t *testing.T) {
	in := []model.Article{
		{Title: "[Removed]", URL: "https://removed.example.com"},
		{Title: "Real headline", URL: "https://a.example.com"},
		{Title: "", URL: "https://empty.example.com"},
		{Title: "   ", URL: "https://blank.example.com"},
		{Title: "Second headline", URL: "https://b.example.com"},
	}

	got := FilterRemoved(in)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Title != "Real headline" || got[1].Title != "Second headline" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestClientLookup(t *testing.T) {
	now := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	fs := &fakeSearcher{articles: []model.Article{
		{Title: "[Removed]"},
		{Title: "Real headline", URL: "https://example.com/1", SourceName: "Reuters", PublishedAt: now},
	}}

	got, err := NewClient(fs).Lookup(context.Background(), "NVDA")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if len(got) != 1 || got[0].Title != "Real headline" {
		t.Errorf("Lookup() = %+v", got)
	}
	if len(fs.requests) != 1 || fs.requests[0].Query != "Stock: NVDA" {
		t.Errorf("requests = %+v", fs.requests)
	}
}

func TestClientLookupNoMemoization(t *testing.T) {
	fs := &fakeSearcher{}
	c := NewClient(fs)
	for i := 0; i < 2; i++ {
		if _, err := c.Lookup(context.Background(), "AAPL"); err != nil {
			t.Fatal(err)
		}
	}
	if len(fs.requests) != 2 {
		t.Errorf("searcher called %d times, want 2", len(fs.requests))
	}
}

func TestClientLookupError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewClient(&fakeSearcher{err: boom}).Lookup(context.Background(), "AAPL")
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
