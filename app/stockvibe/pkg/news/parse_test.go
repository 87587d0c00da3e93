package news

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	want := time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC)
	for _, in := range []string{
		"2026-01-12T09:30:00Z",
		"Mon, 12 Jan 2026 09:30:00 GMT",
		"Mon, 12 Jan 2026 09:30:00 +0000",
		"2026-01-12 09:30:00",
	} {
		if got := ParseTime(in); !got.Equal(want) {
			t.Errorf("ParseTime(%q) = %v, want %v", in, got, want)
		}
	}
	if got := ParseTime("yesterday"); !got.IsZero() {
		t.Errorf("ParseTime(garbage) = %v, want zero", got)
	}
}

func TestSourceFromURL(t *testing.T) {
	tests := map[string]string{
		"https://www.reuters.com/markets/x": "reuters.com",
		"https://finance.yahoo.com/news/y":  "finance.yahoo.com",
		"not a url":                         "",
	}
	for in, want := range tests {
		if got := SourceFromURL(in); got != want {
			t.Errorf("SourceFromURL(%q) = %q, want %q", in, got, want)
		}
	}
}
