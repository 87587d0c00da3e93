package factory

import (
	"testing"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
)

func TestNewSearcher(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		wantErr  bool
	}{
		{provider: "", want: "NewsAPI"},
		{provider: "newsapi", want: "NewsAPI"},
		{provider: " Tavily ", want: "Tavily"},
		{provider: "searxng", want: "SearXNG"},
		{provider: "yahoo", want: "Yahoo Finance"},
		{provider: "finnhub", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := config.Default()
			cfg.News.Provider = tt.provider

			s, err := NewSearcher(cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for provider %q", tt.provider)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSearcher() error = %v", err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}
