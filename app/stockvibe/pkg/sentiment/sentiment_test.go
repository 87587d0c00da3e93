package sentiment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/google/go-cmp/cmp"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

const nvdaReply = "```json\n" + `{
  "ticker": "NVDA",
  "vibeMeter": {"score": 78, "label": "BULLISH"},
  "summary": "Demand for data center chips remains strong.",
  "bullishDrivers": [
    {"title": "Data center demand", "detail": "Revenue from data centers rose sharply."},
    {"title": "New product cycle", "detail": "The next GPU generation started shipping."}
  ],
  "bearishRisks": [
    {"title": "Export limits", "detail": "New export rules may cut sales to some regions."},
    {"title": "Valuation", "detail": "Analysts flagged a stretched valuation."}
  ]
}` + "\n```"

// mockGenerator 记录收到的消息并返回固定内容
type mockGenerator struct {
	reply    string
	err      error
	messages []*schema.Message
}

func (m *mockGenerator) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	m.messages = input
	if m.err != nil {
		return nil, m.err
	}
	return schema.AssistantMessage(m.reply, nil), nil
}

func TestParseResponseFenced(t *testing.T) {
	got, err := ParseResponse(nvdaReply)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if got.VibeScore != 78 || got.VibeLabel != model.LabelBullish || got.Ticker != "NVDA" {
		t.Errorf("got score=%d label=%s ticker=%s", got.VibeScore, got.VibeLabel, got.Ticker)
	}

	// 形状与取值范围
	if got.VibeScore < 0 || got.VibeScore > 100 {
		t.Errorf("score out of range: %d", got.VibeScore)
	}
	if !got.VibeLabel.Valid() {
		t.Errorf("label %q not in set", got.VibeLabel)
	}
	if len(got.BullishDrivers) != 2 || len(got.BearishRisks) != 2 {
		t.Errorf("drivers=%d risks=%d, want 2/2", len(got.BullishDrivers), len(got.BearishRisks))
	}
}

func TestParseResponseIgnoresProse(t *testing.T) {
	raw := "Here is the analysis you asked for:\n" + nvdaReply + "\nLet me know if you need anything else. ```note```"

	got, err := ParseResponse(raw)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if got.VibeScore != 78 {
		t.Errorf("VibeScore = %d, want 78", got.VibeScore)
	}
}

func TestParseResponseVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no fence", `{"ticker":"AAPL","vibeMeter":{"score":50,"label":"NEUTRAL"}}`},
		{"untagged fence", "```\n{\"ticker\":\"AAPL\",\"vibeMeter\":{\"score\":50,\"label\":\"NEUTRAL\"}}\n```"},
		{"inline fence", "```json {\"ticker\":\"AAPL\",\"vibeMeter\":{\"score\":50,\"label\":\"NEUTRAL\"}}```"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseResponse(tt.raw)
			if err != nil {
				t.Fatalf("ParseResponse() error = %v", err)
			}
			want := &model.SentimentAnalysis{Ticker: "AAPL", VibeScore: 50, VibeLabel: model.LabelNeutral}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseResponseInvalid(t *testing.T) {
	raw := "```json\n{\"ticker\": \"NVDA\", \"vibeMeter\": \n```"

	_, err := ParseResponse(raw)
	var aiErr *errs.AIResponseError
	if !errors.As(err, &aiErr) {
		t.Fatalf("err = %v, want AIResponseError", err)
	}
	if got, ok := errs.RawAIResponse(err); !ok || got != raw {
		t.Errorf("raw = %q, want %q", got, raw)
	}
}

func TestBuildPrompt(t *testing.T) {
	articles := []model.Article{
		{Title: "First headline", Description: "Something happened", PublishedAt: time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC)},
		{Title: "Second headline"},
	}
	prompt := BuildPrompt("NVDA", articles)

	for _, want := range []string{
		"NVDA",
		"1. Title: First headline",
		"Description: Something happened",
		"Published: 2026-01-12T09:30:00Z",
		"2. Title: Second headline",
		"Description: N/A",
		"PANIC, BEARISH, NEUTRAL, BULLISH, EUPHORIA",
		"exactly 2 bullish drivers",
		`"buy"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Index(prompt, "First headline") > strings.Index(prompt, "Second headline") {
		t.Error("articles should keep input order")
	}
}

func TestSummarize(t *testing.T) {
	gen := &mockGenerator{reply: nvdaReply}
	s := NewSummarizerWithGenerator(gen)

	got, err := s.Summarize(context.Background(), "NVDA", []model.Article{{Title: "Chips"}})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got.VibeScore != 78 {
		t.Errorf("VibeScore = %d", got.VibeScore)
	}
	if len(gen.messages) != 1 || gen.messages[0].Role != schema.User {
		t.Fatalf("expected a single user message, got %+v", gen.messages)
	}
	if !strings.Contains(gen.messages[0].Content, "1. Title: Chips") {
		t.Errorf("prompt does not embed articles")
	}
}

func TestSummarizeErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		s, err := NewSummarizer(context.Background(), config.LLMConfig{})
		if err != nil {
			t.Fatalf("NewSummarizer() error = %v", err)
		}
		_, err = s.Summarize(context.Background(), "NVDA", nil)
		if !errs.IsConfiguration(err) || !strings.Contains(err.Error(), KeySetting) {
			t.Errorf("err = %v, want ConfigurationError naming %s", err, KeySetting)
		}
	})

	t.Run("upstream", func(t *testing.T) {
		s := NewSummarizerWithGenerator(&mockGenerator{err: errors.New("connection reset")})
		_, err := s.Summarize(context.Background(), "NVDA", nil)
		if !errs.IsUpstream(err) {
			t.Errorf("err = %v, want UpstreamError", err)
		}
	})

	t.Run("unparseable", func(t *testing.T) {
		s := NewSummarizerWithGenerator(&mockGenerator{reply: "I cannot help with that."})
		_, err := s.Summarize(context.Background(), "NVDA", nil)
		if raw, ok := errs.RawAIResponse(err); !ok || raw != "I cannot help with that." {
			t.Errorf("err = %v", err)
		}
	})
}
