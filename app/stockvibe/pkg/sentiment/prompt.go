package sentiment

import (
	"fmt"
	"strings"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

const promptTpl = `You are a neutral financial news analyst. Read the news articles about the stock %s listed below and describe the current market sentiment ("vibe") around it.

Rules:
- Do NOT give investment advice. Never use advisory verbs such as "buy", "sell" or "hold". Use descriptive words such as "bullish", "volatile" or "cautious" instead.
- Base every claim strictly on the supplied articles. Do not add outside facts.

Respond with a single JSON object and nothing else, using exactly this structure:
{
  "ticker": "%s",
  "vibeMeter": {
    "score": <integer from 0 (extreme panic) to 100 (extreme euphoria)>,
    "label": "<one of: %s>"
  },
  "summary": "<a 4-6 sentence narrative summary of the news sentiment>",
  "bullishDrivers": [
    {"title": "<short title>", "detail": "<detail anchored to a fact from the articles>"},
    {"title": "<short title>", "detail": "<detail anchored to a fact from the articles>"}
  ],
  "bearishRisks": [
    {"title": "<short title>", "detail": "<detail anchored to a fact from the articles>"},
    {"title": "<short title>", "detail": "<detail anchored to a fact from the articles>"}
  ]
}

Provide exactly 2 bullish drivers and exactly 2 bearish risks.

Articles:
%s`

// BuildPrompt 组装发送给模型的完整提示词，文章按输入顺序编号
func BuildPrompt(ticker string, articles []model.Article) string {
	labels := make([]string, 0, len(model.Labels))
	for _, l := range model.Labels {
		labels = append(labels, string(l))
	}

	var sb strings.Builder
	for i, a := range articles {
		desc := strings.TrimSpace(a.Description)
		if desc == "" {
			desc = "N/A"
		}
		published := "N/A"
		if !a.PublishedAt.IsZero() {
			published = a.PublishedAt.UTC().Format("2006-01-02T15:04:05Z")
		}
		fmt.Fprintf(&sb, "%d. Title: %s\n   Description: %s\n   Published: %s\n", i+1, a.Title, desc, published)
	}

	return fmt.Sprintf(promptTpl, ticker, ticker, strings.Join(labels, ", "), sb.String())
}
