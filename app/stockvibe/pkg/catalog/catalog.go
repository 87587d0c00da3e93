package catalog

import "strings"

// Trending 首页"热门股票"快捷入口
type Trending struct {
	Ticker string `yaml:"ticker" json:"ticker"`
	Change string `yaml:"change" json:"change"`
	Up     bool   `yaml:"up" json:"up"`
}

// Suggestion 搜索框自动补全候选
type Suggestion struct {
	Ticker    string `yaml:"ticker" json:"ticker"`
	Name      string `yaml:"name" json:"name"`
	Sentiment string `yaml:"sentiment" json:"sentiment"`
	Logo      string `yaml:"logo" json:"logo"`
}

// Catalog 首页使用的静态数据，由配置注入，测试可替换
type Catalog struct {
	Trending    []Trending   `yaml:"trending" json:"trending"`
	Suggestions []Suggestion `yaml:"suggestions" json:"suggestions"`
}

// DefaultLimit 自动补全最多返回的条数
const DefaultLimit = 5

// Default 内置的默认数据
func Default() Catalog {
	return Catalog{
		Trending: []Trending{
			{Ticker: "AAPL", Change: "+2.14%", Up: true},
			{Ticker: "TSLA", Change: "+1.08%", Up: true},
			{Ticker: "NVDA", Change: "+5.62%", Up: true},
			{Ticker: "MSFT", Change: "-0.2%", Up: false},
			{Ticker: "AMZN", Change: "+0.98%", Up: true},
		},
		Suggestions: []Suggestion{
			{Ticker: "AMZN", Name: "Amazon.com, Inc.", Sentiment: "BULLISH", Logo: "🟠"},
			{Ticker: "AMD", Name: "Advanced Micro Devices, Inc.", Sentiment: "NEUTRAL", Logo: "⬛"},
			{Ticker: "AMC", Name: "AMC Entertainment Holdings", Sentiment: "BEARISH", Logo: "🔵"},
			{Ticker: "AAPL", Name: "Apple Inc.", Sentiment: "BULLISH", Logo: "⬛"},
			{Ticker: "NVDA", Name: "NVIDIA Corporation", Sentiment: "BULLISH", Logo: "🟢"},
			{Ticker: "TSLA", Name: "Tesla, Inc.", Sentiment: "NEUTRAL", Logo: "🔴"},
			{Ticker: "MSFT", Name: "Microsoft Corporation", Sentiment: "BULLISH", Logo: "🔷"},
			{Ticker: "GOOGL", Name: "Alphabet Inc.", Sentiment: "NEUTRAL", Logo: "🌈"},
			{Ticker: "META", Name: "Meta Platforms, Inc.", Sentiment: "BULLISH", Logo: "🔵"},
		},
	}
}

// Match 按代码前缀或名称子串匹配（不区分大小写），保持原有顺序，最多 limit 条。
// 空查询不返回任何结果
func (c Catalog) Match(query string, limit int) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Suggestion{}
	if q == "" {
		return out
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	for _, s := range c.Suggestions {
		if strings.HasPrefix(strings.ToLower(s.Ticker), q) || strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
