package model

import (
	"strings"
	"time"
)

// Article 单条新闻
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	SourceName  string    `json:"sourceName"`
	PublishedAt time.Time `json:"publishedAt"`
	Author      string    `json:"author,omitempty"`
}

// VibeLabel 情绪标签，取值范围固定且有序
type VibeLabel string

const (
	LabelPanic    VibeLabel = "PANIC"
	LabelBearish  VibeLabel = "BEARISH"
	LabelNeutral  VibeLabel = "NEUTRAL"
	LabelBullish  VibeLabel = "BULLISH"
	LabelEuphoria VibeLabel = "EUPHORIA"
)

// Labels 按从悲观到乐观排列
var Labels = []VibeLabel{LabelPanic, LabelBearish, LabelNeutral, LabelBullish, LabelEuphoria}

// Valid 标签是否属于固定集合
func (l VibeLabel) Valid() bool {
	for _, v := range Labels {
		if v == l {
			return true
		}
	}
	return false
}

// Insight 看多因素 / 看空风险中的一条
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// SentimentAnalysis AI 生成的情绪分析
type SentimentAnalysis struct {
	Ticker         string    `json:"ticker"`
	VibeScore      int       `json:"vibeScore"`
	VibeLabel      VibeLabel `json:"vibeLabel"`
	SummaryText    string    `json:"summaryText"`
	BullishDrivers []Insight `json:"bullishDrivers"`
	BearishRisks   []Insight `json:"bearishRisks"`
}

// AggregatedResult 聚合接口的唯一响应体。Count 始终等于 len(Articles)
type AggregatedResult struct {
	Ticker   string             `json:"ticker"`
	Count    int                `json:"count"`
	Articles []Article          `json:"articles"`
	Analysis *SentimentAnalysis `json:"analysis"`
}

// NewAggregatedResult 保证 Count 与 Articles 一致
func NewAggregatedResult(ticker string, articles []Article, analysis *SentimentAnalysis) *AggregatedResult {
	if articles == nil {
		articles = []Article{}
	}
	return &AggregatedResult{
		Ticker:   ticker,
		Count:    len(articles),
		Articles: articles,
		Analysis: analysis,
	}
}

// NormalizeTicker 去掉首尾空白并转成大写
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
