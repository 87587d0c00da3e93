package sentiment

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

// 第一对 ``` 之间的内容，允许带语言标记
var fenceRe = regexp.MustCompile("(?s)```[A-Za-z0-9_-]*[ \t]*\n?(.*?)```")

// Reply 模型返回的 JSON 结构
type Reply struct {
	Ticker    string `json:"ticker"`
	VibeMeter struct {
		Score int             `json:"score"`
		Label model.VibeLabel `json:"label"`
	} `json:"vibeMeter"`
	Summary        string          `json:"summary"`
	BullishDrivers []model.Insight `json:"bullishDrivers"`
	BearishRisks   []model.Insight `json:"bearishRisks"`
}

// ExtractJSON 取出第一个代码块中的内容，没有代码块时返回原文
func ExtractJSON(raw string) string {
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// ParseResponse 将模型回复解析为情绪分析结果。只做严格的 JSON 解析，不做修复或重试
func ParseResponse(raw string) (*model.SentimentAnalysis, error) {
	var reply Reply
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &reply); err != nil {
		return nil, &errs.AIResponseError{Raw: raw, Err: err}
	}

	return &model.SentimentAnalysis{
		Ticker:         reply.Ticker,
		VibeScore:      reply.VibeMeter.Score,
		VibeLabel:      reply.VibeMeter.Label,
		SummaryText:    reply.Summary,
		BullishDrivers: reply.BullishDrivers,
		BearishRisks:   reply.BearishRisks,
	}, nil
}
