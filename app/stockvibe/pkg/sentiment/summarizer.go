package sentiment

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/logger"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

const (
	providerName = "AI"
	// KeySetting 缺少密钥时错误信息中使用的配置名
	KeySetting = "AI_API_KEY"
)

// Generator 情绪分析需要的最小模型能力，eino 的 ChatModel 满足该接口
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

// Summarizer 调用生成式模型生成情绪分析，无内部状态
type Summarizer struct {
	gen Generator
}

// NewSummarizer 按配置创建 OpenAI 兼容的聊天模型
// 未配置密钥时不创建模型，Summarize 会返回 ConfigurationError
func NewSummarizer(ctx context.Context, cfg config.LLMConfig) (*Summarizer, error) {
	if cfg.APIKey == "" {
		logger.Log.Warnf("%s 未配置，情绪分析将不可用", KeySetting)
		return &Summarizer{}, nil
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM 初始化失败: %w", err)
	}
	return &Summarizer{gen: chatModel}, nil
}

// NewSummarizerWithGenerator 使用已有的模型实现，gen 为 nil 等同于未配置密钥
func NewSummarizerWithGenerator(gen Generator) *Summarizer {
	return &Summarizer{gen: gen}
}

// Summarize 为 ticker 生成情绪分析。调用方负责截断文章数量
func (s *Summarizer) Summarize(ctx context.Context, ticker string, articles []model.Article) (*model.SentimentAnalysis, error) {
	if s.gen == nil {
		return nil, &errs.ConfigurationError{Setting: KeySetting}
	}

	messages := []*schema.Message{
		schema.UserMessage(BuildPrompt(ticker, articles)),
	}

	resp, err := s.gen.Generate(ctx, messages)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: err}
	}
	if resp == nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: fmt.Errorf("empty response")}
	}

	logger.Log.Debugf("[%s] 模型返回 %d 字符", ticker, len(resp.Content))
	return ParseResponse(resp.Content)
}
