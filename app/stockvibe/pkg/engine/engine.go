package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/logger"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news/factory"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/sentiment"
)

// NewsLookup 新闻查询
type NewsLookup interface {
	Lookup(ctx context.Context, ticker string) ([]model.Article, error)
}

// Summarizer 情绪分析
type Summarizer interface {
	Summarize(ctx context.Context, ticker string, articles []model.Article) (*model.SentimentAnalysis, error)
}

// Options 聚合选项
type Options struct {
	Analysis     bool // 是否调用 AI
	MaxArticles  int  // 交给 AI 的文章上限
	AllowPartial bool // AI 失败时仍返回新闻，analysis 为 null
}

// Engine 核心处理引擎：先查新闻，再做情绪分析，两步串行
type Engine struct {
	lookup     NewsLookup
	summarizer Summarizer
	opts       Options
}

// New 使用已有组件创建引擎
func New(lookup NewsLookup, summarizer Summarizer, opts Options) *Engine {
	if opts.MaxArticles <= 0 {
		opts.MaxArticles = config.DefaultMaxArticles
	}
	return &Engine{
		lookup:     lookup,
		summarizer: summarizer,
		opts:       opts,
	}
}

// NewEngine 按配置创建引擎实例
func NewEngine(ctx context.Context, cfg *config.Config) (*Engine, error) {
	searcher, err := factory.NewSearcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("搜索客户端初始化失败: %w", err)
	}

	summarizer, err := sentiment.NewSummarizer(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}

	logger.Log.Infof("新闻数据源: %s, 模型: %s, 情绪分析: %v", searcher.Name(), cfg.LLM.Model, cfg.Analysis.Enabled)
	return New(news.NewClient(searcher), summarizer, Options{
		Analysis:     cfg.Analysis.Enabled,
		MaxArticles:  cfg.Analysis.MaxArticles,
		AllowPartial: cfg.Analysis.AllowPartial,
	}), nil
}

// Aggregate 查询 ticker 的新闻并生成情绪分析。ticker 需已规范化
func (e *Engine) Aggregate(ctx context.Context, ticker string) (*model.AggregatedResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"run":    uuid.NewString(),
		"ticker": ticker,
	})
	start := time.Now()

	articles, err := e.lookup.Lookup(ctx, ticker)
	if err != nil {
		log.Errorf("新闻查询失败: %v", err)
		return nil, err
	}
	log.Infof("获取到 %d 条新闻", len(articles))

	if !e.opts.Analysis {
		return model.NewAggregatedResult(ticker, articles, nil), nil
	}

	top := articles
	if len(top) > e.opts.MaxArticles {
		top = top[:e.opts.MaxArticles]
	}

	analysis, err := e.summarizer.Summarize(ctx, ticker, top)
	if err != nil {
		if !e.opts.AllowPartial {
			log.Errorf("情绪分析失败: %v", err)
			return nil, err
		}
		log.Warnf("情绪分析失败，仅返回新闻: %v", err)
		analysis = nil
	} else if analysis != nil {
		if !analysis.VibeLabel.Valid() {
			log.Warnf("模型返回了未知的情绪标签: %q", analysis.VibeLabel)
		}
		log.Infof("情绪分析完成: %d (%s)，耗时 %s", analysis.VibeScore, analysis.VibeLabel, time.Since(start).Round(time.Millisecond))
	}

	return model.NewAggregatedResult(ticker, articles, analysis), nil
}
