package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/Archit-Suthar/stockvibe/app/display/internal/conf"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/engine"
	svLogger "github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/logger"
)

// Data 外部数据源：新闻 + AI 引擎，以及首页静态数据
type Data struct {
	engine  *engine.Engine
	catalog catalog.Catalog
}

// NewData 初始化 stockvibe 引擎
func NewData(c *conf.Vibe, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	cfg, err := NewConfig(c)
	if err != nil {
		helper.Errorf("Failed to load stockvibe config: %v", err)
		return nil, nil, err
	}

	// 初始化日志
	if err := svLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		helper.Errorf("Failed to init stockvibe logger: %v", err)
		_ = svLogger.InitLogger("info", "") // 降级处理
	}

	// 初始化核心引擎，缺少密钥不影响启动
	eng, err := engine.NewEngine(context.Background(), cfg)
	if err != nil {
		helper.Errorf("Failed to init engine: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		helper.Info("closing the data resources")
	}
	return &Data{engine: eng, catalog: cfg.Catalog}, cleanup, nil
}

// NewConfig 将 internal/conf.Vibe 转换为 pkg/config.Config，并用环境变量覆盖
func NewConfig(c *conf.Vibe) (*config.Config, error) {
	cfg := config.Default()
	if c != nil {
		applyConf(cfg, c)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

func applyConf(cfg *config.Config, c *conf.Vibe) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	if c.Llm != nil {
		set(&cfg.LLM.BaseURL, c.Llm.BaseUrl)
		set(&cfg.LLM.APIKey, c.Llm.ApiKey)
		set(&cfg.LLM.Model, c.Llm.Model)
	}

	if n := c.News; n != nil {
		set(&cfg.News.Provider, n.Provider)
		if n.Newsapi != nil {
			set(&cfg.News.NewsAPI.APIKey, n.Newsapi.ApiKey)
			set(&cfg.News.NewsAPI.BaseURL, n.Newsapi.BaseUrl)
		}
		if n.Tavily != nil {
			set(&cfg.News.Tavily.APIKey, n.Tavily.ApiKey)
		}
		if n.Searxng != nil {
			set(&cfg.News.SearXNG.BaseURL, n.Searxng.BaseUrl)
			cfg.News.SearXNG.Timeout = int(n.Searxng.Timeout)
		}
		if n.Yahoo != nil {
			set(&cfg.News.Yahoo.BaseURL, n.Yahoo.BaseUrl)
		}
	}

	if a := c.Analysis; a != nil {
		if a.Enabled != nil {
			cfg.Analysis.Enabled = *a.Enabled
		}
		if a.MaxArticles > 0 {
			cfg.Analysis.MaxArticles = int(a.MaxArticles)
		}
		cfg.Analysis.AllowPartial = a.AllowPartial
	}

	if c.Log != nil {
		set(&cfg.Log.Level, c.Log.Level)
		set(&cfg.Log.File, c.Log.File)
	}

	if cat := c.Catalog; cat != nil && (len(cat.Trending) > 0 || len(cat.Suggestions) > 0) {
		cfg.Catalog = catalog.Catalog{
			Trending:    make([]catalog.Trending, 0, len(cat.Trending)),
			Suggestions: make([]catalog.Suggestion, 0, len(cat.Suggestions)),
		}
		for _, t := range cat.Trending {
			cfg.Catalog.Trending = append(cfg.Catalog.Trending, catalog.Trending{Ticker: t.Ticker, Change: t.Change, Up: t.Up})
		}
		for _, s := range cat.Suggestions {
			cfg.Catalog.Suggestions = append(cfg.Catalog.Suggestions, catalog.Suggestion{Ticker: s.Ticker, Name: s.Name, Sentiment: s.Sentiment, Logo: s.Logo})
		}
	}
}
