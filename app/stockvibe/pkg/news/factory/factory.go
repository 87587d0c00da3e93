package factory

import (
	"fmt"
	"strings"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/newsapi"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/searxng"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/tavily"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/yahoo"
)

const (
	ProviderNewsAPI = "newsapi"
	ProviderTavily  = "tavily"
	ProviderSearXNG = "searxng"
	ProviderYahoo   = "yahoo"
)

// NewSearcher 根据配置创建新闻搜索实例
// 缺少密钥不在这里报错，而是在每次查询时返回 ConfigurationError，进程照常启动
func NewSearcher(cfg *config.Config) (news.Searcher, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.News.Provider))
	if provider == "" {
		provider = ProviderNewsAPI
	}

	switch provider {
	case ProviderNewsAPI:
		return newsapi.NewClient(cfg.News.NewsAPI.APIKey, cfg.News.NewsAPI.BaseURL), nil
	case ProviderTavily:
		return tavily.NewClient(cfg.News.Tavily.APIKey), nil
	case ProviderSearXNG:
		return searxng.NewClient(cfg.News.SearXNG.BaseURL, cfg.News.SearXNG.Timeout), nil
	case ProviderYahoo:
		return yahoo.NewClient(cfg.News.Yahoo.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown news provider: %s", provider)
	}
}
