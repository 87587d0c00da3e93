package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/logger"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

const (
	// RemovedTitle 新闻源对已删除文章使用的占位标题
	RemovedTitle = "[Removed]"

	PageSize = 10
	Language = "en"
	SortBy   = "publishedAt"
)

// Searcher 定义通用的新闻搜索接口
type Searcher interface {
	Search(ctx context.Context, req *Request) ([]model.Article, error)
	Name() string
}

// Request 通用搜索请求
type Request struct {
	Ticker   string // 已规范化的股票代码，按代码检索的数据源使用
	Query    string // 全文检索数据源使用，例如 "Stock: NVDA"
	Language string
	SortBy   string
	PageSize int
}

// Query 构造固定格式的检索词
func Query(ticker string) string {
	return fmt.Sprintf("Stock: %s", ticker)
}

// NewRequest 按固定参数构造请求：最近优先、单一语言、最多 10 条
func NewRequest(ticker string) *Request {
	return &Request{
		Ticker:   ticker,
		Query:    Query(ticker),
		Language: Language,
		SortBy:   SortBy,
		PageSize: PageSize,
	}
}

// FilterRemoved 去掉标题为空或为 "[Removed]" 的文章，保持原有顺序
func FilterRemoved(articles []model.Article) []model.Article {
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		title := strings.TrimSpace(a.Title)
		if title == "" || title == RemovedTitle {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Client 新闻查询客户端。无状态，每次调用都会访问一次数据源
type Client struct {
	searcher Searcher
}

// NewClient 创建新闻查询客户端
func NewClient(searcher Searcher) *Client {
	return &Client{searcher: searcher}
}

// Lookup 查询某只股票的最新新闻。ticker 需由调用方转成大写
func (c *Client) Lookup(ctx context.Context, ticker string) ([]model.Article, error) {
	articles, err := c.searcher.Search(ctx, NewRequest(ticker))
	if err != nil {
		return nil, err
	}

	filtered := FilterRemoved(articles)
	logger.Log.Debugf("[%s] %s 返回 %d 条新闻，过滤后 %d 条", ticker, c.searcher.Name(), len(articles), len(filtered))
	return filtered, nil
}
