package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
)

const providerName = "SearXNG"

// Client SearXNG API 客户端
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 SearXNG 客户端。timeout 单位为秒，0 表示不设置
func NewClient(baseURL string, timeout int) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// Ensure Client implements news.Searcher
var _ news.Searcher = (*Client)(nil)

func (c *Client) Name() string { return providerName }

// SearchResponse SearXNG 响应结构
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// SearchResult SearXNG 单条结果
type SearchResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	PublishedDate string  `json:"publishedDate"` // 注意: 字段名可能因版本而异
	Engine        string  `json:"engine"`
	Score         float64 `json:"score"`
}

// Search 执行搜索
func (c *Client) Search(ctx context.Context, req *news.Request) ([]model.Article, error) {
	if c.baseURL == "" {
		return nil, &errs.ConfigurationError{Setting: "news.searxng.base_url"}
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = "/search"

	q := u.Query()
	q.Set("q", req.Query)
	q.Set("format", "json")
	q.Set("categories", "news")
	q.Set("language", req.Language)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	// 添加 User-Agent 避免被简单的反爬虫策略拦截
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return nil, &errs.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Body: string(body)}
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(res.Body).Decode(&searchResp); err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: fmt.Errorf("decode response failed: %w", err)}
	}

	// SearXNG 不支持 pageSize，这里截断
	results := searxngResults(searchResp.Results, req.PageSize)
	articles := make([]model.Article, 0, len(results))
	for _, r := range results {
		articles = append(articles, model.Article{
			Title:       r.Title,
			Description: r.Content,
			URL:         r.URL,
			SourceName:  news.SourceFromURL(r.URL),
			PublishedAt: news.ParseTime(r.PublishedDate),
		})
	}
	return articles, nil
}

func searxngResults(results []SearchResult, limit int) []SearchResult {
	if limit > 0 && len(results) > limit {
		return results[:limit]
	}
	return results
}
