package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
)

const (
	defaultBaseURL = "https://api.tavily.com/search"
	providerName   = "Tavily"
	KeySetting     = "TAVILY_API_KEY"
)

// Client Tavily API 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的 Tavily 客户端
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  http.DefaultClient,
	}
}

// Ensure Client implements news.Searcher
var _ news.Searcher = (*Client)(nil)

func (c *Client) Name() string { return providerName }

// Search implements news.Searcher
func (c *Client) Search(ctx context.Context, req *news.Request) ([]model.Article, error) {
	if c.apiKey == "" {
		return nil, &errs.ConfigurationError{Setting: KeySetting}
	}

	resp, err := c.doSearch(ctx, SearchRequest{
		Query:      req.Query,
		Topic:      "news",
		MaxResults: req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(resp.Results))
	for _, r := range resp.Results {
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

// SearchRequest Tavily 搜索请求参数
type SearchRequest struct {
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth,omitempty"` // basic or advanced
	Topic       string `json:"topic,omitempty"`        // general or news
	MaxResults  int    `json:"max_results,omitempty"`
}

// SearchResponse Tavily 搜索响应
type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

// SearchResult 单个搜索结果
type SearchResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date"`
}

// doSearch 执行搜索 (Internal)
func (c *Client) doSearch(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	if req.SearchDepth == "" {
		req.SearchDepth = "basic"
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	httpReq.Header.Add("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Add("Content-Type", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode != http.StatusOK {
		return nil, &errs.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Body: string(body)}
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Body: string(body), Err: fmt.Errorf("unmarshal response failed: %w", err)}
	}

	return &searchResp, nil
}
