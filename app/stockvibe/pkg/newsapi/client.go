package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
)

const (
	DefaultBaseURL = "https://newsapi.org/v2/everything"
	providerName   = "NewsAPI"
	// KeySetting 缺少密钥时错误信息中使用的配置名
	KeySetting = "NEWS_API_KEY"
)

// Client NewsAPI.org 客户端
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient 创建 NewsAPI 客户端。apiKey 为空时仍可创建，调用时返回 ConfigurationError
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

// Ensure Client implements news.Searcher
var _ news.Searcher = (*Client)(nil)

func (c *Client) Name() string { return providerName }

// SearchResponse NewsAPI 响应
type SearchResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
}

// detail 拼接错误码和错误信息，均为空时返回空串
func (r *SearchResponse) detail() string {
	switch {
	case r.Code != "" && r.Message != "":
		return r.Code + ": " + r.Message
	case r.Code != "":
		return r.Code
	default:
		return r.Message
	}
}

// Article NewsAPI 单条文章，title/description/author 可能为 null
type Article struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         string  `json:"url"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
	PublishedAt string  `json:"publishedAt"`
	Author      *string `json:"author"`
}

// Search implements news.Searcher
func (c *Client) Search(ctx context.Context, req *news.Request) ([]model.Article, error) {
	if c.apiKey == "" {
		return nil, &errs.ConfigurationError{Setting: KeySetting}
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", req.Query)
	q.Set("language", req.Language)
	q.Set("sortBy", req.SortBy)
	q.Set("pageSize", strconv.Itoa(req.PageSize))
	q.Set("apiKey", c.apiKey)
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &errs.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Body: string(body)}
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Body: string(body), Err: fmt.Errorf("unmarshal response failed: %w", err)}
	}
	if searchResp.Status != "ok" {
		return nil, &errs.UpstreamError{
			Provider:   providerName,
			StatusCode: res.StatusCode,
			Status:     searchResp.Status,
			Detail:     searchResp.detail(),
			Body:       string(body),
		}
	}

	articles := make([]model.Article, 0, len(searchResp.Articles))
	for _, a := range searchResp.Articles {
		articles = append(articles, model.Article{
			Title:       deref(a.Title),
			Description: deref(a.Description),
			URL:         a.URL,
			SourceName:  a.Source.Name,
			PublishedAt: news.ParseTime(a.PublishedAt),
			Author:      deref(a.Author),
		})
	}
	return articles, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
