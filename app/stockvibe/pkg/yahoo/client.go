package yahoo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/errs"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/news"
)

const (
	DefaultBaseURL = "https://feeds.finance.yahoo.com/rss/2.0/headline"
	providerName   = "Yahoo Finance"
)

// Client Yahoo Finance RSS 客户端，按股票代码订阅，不需要密钥。可并发使用
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建 Yahoo Finance RSS 客户端，baseURL 为空时使用默认地址
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  http.DefaultClient,
	}
}

var _ news.Searcher = (*Client)(nil)

func (c *Client) Name() string { return providerName }

// Search 拉取 RSS 并转换为文章列表
func (c *Client) Search(ctx context.Context, req *news.Request) ([]model.Article, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("s", req.Ticker)
	q.Set("region", "US")
	q.Set("lang", "en-US")
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stockvibe/1.0)")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return nil, &errs.UpstreamError{Provider: providerName, StatusCode: res.StatusCode, Body: string(body)}
	}

	// gofeed.Parser 会缓存内部状态，不能在并发请求间共享
	feed, err := gofeed.NewParser().Parse(res.Body)
	if err != nil {
		return nil, &errs.UpstreamError{Provider: providerName, Err: fmt.Errorf("parse feed failed: %w", err)}
	}

	source := strings.TrimSpace(feed.Title)
	if source == "" {
		source = providerName
	}

	items := feed.Items
	if req.PageSize > 0 && len(items) > req.PageSize {
		items = items[:req.PageSize]
	}

	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		a := model.Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.Link,
			SourceName:  source,
		}
		if item.PublishedParsed != nil {
			a.PublishedAt = item.PublishedParsed.UTC()
		} else {
			a.PublishedAt = news.ParseTime(item.Published)
		}
		if len(item.Authors) > 0 && item.Authors[0] != nil {
			a.Author = item.Authors[0].Name
		}
		articles = append(articles, a)
	}
	return articles, nil
}
