package usecase

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/Archit-Suthar/stockvibe/app/display/internal/repo"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

var (
	// ErrTickerRequired 股票代码为空
	ErrTickerRequired = errors.BadRequest("TICKER_REQUIRED", "Ticker symbol is required")
)

// StockUseCase 股票情绪业务逻辑
type StockUseCase struct {
	repo repo.StockRepo
	log  *log.Helper
}

// NewStockUseCase 创建股票情绪业务逻辑实例
func NewStockUseCase(repo repo.StockRepo, logger log.Logger) *StockUseCase {
	return &StockUseCase{repo: repo, log: log.NewHelper(logger)}
}

// GetStockNews 校验并规范化 ticker，查询新闻与情绪分析。
// 任一外部调用失败都返回 500，错误信息为原始错误信息
func (uc *StockUseCase) GetStockNews(ctx context.Context, rawTicker string) (*model.AggregatedResult, error) {
	ticker := model.NormalizeTicker(rawTicker)
	if ticker == "" {
		return nil, ErrTickerRequired
	}

	result, err := uc.repo.Aggregate(ctx, ticker)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("Error in stock news endpoint: %v", err)
		return nil, errors.InternalServer("UPSTREAM_FAILURE", err.Error()).WithCause(err)
	}
	return result, nil
}

// CatalogUseCase 首页热门与自动补全
type CatalogUseCase struct {
	repo repo.CatalogRepo
}

// NewCatalogUseCase 创建首页数据业务逻辑实例
func NewCatalogUseCase(repo repo.CatalogRepo) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// Catalog 返回完整的热门列表和候选列表
func (uc *CatalogUseCase) Catalog(ctx context.Context) catalog.Catalog {
	return uc.repo.Catalog(ctx)
}

// Suggest 自动补全，最多返回 catalog.DefaultLimit 条
func (uc *CatalogUseCase) Suggest(ctx context.Context, query string) []catalog.Suggestion {
	return uc.repo.Catalog(ctx).Match(query, catalog.DefaultLimit)
}
