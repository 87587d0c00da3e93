package repo

import (
	"context"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

// StockRepo 股票新闻与情绪分析仓库接口
type StockRepo interface {
	// Aggregate 查询新闻并生成情绪分析，ticker 已规范化
	Aggregate(ctx context.Context, ticker string) (*model.AggregatedResult, error)
}

// CatalogRepo 首页静态数据
type CatalogRepo interface {
	Catalog(ctx context.Context) catalog.Catalog
}
