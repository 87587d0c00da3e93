package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/Archit-Suthar/stockvibe/app/display/internal/repo"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

type stockRepo struct {
	data *Data
	log  *log.Helper
}

func NewStockRepo(data *Data, logger log.Logger) repo.StockRepo {
	return &stockRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *stockRepo) Aggregate(ctx context.Context, ticker string) (*model.AggregatedResult, error) {
	r.log.WithContext(ctx).Debugf("aggregate %s", ticker)
	return r.data.engine.Aggregate(ctx, ticker)
}

type catalogRepo struct {
	data *Data
}

func NewCatalogRepo(data *Data) repo.CatalogRepo {
	return &catalogRepo{data: data}
}

func (r *catalogRepo) Catalog(ctx context.Context) catalog.Catalog {
	return r.data.catalog
}
