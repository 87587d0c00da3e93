package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"

	pb "github.com/Archit-Suthar/stockvibe/app/display/api/stock/v1"
	"github.com/Archit-Suthar/stockvibe/app/display/internal/usecase"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

type StockService struct {
	ucStock   *usecase.StockUseCase
	ucCatalog *usecase.CatalogUseCase
	log       *log.Helper
}

var _ pb.StockHTTPServer = (*StockService)(nil)

func NewStockService(ucStock *usecase.StockUseCase, ucCatalog *usecase.CatalogUseCase, logger log.Logger) *StockService {
	return &StockService{
		ucStock:   ucStock,
		ucCatalog: ucCatalog,
		log:       log.NewHelper(logger),
	}
}

func (s *StockService) GetStockNews(ctx context.Context, req *pb.GetStockNewsRequest) (*model.AggregatedResult, error) {
	return s.ucStock.GetStockNews(ctx, req.Ticker)
}

func (s *StockService) Health(ctx context.Context, req *pb.HealthRequest) (*pb.HealthReply, error) {
	return &pb.HealthReply{Status: "healthy"}, nil
}

func (s *StockService) GetCatalog(ctx context.Context, req *pb.GetCatalogRequest) (*pb.GetCatalogReply, error) {
	c := s.ucCatalog.Catalog(ctx)
	return &pb.GetCatalogReply{
		Trending:    nonNil(c.Trending),
		Suggestions: nonNil(c.Suggestions),
	}, nil
}

func (s *StockService) Suggestions(ctx context.Context, req *pb.SuggestionsRequest) (*pb.SuggestionsReply, error) {
	return &pb.SuggestionsReply{Suggestions: s.ucCatalog.Suggest(ctx, req.Q)}, nil
}

// Catalog 页面渲染使用
func (s *StockService) Catalog(ctx context.Context) catalog.Catalog {
	return s.ucCatalog.Catalog(ctx)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
