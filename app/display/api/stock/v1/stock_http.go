package v1

import (
	"context"

	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
)

const (
	OperationStockGetStockNews = "/stockvibe.v1.Stock/GetStockNews"
	OperationStockHealth       = "/stockvibe.v1.Stock/Health"
	OperationStockGetCatalog   = "/stockvibe.v1.Stock/GetCatalog"
	OperationStockSuggestions  = "/stockvibe.v1.Stock/Suggestions"
)

type StockHTTPServer interface {
	GetStockNews(context.Context, *GetStockNewsRequest) (*model.AggregatedResult, error)
	Health(context.Context, *HealthRequest) (*HealthReply, error)
	GetCatalog(context.Context, *GetCatalogRequest) (*GetCatalogReply, error)
	Suggestions(context.Context, *SuggestionsRequest) (*SuggestionsReply, error)
}

func RegisterStockHTTPServer(s *http.Server, srv StockHTTPServer) {
	r := s.Route("/")
	r.GET("/api/stock/news/{ticker}", _Stock_GetStockNews0_HTTP_Handler(srv))
	r.GET("/api/health", _Stock_Health0_HTTP_Handler(srv))
	r.GET("/api/catalog", _Stock_GetCatalog0_HTTP_Handler(srv))
	r.GET("/api/suggestions", _Stock_Suggestions0_HTTP_Handler(srv))
}

func _Stock_GetStockNews0_HTTP_Handler(srv StockHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		in := GetStockNewsRequest{Ticker: ctx.Vars().Get("ticker")}
		http.SetOperation(ctx, OperationStockGetStockNews)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetStockNews(ctx, req.(*GetStockNewsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*model.AggregatedResult)
		return ctx.Result(200, reply)
	}
}

func _Stock_Health0_HTTP_Handler(srv StockHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in HealthRequest
		http.SetOperation(ctx, OperationStockHealth)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Health(ctx, req.(*HealthRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*HealthReply)
		return ctx.Result(200, reply)
	}
}

func _Stock_GetCatalog0_HTTP_Handler(srv StockHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		var in GetCatalogRequest
		http.SetOperation(ctx, OperationStockGetCatalog)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.GetCatalog(ctx, req.(*GetCatalogRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*GetCatalogReply)
		return ctx.Result(200, reply)
	}
}

func _Stock_Suggestions0_HTTP_Handler(srv StockHTTPServer) func(ctx http.Context) error {
	return func(ctx http.Context) error {
		in := SuggestionsRequest{Q: ctx.Query().Get("q")}
		http.SetOperation(ctx, OperationStockSuggestions)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Suggestions(ctx, req.(*SuggestionsRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		reply := out.(*SuggestionsReply)
		return ctx.Result(200, reply)
	}
}
