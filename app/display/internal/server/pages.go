package server

import (
	"embed"
	"html/template"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"

	pb "github.com/Archit-Suthar/stockvibe/app/display/api/stock/v1"
	"github.com/Archit-Suthar/stockvibe/app/display/internal/service"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/report"
)

//go:embed assets/*
var assets embed.FS

var pageTpl = template.Must(template.ParseFS(assets, "assets/*.html"))

// PageData 页面模板数据
type PageData struct {
	Ticker  string
	Catalog catalog.Catalog
}

type pages struct {
	s *service.StockService
}

func newPages(s *service.StockService) *pages {
	return &pages{s: s}
}

func (p *pages) render(w nethttp.ResponseWriter, r *nethttp.Request, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTpl.ExecuteTemplate(w, name, data); err != nil {
		errorEncoder(w, r, errors.InternalServer("RENDER_FAILED", err.Error()))
	}
}

// index 首页：搜索框 + 热门股票
func (p *pages) index(w nethttp.ResponseWriter, r *nethttp.Request) {
	p.render(w, r, "index.html", PageData{Catalog: p.s.Catalog(r.Context())})
}

// stock 详情页，数据由页面加载后调用聚合接口获取
func (p *pages) stock(w nethttp.ResponseWriter, r *nethttp.Request) {
	ticker, ok := tickerFromPath(r.URL.Path, "/stock/")
	if !ok {
		nethttp.Redirect(w, r, "/", nethttp.StatusFound)
		return
	}
	p.render(w, r, "stock.html", PageData{Ticker: ticker, Catalog: p.s.Catalog(r.Context())})
}

// report 服务端渲染的完整报告
func (p *pages) report(w nethttp.ResponseWriter, r *nethttp.Request) {
	ticker, ok := tickerFromPath(r.URL.Path, "/report/")
	if !ok {
		nethttp.Redirect(w, r, "/", nethttp.StatusFound)
		return
	}

	result, err := p.s.GetStockNews(r.Context(), &pb.GetStockNewsRequest{Ticker: ticker})
	if err != nil {
		se := errors.FromError(err)
		nethttp.Error(w, se.Message, int(se.Code))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Render(w, result, time.Now()); err != nil {
		errorEncoder(w, r, errors.InternalServer("RENDER_FAILED", err.Error()))
	}
}

func tickerFromPath(path, prefix string) (string, bool) {
	t := model.NormalizeTicker(strings.Trim(strings.TrimPrefix(path, prefix), "/"))
	if t == "" || strings.Contains(t, "/") {
		return "", false
	}
	return t, true
}
