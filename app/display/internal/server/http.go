package server

import (
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"

	pb "github.com/Archit-Suthar/stockvibe/app/display/api/stock/v1"
	"github.com/Archit-Suthar/stockvibe/app/display/internal/conf"
	"github.com/Archit-Suthar/stockvibe/app/display/internal/service"
)

// ErrorReply 所有错误响应的统一结构
type ErrorReply struct {
	Error string `json:"error"`
}

func NewHTTPServer(c *conf.Server, s *service.StockService, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
		http.ErrorEncoder(errorEncoder),
	}
	// 默认不设超时，慢请求由底层连接决定
	var timeout time.Duration
	if c != nil && c.Http != nil {
		if c.Http.Addr != "" {
			opts = append(opts, http.Address(c.Http.Addr))
		}
		if c.Http.Timeout != "" {
			if d, err := time.ParseDuration(c.Http.Timeout); err == nil {
				timeout = d
			}
		}
	}
	opts = append(opts, http.Timeout(timeout))

	srv := http.NewServer(opts...)
	pb.RegisterStockHTTPServer(srv, s)

	// 路由模板不匹配空 ticker，这里单独处理以返回 400
	srv.HandleFunc("/api/stock/news/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		_, err := s.GetStockNews(r.Context(), &pb.GetStockNewsRequest{})
		errorEncoder(w, r, err)
	})

	// 页面
	p := newPages(s)
	srv.HandleFunc("/", p.index)
	srv.HandlePrefix("/stock/", nethttp.HandlerFunc(p.stock))
	srv.HandlePrefix("/report/", nethttp.HandlerFunc(p.report))

	// 兜底：未知接口返回 404，其余页面跳回首页
	srv.HandlePrefix("/", nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			errorEncoder(w, r, errors.NotFound("NOT_FOUND", "Not found"))
			return
		}
		nethttp.Redirect(w, r, "/", nethttp.StatusFound)
	}))

	return srv
}

// errorEncoder 以 {"error": message} 输出错误，状态码取自 kratos 错误码
func errorEncoder(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	se := errors.FromError(err)
	codec, _ := http.CodecForRequest(r, "Accept")
	body, err := codec.Marshal(&ErrorReply{Error: se.Message})
	if err != nil {
		w.WriteHeader(nethttp.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/"+codec.Name())
	w.WriteHeader(int(se.Code))
	_, _ = w.Write(body)
}
