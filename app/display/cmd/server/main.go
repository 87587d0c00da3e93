package main

import (
	"flag"
	"os"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"

	"github.com/Archit-Suthar/stockvibe/app/display/internal/conf"
	svLogger "github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/logger"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name 是服务的名称
	Name string = "stockvibe"
	// Version 是服务的版本号
	Version string
	// flagconf 是配置文件的路径命令行参数
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	// 初始化命令行参数，默认指向 display 项目的配置文件
	flag.StringVar(&flagconf, "conf", "app/display/configs/config.yaml", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *http.Server) *kratos.App {
	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(hs),
	)
}

func main() {
	flag.Parse()

	// .env 不存在时忽略，已有的环境变量优先
	_ = godotenv.Load()

	// 日志统一输出到 logrus，包含服务ID等上下文
	logger := log.With(svLogger.NewKratosLogger(nil),
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	// 初始化配置加载器
	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	// 扫描配置到 Bootstrap 结构体
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}
	applyPort(&bc)

	app, cleanup, err := initApp(bc.Server, bc.Vibe, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	if err := app.Run(); err != nil {
		panic(err)
	}
}

// applyPort PORT 环境变量覆盖监听地址
func applyPort(bc *conf.Bootstrap) {
	port := os.Getenv("PORT")
	if port == "" {
		return
	}
	if bc.Server == nil {
		bc.Server = &conf.Server{}
	}
	if bc.Server.Http == nil {
		bc.Server.Http = &conf.HTTP{}
	}
	bc.Server.Http.Addr = ":" + port
}
