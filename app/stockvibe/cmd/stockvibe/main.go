package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/config"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/engine"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/logger"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/model"
	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/report"
)

var (
	flagconf string
	ticker   string
	output   string
)

func init() {
	flag.StringVar(&flagconf, "conf", "app/stockvibe/configs/config.yaml", "config path, eg: -conf config.yaml")
	flag.StringVar(&ticker, "ticker", "", "stock ticker symbol, eg: -ticker NVDA")
	flag.StringVar(&output, "out", "", "output html path, default output/<TICKER>.html")
}

func main() {
	flag.Parse()

	// .env 不存在时忽略
	_ = godotenv.Load()

	symbol := model.NormalizeTicker(ticker)
	if symbol == "" {
		log.Fatal("Ticker symbol is required")
	}

	// 1. 加载配置，配置文件不存在时只使用默认值和环境变量
	path := flagconf
	if _, err := os.Stat(path); err != nil {
		path = ""
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("无法加载配置文件: %v", err)
	}

	// 2. 初始化日志
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	logger.Log.Infof("开始分析 %s ...", symbol)

	ctx := context.Background()

	// 3. 初始化引擎
	eng, err := engine.NewEngine(ctx, cfg)
	if err != nil {
		logger.Log.Fatalf("引擎初始化失败: %v", err)
	}

	// 4. 查询新闻并生成分析
	result, err := eng.Aggregate(ctx, symbol)
	if err != nil {
		logger.Log.Fatalf("分析失败: %v", err)
	}

	// 5. 生成 HTML
	if err := generateHTML(result, output); err != nil {
		logger.Log.Fatalf("生成 HTML 失败: %v", err)
	}
}

func generateHTML(result *model.AggregatedResult, path string) error {
	if path == "" {
		path = filepath.Join("output", strings.ToLower(result.Ticker)+".html")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.Render(f, result, time.Now()); err != nil {
		return err
	}
	logger.Log.Infof("报告已生成: %s (%d 条新闻)", path, result.Count)
	return nil
}
