package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/Archit-Suthar/stockvibe/app/stockvibe/pkg/catalog"
)

// Config 项目配置结构体
type Config struct {
	LLM      LLMConfig       `yaml:"llm"`
	News     NewsConfig      `yaml:"news"`
	Analysis AnalysisConfig  `yaml:"analysis"`
	Catalog  catalog.Catalog `yaml:"catalog"`
	Log      LogConfig       `yaml:"log"`
}

// LLMConfig LLM 相关配置。BaseURL 需兼容 OpenAI 协议
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// NewsConfig 新闻搜索相关配置
type NewsConfig struct {
	Provider string        `yaml:"provider"`
	NewsAPI  NewsAPIConfig `yaml:"newsapi"`
	Tavily   TavilyConfig  `yaml:"tavily"`
	SearXNG  SearXNGConfig `yaml:"searxng"`
	Yahoo    YahooConfig   `yaml:"yahoo"`
}

// NewsAPIConfig NewsAPI.org 配置
type NewsAPIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// YahooConfig Yahoo Finance RSS 配置
type YahooConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AnalysisConfig AI 情绪分析配置
type AnalysisConfig struct {
	Enabled      bool `yaml:"enabled"`
	MaxArticles  int  `yaml:"max_articles"`
	AllowPartial bool `yaml:"allow_partial"` // AI 失败时仍返回新闻
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

const (
	DefaultAIBaseURL   = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultAIModel     = "gemini-1.5-flash"
	DefaultMaxArticles = 5
)

// Default 返回默认配置
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL: DefaultAIBaseURL,
			Model:   DefaultAIModel,
		},
		News: NewsConfig{Provider: "newsapi"},
		Analysis: AnalysisConfig{
			Enabled:     true,
			MaxArticles: DefaultMaxArticles,
		},
		Catalog: catalog.Default(),
		Log:     LogConfig{Level: "info"},
	}
}

// LoadConfig 从指定路径加载配置，再用环境变量覆盖。path 为空时只使用默认值和环境变量
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// envOverrides 可以通过环境变量提供的配置项，主要是两个密钥
type envOverrides struct {
	NewsAPIKey   string `envconfig:"NEWS_API_KEY"`
	TavilyAPIKey string `envconfig:"TAVILY_API_KEY"`
	NewsProvider string `envconfig:"NEWS_PROVIDER"`
	AIAPIKey     string `envconfig:"AI_API_KEY"`
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	AIBaseURL    string `envconfig:"AI_BASE_URL"`
	AIModel      string `envconfig:"AI_MODEL"`
	LogLevel     string `envconfig:"LOG_LEVEL"`
}

// ApplyEnv 用已设置的环境变量覆盖配置，未设置的保持原值
func (c *Config) ApplyEnv() error {
	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return fmt.Errorf("failed to process env: %w", err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.News.NewsAPI.APIKey, env.NewsAPIKey)
	set(&c.News.Tavily.APIKey, env.TavilyAPIKey)
	set(&c.News.Provider, env.NewsProvider)
	set(&c.LLM.APIKey, env.GeminiAPIKey)
	set(&c.LLM.APIKey, env.AIAPIKey)
	set(&c.LLM.BaseURL, env.AIBaseURL)
	set(&c.LLM.Model, env.AIModel)
	set(&c.Log.Level, env.LogLevel)
	return nil
}

// Normalize 为空缺的配置项填充默认值
func (c *Config) Normalize() {
	if c.News.Provider == "" {
		c.News.Provider = "newsapi"
	}
	if c.LLM.BaseURL == "" {
		c.LLM.BaseURL = DefaultAIBaseURL
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultAIModel
	}
	if c.Analysis.MaxArticles <= 0 {
		c.Analysis.MaxArticles = DefaultMaxArticles
	}
	if len(c.Catalog.Suggestions) == 0 && len(c.Catalog.Trending) == 0 {
		c.Catalog = catalog.Default()
	}
}
