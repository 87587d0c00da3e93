package conf

type Bootstrap struct {
	Server *Server
	Vibe   *Vibe
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Vibe 股票情绪分析相关配置，密钥通常由环境变量覆盖
type Vibe struct {
	Llm      *LLM      `json:"llm"`
	News     *News     `json:"news"`
	Analysis *Analysis `json:"analysis"`
	Log      *Log      `json:"log"`
	Catalog  *Catalog  `json:"catalog"`
}

type LLM struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Model   string `json:"model"`
}

type News struct {
	Provider string   `json:"provider"`
	Newsapi  *NewsAPI `json:"newsapi"`
	Tavily   *Tavily  `json:"tavily"`
	Searxng  *SearXNG `json:"searxng"`
	Yahoo    *Yahoo   `json:"yahoo"`
}

type NewsAPI struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
}

type Tavily struct {
	ApiKey string `json:"api_key"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Yahoo struct {
	BaseUrl string `json:"base_url"`
}

type Analysis struct {
	Enabled      *bool `json:"enabled"` // 未配置时默认开启
	MaxArticles  int32 `json:"max_articles"`
	AllowPartial bool  `json:"allow_partial"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Catalog struct {
	Trending    []*Trending   `json:"trending"`
	Suggestions []*Suggestion `json:"suggestions"`
}

type Trending struct {
	Ticker string `json:"ticker"`
	Change string `json:"change"`
	Up     bool   `json:"up"`
}

type Suggestion struct {
	Ticker    string `json:"ticker"`
	Name      string `json:"name"`
	Sentiment string `json:"sentiment"`
	Logo      string `json:"logo"`
}
