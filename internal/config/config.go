package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	LLM      LLMConfig      `yaml:"llm"`
	Search   SearchConfig   `yaml:"search"`
	Writing  WritingConfig  `yaml:"writing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	SkipMigrate     bool          `yaml:"skip_migrate"       env:"DATABASE_SKIP_MIGRATE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Supported language model providers.
const (
	ProviderClaude = "claude"
	ProviderOpenAI = "openai"
)

// LLMConfig selects and configures the language model client.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"claude"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"       env-default:"claude-sonnet-4-5-20250929"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"4096"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.7"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"60s"`
	MaxRetries  int           `yaml:"max_retries" env:"LLM_MAX_RETRIES" env-default:"2"`
}

// SearchConfig configures the web search client.
type SearchConfig struct {
	APIKey          string        `yaml:"api_key"           env:"SEARCH_API_KEY"`
	BaseURL         string        `yaml:"base_url"          env:"SEARCH_BASE_URL"          env-default:"https://api.tavily.com"`
	Depth           string        `yaml:"depth"             env:"SEARCH_DEPTH"             env-default:"advanced"`
	MaxResults      int           `yaml:"max_results"       env:"SEARCH_MAX_RESULTS"       env-default:"5"`
	Timeout         time.Duration `yaml:"timeout"           env:"SEARCH_TIMEOUT"           env-default:"20s"`
	RetryMaxElapsed time.Duration `yaml:"retry_max_elapsed" env:"SEARCH_RETRY_MAX_ELAPSED" env-default:"30s"`
}

// WritingConfig holds limits for submitted writing.
type WritingConfig struct {
	MaxContentLength int `yaml:"max_content_length" env:"WRITING_MAX_CONTENT_LENGTH" env-default:"10000"`
	MaxTopicLength   int `yaml:"max_topic_length"   env:"WRITING_MAX_TOPIC_LENGTH"   env-default:"200"`
	HintCount        int `yaml:"hint_count"         env:"WRITING_HINT_COUNT"         env-default:"10"`
}
