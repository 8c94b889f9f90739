package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// スペルチェッカーのプロバイダー
const (
	ProviderHanspell = "hanspell"
	ProviderClaude   = "claude"
	ProviderOpenAI   = "openai"
)

// Config アプリケーション全体の設定
type Config struct {
	Speller   SpellerConfig   `yaml:"speller"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Redis     RedisConfig     `yaml:"redis"`
	MySQL     MySQLConfig     `yaml:"mysql"`
}

// SpellerConfig 外部スペルチェッカーの設定
type SpellerConfig struct {
	Provider       string `yaml:"provider"`
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout HTTPタイムアウト（0以下はタイムアウトなし）
func (c SpellerConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AnthropicConfig Anthropic APIの設定
type AnthropicConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// OpenAIConfig OpenAI APIの設定
type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// RedisConfig Redisの設定
type RedisConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	KeyPrefix  string `yaml:"key_prefix"`
}

// TTL キャッシュの有効期限
func (c RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// MySQLConfig MySQLの設定
type MySQLConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// DSN go-sql-driver/mysql 用の接続文字列
func (c MySQLConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// EnvConfigPath 設定ファイルのパスを上書きする環境変数
const EnvConfigPath = "SPELLCHECK_CONFIG"

// DefaultPath 設定ファイルのパスを返す。
// $SPELLCHECK_CONFIG が優先され、なければ ~/.spellcheck-app/config.yaml。
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".spellcheck-app", "config.yaml")
}

// Load 設定ファイルを読み込む。ファイルに書かれていない項目はデフォルト値のまま。
func Load(configPath string) (*Config, error) {
	// 設定ファイルが存在しない場合はデフォルト設定を返す
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 環境変数の展開
	dataStr := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(dataStr), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 設定値を検証
func (c *Config) Validate() error {
	switch c.Speller.Provider {
	case ProviderHanspell:
		if c.Speller.Endpoint == "" {
			return fmt.Errorf("speller.endpoint is required for provider %q", ProviderHanspell)
		}
	case ProviderClaude, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown speller provider: %q", c.Speller.Provider)
	}
	return nil
}

// DefaultConfig デフォルト設定を返す
func DefaultConfig() *Config {
	// テスト環境では localhost を使用
	spellerHost := "hanspell"
	redisHost := "redis"
	mysqlHost := "mysql"
	if os.Getenv("GO_ENV") == "test" {
		spellerHost = "localhost"
		redisHost = "localhost"
		mysqlHost = "localhost"
	}

	return &Config{
		Speller: SpellerConfig{
			Provider:       ProviderHanspell,
			Endpoint:       fmt.Sprintf("http://%s:8000/v1/check", spellerHost),
			TimeoutSeconds: 30,
		},
		Anthropic: AnthropicConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			Model:     "claude-haiku-4-5-20251001",
			MaxTokens: 4096,
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  "gpt-4o-mini",
		},
		Redis: RedisConfig{
			Enabled:    false,
			Host:       redisHost,
			Port:       6379,
			Password:   "",
			DB:         0,
			TTLSeconds: 24 * 60 * 60,
			KeyPrefix:  "spellcheck",
		},
		MySQL: MySQLConfig{
			Enabled:  false,
			Host:     mysqlHost,
			Port:     3306,
			User:     "root",
			Password: os.Getenv("MYSQL_ROOT_PASSWORD"),
			Database: "spellcheck",
		},
	}
}

// Save 設定をファイルに保存する
func (c *Config) Save(configPath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
