package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Speller.Provider != ProviderHanspell {
		t.Errorf("Speller.Provider = %s, want %s", cfg.Speller.Provider, ProviderHanspell)
	}

	if cfg.Speller.Endpoint == "" {
		t.Error("Expected non-empty speller endpoint")
	}

	if cfg.Redis.Enabled || cfg.MySQL.Enabled {
		t.Error("Expected redis and mysql to be disabled by default")
	}

	if cfg.Redis.TTL() != 24*time.Hour {
		t.Errorf("Redis.TTL() = %v, want 24h", cfg.Redis.TTL())
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestDefaultConfig_TestEnv(t *testing.T) {
	t.Setenv("GO_ENV", "test")

	cfg := DefaultConfig()

	if cfg.Speller.Endpoint != "http://localhost:8000/v1/check" {
		t.Errorf("Speller.Endpoint = %s", cfg.Speller.Endpoint)
	}
	if cfg.Redis.Host != "localhost" || cfg.MySQL.Host != "localhost" {
		t.Error("Expected localhost hosts in test env")
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv("TEST_OPENAI_KEY", "sk-test")
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `speller:
  provider: openai
openai:
  api_key: ${TEST_OPENAI_KEY}
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Speller.Provider != ProviderOpenAI {
		t.Errorf("Speller.Provider = %s, want openai", cfg.Speller.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("OpenAI.APIKey = %s, want expanded env value", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model == "" {
		t.Error("Expected default OpenAI model to be kept")
	}
	if cfg.Speller.TimeoutSeconds != 30 {
		t.Errorf("Speller.TimeoutSeconds = %d, want 30", cfg.Speller.TimeoutSeconds)
	}
}

func TestLoad_UnknownProvider(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("speller:\n  provider: aspell\n"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("Expected error for unknown provider, got nil")
	}
}

func TestSave(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Speller.Provider = ProviderClaude
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// ファイルが存在することを確認
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	// 読み込んで確認
	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loadedCfg.Speller.Provider != ProviderClaude {
		t.Error("Loaded config does not match saved config")
	}
}

func TestSave_InvalidPath(t *testing.T) {
	cfg := DefaultConfig()
	// 無効なパス（書き込み不可）
	err := cfg.Save("/invalid/path/that/does/not/exist/config.yaml")
	if err == nil {
		t.Error("Expected error for invalid path, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	// 無効なYAMLファイルを作成
	err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
	if err != nil {
		t.Fatalf("Failed to create invalid YAML file: %v", err)
	}

	// 無効なYAMLの場合はエラーを返すことを確認
	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestMySQLConfig_DSN(t *testing.T) {
	c := MySQLConfig{User: "u", Password: "p", Host: "h", Port: 3307, Database: "d"}
	want := "u:p@tcp(h:3307)/d?charset=utf8mb4&parseTime=true&loc=Local"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %s, want %s", got, want)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Run("正常系: 環境変数が優先される", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/etc/spellcheck/config.yaml")
		if got := DefaultPath(); got != "/etc/spellcheck/config.yaml" {
			t.Errorf("DefaultPath() = %s, want /etc/spellcheck/config.yaml", got)
		}
	})

	t.Run("正常系: ホームディレクトリ配下", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		home := t.TempDir()
		t.Setenv("HOME", home)
		want := filepath.Join(home, ".spellcheck-app", "config.yaml")
		if got := DefaultPath(); got != want {
			t.Errorf("DefaultPath() = %s, want %s", got, want)
		}
	})
}
