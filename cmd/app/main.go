package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spellcheck-app/internal/config"
	"spellcheck-app/internal/presentation/di"
	"spellcheck-app/internal/presentation/http/router"
)

// AppConfig アプリケーション設定
type AppConfig struct {
	ConfigPath string
	Port       string
}

// ServerInterface サーバーインターフェース（Seam化）
type ServerInterface interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// App アプリケーション構造体（Seamパターン）
type App struct {
	config     *AppConfig
	container  *di.Container
	server     *http.Server
	serverSeam ServerInterface // テスト用のSeam
}

// NewApp 新しいAppを作成
func NewApp(appCfg *AppConfig) (*App, error) {
	if appCfg.Port == "" {
		appCfg.Port = "8080"
	}

	cfg, err := config.Load(appCfg.ConfigPath)
	if err != nil {
		slog.Warn("Failed to load config. Using defaults.", "path", appCfg.ConfigPath, "error", err)
		cfg = config.DefaultConfig()
	}

	container, err := di.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize DI container: %w", err)
	}

	server := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      router.NewRouter(container),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Speller.Timeout() + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	app := &App{
		config:    appCfg,
		container: container,
		server:    server,
	}
	// デフォルトでは実際のサーバーを使用
	app.serverSeam = server

	return app, nil
}

// Start サーバーを起動
func (a *App) Start() error {
	a.printStartupMessage()
	return a.serverSeam.ListenAndServe()
}

// printStartupMessage 起動メッセージを出力
func (a *App) printStartupMessage() {
	fmt.Println("=== Spellcheck API Server ===")
	fmt.Printf("Spell Provider: %s\n", a.container.Corrector().ProviderName())
	fmt.Printf("Server listening on http://0.0.0.0:%s\n", a.config.Port)
	fmt.Println()
	fmt.Println("Endpoints:")
	fmt.Println("  GET    /health                 - Health check")
	fmt.Println("  POST   /api/v1/spell/check     - Spell check (맞춤법 검사)")
	fmt.Println("  GET    /api/v1/dictionary      - List user dictionary")
	fmt.Println("  POST   /api/v1/dictionary      - Add user dictionary entry")
	fmt.Println("  DELETE /api/v1/dictionary      - Remove user dictionary entry (?word=)")
	fmt.Println("  GET    /api/v1/history         - Recent corrections (?limit=)")
	fmt.Println()
}

// Shutdown サーバーをシャットダウン
func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server...")

	if err := a.serverSeam.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := a.container.Close(); err != nil {
		return fmt.Errorf("container close failed: %w", err)
	}

	slog.Info("Server stopped")
	return nil
}

// Run アプリケーションを実行（グレースフルシャットダウン付き）
func (a *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		if err := a.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		return a.Shutdown(ctx)
	}
}

// realMain 実際のmain処理（テスト可能にするため分離）
func realMain() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	app, err := NewApp(&AppConfig{
		ConfigPath: config.DefaultPath(),
		Port:       port,
	})
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}

	return app.Run()
}

func main() {
	if err := realMain(); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
