// Package testcontainer 統合テスト用のコンテナ起動ヘルパー
package testcontainer

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	rediscontainer "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"spellcheck-app/internal/config"
)

// RedisContainer Redisコンテナのラッパー
type RedisContainer struct {
	Host string
	Port string
}

// StartRedis Redisコンテナを起動する。停止は t.Cleanup に登録される。
func StartRedis(ctx context.Context, t *testing.T) (*RedisContainer, error) {
	t.Helper()

	container, err := rediscontainer.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start redis container: %w", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get redis host: %w", err)
	}

	port, err := container.MappedPort(ctx, "6379")
	if err != nil {
		return nil, fmt.Errorf("failed to get redis port: %w", err)
	}

	return &RedisContainer{Host: host, Port: port.Port()}, nil
}

// StartMySQL MySQLコンテナを起動し、接続設定を返す。停止は t.Cleanup に登録される。
func StartMySQL(ctx context.Context, t *testing.T) (*config.MySQLConfig, error) {
	t.Helper()

	const (
		database = "testdb"
		user     = "testuser"
		password = "testpass"
	)

	container, err := mysql.Run(ctx,
		"mysql:8.0",
		mysql.WithDatabase(database),
		mysql.WithUsername(user),
		mysql.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start mysql container: %w", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get mysql host: %w", err)
	}

	port, err := container.MappedPort(ctx, "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to get mysql port: %w", err)
	}

	return &config.MySQLConfig{
		Enabled:  true,
		Host:     host,
		Port:     port.Int(),
		User:     user,
		Password: password,
		Database: database,
	}, nil
}
