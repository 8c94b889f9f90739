package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss キーが存在しない
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository キャッシュリポジトリのインターフェース
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
