package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spellcheck-app/internal/modules/spell/domain"
)

// CachedSpellChecker 結果をキャッシュするSpellChecker
type CachedSpellChecker struct {
	inner domain.SpellChecker
	cache domain.CacheRepository
	ttl   time.Duration
}

// NewCachedSpellChecker 新しいCachedSpellCheckerを作成
func NewCachedSpellChecker(inner domain.SpellChecker, cache domain.CacheRepository, ttl time.Duration) *CachedSpellChecker {
	return &CachedSpellChecker{inner: inner, cache: cache, ttl: ttl}
}

// Check キャッシュを参照し、なければ委譲して保存する。
// キャッシュの障害はログに残すだけでチェックは失敗させない。
func (c *CachedSpellChecker) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	key := c.cacheKey(text)

	cached, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var result domain.CheckResult
		jsonErr := json.Unmarshal(cached, &result)
		if jsonErr == nil {
			return &result, nil
		}
		slog.Warn("Discarding undecodable cache entry", "key", key, "error", jsonErr)
		if err := c.cache.Delete(ctx, key); err != nil {
			slog.Warn("Cache eviction failed", "key", key, "error", err)
		}
	case !errors.Is(err, domain.ErrCacheMiss):
		slog.Warn("Cache lookup failed", "key", key, "error", err)
	}

	result, err := c.inner.Check(ctx, text)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(result); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			slog.Warn("Cache store failed", "key", key, "error", err)
		}
	}

	return result, nil
}

// ProviderName プロバイダー名を返す
func (c *CachedSpellChecker) ProviderName() string {
	return c.inner.ProviderName()
}

// cacheKey キャッシュキーを生成
func (c *CachedSpellChecker) cacheKey(text string) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("spell:%s:%s", c.inner.ProviderName(), hex.EncodeToString(hash[:]))
}
