package di

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"spellcheck-app/internal/config"
	sharedAI "spellcheck-app/internal/modules/shared/infrastructure/ai"
	sharedCache "spellcheck-app/internal/modules/shared/infrastructure/cache"
	sharedDB "spellcheck-app/internal/modules/shared/infrastructure/database"
	"spellcheck-app/internal/modules/shared/infrastructure/speller"
	"spellcheck-app/internal/modules/spell/domain"
	spellHandler "spellcheck-app/internal/modules/spell/presentation/handler"
	spellUsecase "spellcheck-app/internal/modules/spell/usecase"
)

// Container DIコンテナ
type Container struct {
	// Shared Infrastructure
	checker   domain.SpellChecker
	cacheRepo *sharedCache.RedisRepository
	db        *bun.DB

	// Spell Module
	corrector         *spellUsecase.Corrector
	dictionaryUseCase *spellUsecase.DictionaryUseCase
	historyUseCase    *spellUsecase.HistoryUseCase
	spellHandler      *spellHandler.SpellHandler
}

// NewContainer 新しいContainerを作成。
// チェッカーは プロバイダー → ユーザー辞書（MySQL有効時） → キャッシュ（Redis有効時） の順に包む。
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{}

	// Shared Infrastructure: Spell Checker
	checker, err := NewSpellChecker(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize spell checker: %w", err)
	}

	// Shared Infrastructure: Database
	var (
		dictRepo    domain.DictionaryRepository
		historyRepo domain.HistoryRepository
	)
	if cfg.MySQL.Enabled {
		db, err := sharedDB.Open(&cfg.MySQL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		container.db = db

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := sharedDB.CreateSchema(ctx, db); err != nil {
			_ = container.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}

		dictRepo = sharedDB.NewBunDictionaryRepository(db)
		historyRepo = sharedDB.NewBunHistoryRepository(db)
		checker = spellUsecase.NewDictionarySpellChecker(checker, dictRepo)
	}

	// Shared Infrastructure: Cache Repository
	if cfg.Redis.Enabled {
		cacheRepo, err := sharedCache.NewRedisRepository(&cfg.Redis)
		if err != nil {
			_ = container.Close()
			return nil, fmt.Errorf("failed to initialize cache repository: %w", err)
		}
		container.cacheRepo = cacheRepo
		checker = spellUsecase.NewCachedSpellChecker(checker, cacheRepo, cfg.Redis.TTL())
	}
	container.checker = checker

	// Spell Module: UseCase
	container.corrector = spellUsecase.NewCorrector(checker)
	container.dictionaryUseCase = spellUsecase.NewDictionaryUseCase(dictRepo)
	container.historyUseCase = spellUsecase.NewHistoryUseCase(historyRepo)

	// Spell Module: Handler
	container.spellHandler = spellHandler.NewSpellHandler(
		container.corrector,
		container.dictionaryUseCase,
		container.historyUseCase,
	)

	return container, nil
}

// NewSpellChecker 設定のプロバイダーに応じたスペルチェッカーを作成
func NewSpellChecker(cfg *config.Config) (domain.SpellChecker, error) {
	switch cfg.Speller.Provider {
	case config.ProviderHanspell:
		return speller.NewHanspellRepository(&cfg.Speller), nil
	case config.ProviderClaude:
		return sharedAI.NewClaudeRepository(&cfg.Anthropic, &cfg.Speller), nil
	case config.ProviderOpenAI:
		return sharedAI.NewOpenAIRepository(&cfg.OpenAI, &cfg.Speller)
	default:
		return nil, fmt.Errorf("unknown speller provider: %q", cfg.Speller.Provider)
	}
}

// Corrector Correctorを取得
func (c *Container) Corrector() *spellUsecase.Corrector {
	return c.corrector
}

// SpellHandler スペルチェックAPIハンドラーを取得
func (c *Container) SpellHandler() *spellHandler.SpellHandler {
	return c.spellHandler
}

// Close リソースをクローズ
func (c *Container) Close() error {
	if c.cacheRepo != nil {
		if err := c.cacheRepo.Close(); err != nil {
			return fmt.Errorf("failed to close cache repository: %w", err)
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
