package usecase

import (
	"context"

	"spellcheck-app/internal/modules/spell/domain"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// HistoryUseCase 補正履歴のユースケース
type HistoryUseCase struct {
	repo domain.HistoryRepository
}

// NewHistoryUseCase 新しいHistoryUseCaseを作成。repo が nil の場合は無効。
func NewHistoryUseCase(repo domain.HistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

// Enabled 履歴ストレージが有効か
func (uc *HistoryUseCase) Enabled() bool {
	return uc.repo != nil
}

// Record チェック結果を履歴に保存
func (uc *HistoryUseCase) Record(ctx context.Context, result *domain.CheckResult) error {
	if uc.repo == nil {
		return domain.ErrStorageDisabled
	}
	return uc.repo.Create(ctx, domain.NewCorrectionRecord(result))
}

// Recent 最近の履歴を取得
func (uc *HistoryUseCase) Recent(ctx context.Context, limit int) ([]*domain.CorrectionRecord, error) {
	if uc.repo == nil {
		return nil, domain.ErrStorageDisabled
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	return uc.repo.FindRecent(ctx, limit)
}
