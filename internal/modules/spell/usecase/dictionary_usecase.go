package usecase

import (
	"context"
	"strings"

	"spellcheck-app/internal/modules/spell/domain"
)

// DictionaryUseCase ユーザー辞書管理のユースケース
type DictionaryUseCase struct {
	repo domain.DictionaryRepository
}

// NewDictionaryUseCase 新しいDictionaryUseCaseを作成。repo が nil の場合は無効。
func NewDictionaryUseCase(repo domain.DictionaryRepository) *DictionaryUseCase {
	return &DictionaryUseCase{repo: repo}
}

// Add 単語を登録
func (uc *DictionaryUseCase) Add(ctx context.Context, word, replacement string) (*domain.DictionaryEntry, error) {
	if uc.repo == nil {
		return nil, domain.ErrStorageDisabled
	}

	entry := &domain.DictionaryEntry{
		Word:        strings.TrimSpace(word),
		Replacement: strings.TrimSpace(replacement),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List 登録済みの単語を取得
func (uc *DictionaryUseCase) List(ctx context.Context) ([]*domain.DictionaryEntry, error) {
	if uc.repo == nil {
		return nil, domain.ErrStorageDisabled
	}
	return uc.repo.FindAll(ctx)
}

// Remove 単語を削除
func (uc *DictionaryUseCase) Remove(ctx context.Context, word string) error {
	if uc.repo == nil {
		return domain.ErrStorageDisabled
	}
	return uc.repo.Delete(ctx, strings.TrimSpace(word))
}
