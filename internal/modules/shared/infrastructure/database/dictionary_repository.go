package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"spellcheck-app/internal/modules/spell/domain"
)

// DictionaryEntry BUNモデル
type DictionaryEntry struct {
	bun.BaseModel `bun:"table:dictionary_entries"`

	ID          string    `bun:"id,pk,type:varchar(36)"`
	Word        string    `bun:"word,notnull,unique,type:varchar(191)"`
	Replacement string    `bun:"replacement,notnull,type:varchar(255)"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// BunDictionaryRepository BUN実装
type BunDictionaryRepository struct {
	db *bun.DB
}

// NewBunDictionaryRepository 新しいBunDictionaryRepositoryを作成
func NewBunDictionaryRepository(db *bun.DB) *BunDictionaryRepository {
	return &BunDictionaryRepository{db: db}
}

// Upsert 単語を登録。既に存在する場合は置換語を更新する。
// entry には保存後の行の内容が反映される。
func (r *BunDictionaryRepository) Upsert(ctx context.Context, entry *domain.DictionaryEntry) error {
	now := time.Now()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	model := r.toModel(entry)
	_, err := r.db.NewInsert().
		Model(model).
		On("DUPLICATE KEY UPDATE").
		Set("replacement = VALUES(replacement)").
		Set("updated_at = VALUES(updated_at)").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert dictionary entry: %w", err)
	}

	// 更新時は既存行のIDと作成日時が残るので、保存された行で上書きする
	stored, err := r.FindByWord(ctx, entry.Word)
	if err != nil {
		return err
	}
	*entry = *stored
	return nil
}

// FindAll 全エントリを単語順に取得
func (r *BunDictionaryRepository) FindAll(ctx context.Context) ([]*domain.DictionaryEntry, error) {
	var models []DictionaryEntry
	if err := r.db.NewSelect().Model(&models).Order("word ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to find dictionary entries: %w", err)
	}

	entries := make([]*domain.DictionaryEntry, len(models))
	for i := range models {
		entries[i] = r.toEntity(&models[i])
	}
	return entries, nil
}

// FindByWord 単語で検索
func (r *BunDictionaryRepository) FindByWord(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	model := &DictionaryEntry{}
	err := r.db.NewSelect().Model(model).Where("word = ?", word).Scan(ctx)
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, word)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dictionary entry: %w", err)
	}
	return r.toEntity(model), nil
}

// Delete 単語を削除
func (r *BunDictionaryRepository) Delete(ctx context.Context, word string) error {
	res, err := r.db.NewDelete().
		Model((*DictionaryEntry)(nil)).
		Where("word = ?", word).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete dictionary entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEntryNotFound, word)
	}
	return nil
}

func (r *BunDictionaryRepository) toModel(entry *domain.DictionaryEntry) *DictionaryEntry {
	return &DictionaryEntry{
		ID:          entry.ID,
		Word:        entry.Word,
		Replacement: entry.Replacement,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}

func (r *BunDictionaryRepository) toEntity(model *DictionaryEntry) *domain.DictionaryEntry {
	return &domain.DictionaryEntry{
		ID:          model.ID,
		Word:        model.Word,
		Replacement: model.Replacement,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
