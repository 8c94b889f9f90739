package database

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"spellcheck-app/internal/modules/spell/domain"
)

// CorrectionHistory BUNモデル
type CorrectionHistory struct {
	bun.BaseModel `bun:"table:correction_history"`

	ID           string            `bun:"id,pk,type:varchar(36)"`
	OriginalText string            `bun:"original_text,notnull,type:text"`
	CheckedText  string            `bun:"checked_text,notnull,type:text"`
	Corrections  map[string]string `bun:"corrections,type:json"`
	Provider     string            `bun:"provider,notnull,type:varchar(50)"`
	ErrorCount   int               `bun:"error_count,notnull,default:0"`
	CreatedAt    time.Time         `bun:"created_at,notnull,default:current_timestamp"`
}

// BunHistoryRepository BUN実装
type BunHistoryRepository struct {
	db *bun.DB
}

// NewBunHistoryRepository 新しいBunHistoryRepositoryを作成
func NewBunHistoryRepository(db *bun.DB) *BunHistoryRepository {
	return &BunHistoryRepository{db: db}
}

// Create 履歴を保存
func (r *BunHistoryRepository) Create(ctx context.Context, record *domain.CorrectionRecord) error {
	model := &CorrectionHistory{
		ID:           record.ID,
		OriginalText: record.OriginalText,
		CheckedText:  record.CheckedText,
		Corrections:  record.Corrections,
		Provider:     record.Provider,
		ErrorCount:   record.ErrorCount,
		CreatedAt:    record.CreatedAt,
	}
	if _, err := r.db.NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create correction history: %w", err)
	}
	return nil
}

// FindRecent 新しい順に最大 limit 件取得
func (r *BunHistoryRepository) FindRecent(ctx context.Context, limit int) ([]*domain.CorrectionRecord, error) {
	var models []CorrectionHistory
	query := r.db.NewSelect().
		Model(&models).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to find correction history: %w", err)
	}

	records := make([]*domain.CorrectionRecord, len(models))
	for i, m := range models {
		corrections := m.Corrections
		if corrections == nil {
			corrections = map[string]string{}
		}
		records[i] = &domain.CorrectionRecord{
			ID:           m.ID,
			OriginalText: m.OriginalText,
			CheckedText:  m.CheckedText,
			Corrections:  corrections,
			Provider:     m.Provider,
			ErrorCount:   m.ErrorCount,
			CreatedAt:    m.CreatedAt,
		}
	}
	return records, nil
}
