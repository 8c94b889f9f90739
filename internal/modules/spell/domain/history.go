package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CorrectionRecord 補正履歴
type CorrectionRecord struct {
	ID           string
	OriginalText string
	CheckedText  string
	Corrections  map[string]string
	Provider     string
	ErrorCount   int
	CreatedAt    time.Time
}

// NewCorrectionRecord チェック結果から履歴を作成
func NewCorrectionRecord(result *CheckResult) *CorrectionRecord {
	return &CorrectionRecord{
		ID:           uuid.NewString(),
		OriginalText: result.OriginalText,
		CheckedText:  result.CheckedText,
		Corrections:  result.Corrections(),
		Provider:     result.Provider,
		ErrorCount:   result.ErrorCount(),
		CreatedAt:    time.Now(),
	}
}

// HistoryRepository 補正履歴のリポジトリインターフェース
type HistoryRepository interface {
	Create(ctx context.Context, record *CorrectionRecord) error
	FindRecent(ctx context.Context, limit int) ([]*CorrectionRecord, error)
}
