package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrEntryNotFound 辞書に単語が登録されていない
	ErrEntryNotFound = errors.New("dictionary entry not found")

	// ErrInvalidEntry 辞書エントリが不正
	ErrInvalidEntry = errors.New("invalid dictionary entry")

	// ErrStorageDisabled 永続ストレージ（MySQL）が無効
	ErrStorageDisabled = errors.New("persistent storage is disabled")
)

// DictionaryEntry ユーザー定義の補正語
type DictionaryEntry struct {
	ID          string
	Word        string
	Replacement string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate 辞書エントリを検証
func (e *DictionaryEntry) Validate() error {
	if strings.TrimSpace(e.Word) == "" {
		return fmt.Errorf("%w: word is required", ErrInvalidEntry)
	}
	if strings.IndexFunc(e.Word, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: word must not contain whitespace", ErrInvalidEntry)
	}
	if strings.TrimSpace(e.Replacement) == "" {
		return fmt.Errorf("%w: replacement is required", ErrInvalidEntry)
	}
	if e.Word == e.Replacement {
		return fmt.Errorf("%w: replacement must differ from word", ErrInvalidEntry)
	}
	return nil
}

// DictionaryRepository ユーザー辞書のリポジトリインターフェース
type DictionaryRepository interface {
	// Upsert 単語を登録（既存の場合は置換語を更新）
	Upsert(ctx context.Context, entry *DictionaryEntry) error

	// FindAll 全エントリを取得
	FindAll(ctx context.Context) ([]*DictionaryEntry, error)

	// FindByWord 単語で検索
	FindByWord(ctx context.Context, word string) (*DictionaryEntry, error)

	// Delete 単語を削除
	Delete(ctx context.Context, word string) error
}
