package usecase

import (
	"context"
	"errors"
	"testing"

	"spellcheck-app/internal/modules/spell/domain"
)

func TestDictionaryUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 追加・一覧・削除", func(t *testing.T) {
		repo := &MockDictionaryRepository{}
		uc := NewDictionaryUseCase(repo)

		entry, err := uc.Add(ctx, " ㅎㅇ ", " 하이 ")
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if entry.Word != "ㅎㅇ" || entry.Replacement != "하이" {
			t.Errorf("entry = %+v, want trimmed values", entry)
		}

		entries, err := uc.List(ctx)
		if err != nil || len(entries) != 1 {
			t.Fatalf("List() = %v, %v", entries, err)
		}

		if err := uc.Remove(ctx, "ㅎㅇ"); err != nil {
			t.Fatalf("Remove() error = %v", err)
		}
		if err := uc.Remove(ctx, "ㅎㅇ"); !errors.Is(err, domain.ErrEntryNotFound) {
			t.Errorf("Remove() error = %v, want ErrEntryNotFound", err)
		}
	})

	t.Run("異常系: 検証エラー", func(t *testing.T) {
		uc := NewDictionaryUseCase(&MockDictionaryRepository{})
		if _, err := uc.Add(ctx, "", "하이"); err == nil {
			t.Error("Expected validation error, got nil")
		}
	})

	t.Run("異常系: 置換語が単語と同じ", func(t *testing.T) {
		repo := &MockDictionaryRepository{}
		uc := NewDictionaryUseCase(repo)
		if _, err := uc.Add(ctx, "같다", " 같다 "); !errors.Is(err, domain.ErrInvalidEntry) {
			t.Errorf("Add() error = %v, want ErrInvalidEntry", err)
		}
		if len(repo.Entries) != 0 {
			t.Errorf("entries = %v, want none stored", repo.Entries)
		}
	})

	t.Run("異常系: ストレージ無効", func(t *testing.T) {
		uc := NewDictionaryUseCase(nil)
		if _, err := uc.Add(ctx, "a", "b"); !errors.Is(err, domain.ErrStorageDisabled) {
			t.Errorf("Add() error = %v", err)
		}
		if _, err := uc.List(ctx); !errors.Is(err, domain.ErrStorageDisabled) {
			t.Errorf("List() error = %v", err)
		}
		if err := uc.Remove(ctx, "a"); !errors.Is(err, domain.ErrStorageDisabled) {
			t.Errorf("Remove() error = %v", err)
		}
	})
}
