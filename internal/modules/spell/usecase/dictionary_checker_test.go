package usecase

import (
	"context"
	"errors"
	"testing"

	"spellcheck-app/internal/modules/spell/domain"
)

func TestApplyDictionary(t *testing.T) {
	dict := map[string]string{"ㅎㅇ": "하이", "ㄱㅅ": "감사합니다", "같다": "같다"}

	tests := []struct {
		name         string
		text         string
		want         string
		wantReplaced int
	}{
		{name: "正常系: 一致なし", text: "안녕하세요", want: "안녕하세요", wantReplaced: 0},
		{name: "正常系: 1語置換", text: "ㅎㅇ 여러분", want: "하이 여러분", wantReplaced: 1},
		{name: "正常系: 空白を保持", text: "  ㅎㅇ\tㄱㅅ\n", want: "  하이\t감사합니다\n", wantReplaced: 2},
		{name: "境界値: 部分一致は置換しない", text: "ㅎㅇㅎㅇ", want: "ㅎㅇㅎㅇ", wantReplaced: 0},
		{name: "境界値: 空文字列", text: "", want: "", wantReplaced: 0},
		{name: "境界値: 置換語が同じ語は誤りにしない", text: "같다 ㅎㅇ", want: "같다 하이", wantReplaced: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := applyDictionary(tt.text, dict)
			if got != tt.want {
				t.Errorf("applyDictionary() = %q, want %q", got, tt.want)
			}
			if len(replaced) != tt.wantReplaced {
				t.Errorf("len(replaced) = %d, want %d", len(replaced), tt.wantReplaced)
			}
		})
	}
}

func TestDictionarySpellChecker_Check(t *testing.T) {
	t.Run("正常系: 辞書が空なら委譲のみ", func(t *testing.T) {
		inner := &MockSpellChecker{}
		checker := NewDictionarySpellChecker(inner, &MockDictionaryRepository{})

		result, err := checker.Check(context.Background(), "ㅎㅇ")
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}
		if result.CheckedText != "ㅎㅇ" || len(result.Errors) != 0 {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("正常系: 辞書の語を置換して委譲", func(t *testing.T) {
		inner := &MockSpellChecker{
			CheckFunc: func(ctx context.Context, text string) (*domain.CheckResult, error) {
				return domain.NewCheckResult(text, "하이 여러분 반갑습니다", []domain.CheckError{{Original: "반갑슴니다", Corrected: "반갑습니다"}}, "mock"), nil
			},
		}
		repo := &MockDictionaryRepository{Entries: []*domain.DictionaryEntry{{Word: "ㅎㅇ", Replacement: "하이"}}}
		checker := NewDictionarySpellChecker(inner, repo)

		result, err := checker.Check(context.Background(), "ㅎㅇ 여러분 반갑슴니다")
		if err != nil {
			t.Fatalf("Check() error = %v", err)
		}

		if calls := inner.Calls(); len(calls) != 1 || calls[0] != "하이 여러분 반갑슴니다" {
			t.Errorf("inner received %q", calls)
		}
		if result.OriginalText != "ㅎㅇ 여러분 반갑슴니다" {
			t.Errorf("OriginalText = %q", result.OriginalText)
		}
		corrections := result.Corrections()
		if corrections["ㅎㅇ"] != "하이" || corrections["반갑슴니다"] != "반갑습니다" {
			t.Errorf("Corrections() = %v", corrections)
		}
		if result.Errors[0].Original != "ㅎㅇ" {
			t.Errorf("dictionary errors must come first: %+v", result.Errors)
		}
	})

	t.Run("境界値: 置換語が同じ語だけなら補正は空", func(t *testing.T) {
		inner := &MockSpellChecker{}
		repo := &MockDictionaryRepository{Entries: []*domain.DictionaryEntry{{Word: "같다", Replacement: "같다"}}}
		corrector := NewCorrector(NewDictionarySpellChecker(inner, repo))

		corrected, corrections, err := corrector.Correct(context.Background(), "같다")
		if err != nil {
			t.Fatalf("Correct() error = %v", err)
		}
		if corrected != "같다" {
			t.Errorf("corrected = %q, want %q", corrected, "같다")
		}
		if len(corrections) != 0 {
			t.Errorf("corrections = %v, want empty", corrections)
		}
	})

	t.Run("異常系: 辞書の読み込み失敗", func(t *testing.T) {
		inner := &MockSpellChecker{}
		checker := NewDictionarySpellChecker(inner, &MockDictionaryRepository{Err: errors.New("db down")})

		if _, err := checker.Check(context.Background(), "test"); err == nil {
			t.Error("Expected error, got nil")
		}
		if len(inner.Calls()) != 0 {
			t.Error("inner checker should not be called")
		}
	})

	t.Run("異常系: 内側のエラーをそのまま返す", func(t *testing.T) {
		sentinel := errors.New("quota")
		inner := &MockSpellChecker{
			CheckFunc: func(ctx context.Context, text string) (*domain.CheckResult, error) {
				return nil, sentinel
			},
		}
		repo := &MockDictionaryRepository{Entries: []*domain.DictionaryEntry{{Word: "a", Replacement: "b"}}}
		checker := NewDictionarySpellChecker(inner, repo)

		if _, err := checker.Check(context.Background(), "a"); err != sentinel {
			t.Errorf("Check() error = %v, want sentinel", err)
		}
	})
}
