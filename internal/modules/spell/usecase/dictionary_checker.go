package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"spellcheck-app/internal/modules/spell/domain"
)

// DictionarySpellChecker ユーザー辞書の語を置換してから委譲するSpellChecker
type DictionarySpellChecker struct {
	inner domain.SpellChecker
	repo  domain.DictionaryRepository
}

// NewDictionarySpellChecker 新しいDictionarySpellCheckerを作成
func NewDictionarySpellChecker(inner domain.SpellChecker, repo domain.DictionaryRepository) *DictionarySpellChecker {
	return &DictionarySpellChecker{inner: inner, repo: repo}
}

// Check 空白区切りの語が辞書と完全一致すれば置換し、置換した語を誤りとして先頭に加える。
// 内側のチェッカーの誤りが後に並ぶので、同じ original はチェッカー側が勝つ。
func (c *DictionarySpellChecker) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	entries, err := c.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	if len(entries) == 0 {
		return c.inner.Check(ctx, text)
	}

	dict := make(map[string]string, len(entries))
	for _, e := range entries {
		dict[e.Word] = e.Replacement
	}

	rewritten, replaced := applyDictionary(text, dict)

	result, err := c.inner.Check(ctx, rewritten)
	if err != nil {
		return nil, err
	}

	result.OriginalText = text
	result.Errors = append(replaced, result.Errors...)
	return result, nil
}

// ProviderName プロバイダー名を返す
func (c *DictionarySpellChecker) ProviderName() string {
	return c.inner.ProviderName()
}

// applyDictionary 空白を保ったまま語を置換する
func applyDictionary(text string, dict map[string]string) (string, []domain.CheckError) {
	var (
		b        strings.Builder
		replaced []domain.CheckError
		start    = -1
	)
	b.Grow(len(text))

	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		// 置換語が同じ語は誤りとして数えない
		if repl, ok := dict[word]; ok && repl != word {
			b.WriteString(repl)
			replaced = append(replaced, domain.CheckError{Original: word, Corrected: repl})
		} else {
			b.WriteString(word)
		}
		start = -1
	}

	for i, r := range text {
		if unicode.IsSpace(r) {
			flush(i)
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))

	return b.String(), replaced
}
