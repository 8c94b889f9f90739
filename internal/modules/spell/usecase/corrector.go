package usecase

import (
	"context"

	"spellcheck-app/internal/modules/spell/domain"
)

// Corrector 外部スペルチェッカーに委譲し、結果を (補正済みテキスト, 補正マップ) に整形する
type Corrector struct {
	checker domain.SpellChecker
}

// NewCorrector 新しいCorrectorを作成
func NewCorrector(checker domain.SpellChecker) *Corrector {
	return &Corrector{checker: checker}
}

// Correct テキストを補正する。
// 入力は検証しない（空文字列も渡す）。チェッカーのエラーはそのまま返す。
func (uc *Corrector) Correct(ctx context.Context, text string) (string, map[string]string, error) {
	result, err := uc.checker.Check(ctx, text)
	if err != nil {
		return "", nil, err
	}
	return result.CheckedText, result.Corrections(), nil
}

// Check チェック結果をそのまま返す
func (uc *Corrector) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	return uc.checker.Check(ctx, text)
}

// ProviderName プロバイダー名を取得
func (uc *Corrector) ProviderName() string {
	return uc.checker.ProviderName()
}
