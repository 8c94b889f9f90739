package domain

import (
	"context"
	"errors"
)

var (
	// ErrMalformedResponse スペルチェッカーの応答が契約に合わない
	ErrMalformedResponse = errors.New("malformed spell-check response")

	// ErrUnexpectedStatus スペルチェッカーが200以外を返した
	ErrUnexpectedStatus = errors.New("unexpected spell-check status")
)

// SpellChecker 外部スペルチェック機能のインターフェース
type SpellChecker interface {
	// Check テキストを検査し、補正済みテキストと誤りリストを返す
	Check(ctx context.Context, text string) (*CheckResult, error)

	// ProviderName プロバイダー名を返す
	ProviderName() string
}
