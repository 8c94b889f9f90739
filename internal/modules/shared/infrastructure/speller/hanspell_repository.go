package speller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"spellcheck-app/internal/config"
	"spellcheck-app/internal/modules/spell/domain"
)

// HanspellRepository hanspell互換のHTTPスペルチェッカー
type HanspellRepository struct {
	endpoint   string
	httpClient *http.Client
}

// NewHanspellRepository 新しいHanspellRepositoryを作成
func NewHanspellRepository(cfg *config.SpellerConfig) *HanspellRepository {
	return &HanspellRepository{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// SetHTTPClient テスト用にHTTPクライアントを設定
func (r *HanspellRepository) SetHTTPClient(client *http.Client) {
	r.httpClient = client
}

// Check テキストを検査
func (r *HanspellRepository) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	jsonData, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spell-check request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	parsed, err := ParseResponse(body)
	if err != nil {
		return nil, err
	}

	return domain.NewCheckResult(text, parsed.Checked, parsed.Errors, r.ProviderName()), nil
}

// ProviderName プロバイダー名を返す
func (r *HanspellRepository) ProviderName() string {
	return "hanspell"
}
