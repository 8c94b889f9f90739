package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"spellcheck-app/internal/config"
	"spellcheck-app/internal/modules/shared/infrastructure/speller"
	"spellcheck-app/internal/modules/spell/domain"
)

// ClaudeRepository Claude APIを使ったスペルチェッカー
type ClaudeRepository struct {
	apiKey      string
	model       string
	maxTokens   int
	httpClient  *http.Client
	apiEndpoint string // テスト用にエンドポイントを差し替え可能に
}

// NewClaudeRepository 新しいClaudeRepositoryを作成
func NewClaudeRepository(cfg *config.AnthropicConfig, spellerCfg *config.SpellerConfig) *ClaudeRepository {
	return &ClaudeRepository{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		httpClient:  &http.Client{Timeout: spellerCfg.Timeout()},
		apiEndpoint: "https://api.anthropic.com/v1/messages",
	}
}

// SetHTTPClient テスト用にHTTPクライアントを設定（テストコードからのみ使用）
func (r *ClaudeRepository) SetHTTPClient(client *http.Client) {
	r.httpClient = client
}

// Check テキストを検査
func (r *ClaudeRepository) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	requestBody := map[string]interface{}{
		"model":      r.model,
		"max_tokens": r.maxTokens,
		"system":     systemPromptSpellCheck,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]string{
					{"type": "text", "text": text},
				},
			},
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiEndpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", r.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: API returned status %d: %s", domain.ErrUnexpectedStatus, resp.StatusCode, string(body))
	}

	var response struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrMalformedResponse, err)
	}

	if len(response.Content) == 0 {
		return nil, fmt.Errorf("%w: empty content", domain.ErrMalformedResponse)
	}

	parsed, err := speller.ParseResponse([]byte(speller.ExtractJSON(response.Content[0].Text)))
	if err != nil {
		return nil, err
	}

	return domain.NewCheckResult(text, parsed.Checked, parsed.Errors, r.ProviderName()), nil
}

// ProviderName プロバイダー名を返す
func (r *ClaudeRepository) ProviderName() string {
	return "Anthropic Claude"
}
