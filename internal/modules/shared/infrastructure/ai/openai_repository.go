package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"spellcheck-app/internal/config"
	"spellcheck-app/internal/modules/shared/infrastructure/speller"
	"spellcheck-app/internal/modules/spell/domain"
)

// OpenAIRepository OpenAI Chat Completions を使ったスペルチェッカー
type OpenAIRepository struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIRepository 新しいOpenAIRepositoryを作成
func NewOpenAIRepository(cfg *config.OpenAIConfig, spellerCfg *config.SpellerConfig) (*OpenAIRepository, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; provide openai.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai model is required")
	}

	// リトライはしない
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if d := spellerCfg.Timeout(); d > 0 {
		opts = append(opts, option.WithRequestTimeout(d))
	}

	return &OpenAIRepository{model: cfg.Model, opts: opts}, nil
}

// Check テキストを検査
func (r *OpenAIRepository) Check(ctx context.Context, text string) (*domain.CheckResult, error) {
	client := openai.NewClient(r.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPromptSpellCheck),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: openai returned no choices", domain.ErrMalformedResponse)
	}

	parsed, err := speller.ParseResponse([]byte(speller.ExtractJSON(resp.Choices[0].Message.Content)))
	if err != nil {
		return nil, err
	}

	return domain.NewCheckResult(text, parsed.Checked, parsed.Errors, r.ProviderName()), nil
}

// ProviderName プロバイダー名を返す
func (r *OpenAIRepository) ProviderName() string {
	return "OpenAI"
}
