package speller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"spellcheck-app/internal/modules/spell/domain"
)

// responseSchema スペルチェッカー応答の契約
const responseSchema = `{
  "type": "object",
  "required": ["checked"],
  "properties": {
    "checked": {"type": "string"},
    "errors": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["original", "corrected"],
        "properties": {
          "original": {"type": "string"},
          "corrected": {"type": "string"}
        }
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("response.json", strings.NewReader(responseSchema)); err != nil {
		return nil, fmt.Errorf("failed to load response schema: %w", err)
	}
	return compiler.Compile("response.json")
})

// Response スペルチェッカー応答
type Response struct {
	Checked string              `json:"checked"`
	Errors  []domain.CheckError `json:"errors"`
}

// ParseResponse 応答JSONを検証してデコードする。
// 契約違反はすべて domain.ErrMalformedResponse をラップして返す。
func ParseResponse(data []byte) (*Response, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var resp Response
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	return &resp, nil
}

// ExtractJSON LLMの出力から最初のJSONオブジェクトを取り出す（コードフェンス等を除去）
func ExtractJSON(text string) string {
	trimmed := strings.TrimSpace(text)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start < 0 || end < start {
		return trimmed
	}
	return trimmed[start : end+1]
}
