package handler

import (
	"encoding/json"
	"net/http"
)

// Version サーバーのバージョン
const Version = "1.0.0"

// HealthHandler ヘルスチェックのハンドラー
type HealthHandler struct {
	provider string
}

// NewHealthHandler 新しいHealthHandlerを作成
// provider には現在使用中のスペルチェックプロバイダー名を渡す
func NewHealthHandler(provider string) *HealthHandler {
	return &HealthHandler{provider: provider}
}

// HealthResponse ヘルスチェックのレスポンス
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Provider string `json:"provider"`
}

// ServeHTTP ヘルスチェックを処理
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:   "ok",
		Version:  Version,
		Provider: h.provider,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}
