package router

import (
	"net/http"

	"spellcheck-app/internal/presentation/di"
	"spellcheck-app/internal/presentation/http/handler"
	"spellcheck-app/internal/presentation/http/middleware"
)

// NewRouter 新しいルーターを作成
func NewRouter(container *di.Container) http.Handler {
	mux := http.NewServeMux()

	// Spell API ハンドラー
	spellHandler := container.SpellHandler()
	mux.HandleFunc("/api/v1/spell/check", spellHandler.HandleCheck)
	mux.HandleFunc("/api/v1/dictionary", spellHandler.HandleDictionary)
	mux.HandleFunc("/api/v1/history", spellHandler.HandleHistory)

	// Health check
	mux.Handle("/health", handler.NewHealthHandler(container.Corrector().ProviderName()))

	// ミドルウェアの適用
	var h http.Handler = mux
	h = middleware.Recovery(h)
	h = middleware.LoggerWithHealthCheck(h)
	h = middleware.CORS(h)

	return h
}
