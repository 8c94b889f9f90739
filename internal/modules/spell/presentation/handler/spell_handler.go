package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"spellcheck-app/internal/modules/spell/domain"
	"spellcheck-app/internal/modules/spell/usecase"
)

// maxRequestBodyBytes リクエストボディの上限
const maxRequestBodyBytes = 1 << 20

// SpellHandler スペルチェックAPIのハンドラー
type SpellHandler struct {
	corrector         *usecase.Corrector
	dictionaryUseCase *usecase.DictionaryUseCase
	historyUseCase    *usecase.HistoryUseCase
}

// NewSpellHandler 新しいSpellHandlerを作成
func NewSpellHandler(
	corrector *usecase.Corrector,
	dictionaryUseCase *usecase.DictionaryUseCase,
	historyUseCase *usecase.HistoryUseCase,
) *SpellHandler {
	return &SpellHandler{
		corrector:         corrector,
		dictionaryUseCase: dictionaryUseCase,
		historyUseCase:    historyUseCase,
	}
}

// CheckResponse スペルチェックのレスポンス
type CheckResponse struct {
	Success     bool              `json:"success"`
	Checked     string            `json:"checked"`
	Corrections map[string]string `json:"corrections"`
	ErrorCount  int               `json:"error_count"`
	Provider    string            `json:"provider"`
}

// DictionaryEntryResponse 辞書エントリのレスポンス
type DictionaryEntryResponse struct {
	Word        string    `json:"word"`
	Replacement string    `json:"replacement"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryResponse 履歴のレスポンス
type HistoryResponse struct {
	ID           string            `json:"id"`
	OriginalText string            `json:"original_text"`
	CheckedText  string            `json:"checked_text"`
	Corrections  map[string]string `json:"corrections"`
	Provider     string            `json:"provider"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HandleCheck スペルチェックハンドラー
func (h *SpellHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		Text *string `json:"text"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&request); err != nil {
		h.sendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if request.Text == nil {
		h.sendError(w, "text is required", http.StatusBadRequest)
		return
	}

	result, err := h.corrector.Check(r.Context(), *request.Text)
	if err != nil {
		h.sendError(w, fmt.Sprintf("Spell check failed: %v", err), checkErrorStatus(err))
		return
	}

	// 履歴の保存失敗はレスポンスに影響させない
	if h.historyUseCase.Enabled() {
		if err := h.historyUseCase.Record(context.WithoutCancel(r.Context()), result); err != nil {
			slog.Warn("Failed to record correction history", "error", err)
		}
	}

	h.sendJSON(w, http.StatusOK, CheckResponse{
		Success:     true,
		Checked:     result.CheckedText,
		Corrections: result.Corrections(),
		ErrorCount:  result.ErrorCount(),
		Provider:    result.Provider,
	})
}

// HandleDictionary ユーザー辞書ハンドラー（GET/POST/DELETE）
func (h *SpellHandler) HandleDictionary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		entries, err := h.dictionaryUseCase.List(ctx)
		if err != nil {
			h.sendError(w, err.Error(), storageErrorStatus(err))
			return
		}
		response := make([]DictionaryEntryResponse, 0, len(entries))
		for _, e := range entries {
			response = append(response, DictionaryEntryResponse{
				Word:        e.Word,
				Replacement: e.Replacement,
				UpdatedAt:   e.UpdatedAt,
			})
		}
		h.sendJSON(w, http.StatusOK, map[string]interface{}{"success": true, "entries": response})

	case http.MethodPost:
		var request struct {
			Word        string `json:"word"`
			Replacement string `json:"replacement"`
		}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(&request); err != nil {
			h.sendError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		entry, err := h.dictionaryUseCase.Add(ctx, request.Word, request.Replacement)
		if err != nil {
			h.sendError(w, err.Error(), storageErrorStatus(err))
			return
		}
		h.sendJSON(w, http.StatusCreated, map[string]interface{}{
			"success": true,
			"entry": DictionaryEntryResponse{
				Word:        entry.Word,
				Replacement: entry.Replacement,
				UpdatedAt:   entry.UpdatedAt,
			},
		})

	case http.MethodDelete:
		word := r.URL.Query().Get("word")
		if word == "" {
			h.sendError(w, "word is required", http.StatusBadRequest)
			return
		}
		if err := h.dictionaryUseCase.Remove(ctx, word); err != nil {
			h.sendError(w, err.Error(), storageErrorStatus(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		h.sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleHistory 補正履歴ハンドラー
func (h *SpellHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.sendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.sendError(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.historyUseCase.Recent(r.Context(), limit)
	if err != nil {
		h.sendError(w, err.Error(), storageErrorStatus(err))
		return
	}

	response := make([]HistoryResponse, 0, len(records))
	for _, rec := range records {
		response = append(response, HistoryResponse{
			ID:           rec.ID,
			OriginalText: rec.OriginalText,
			CheckedText:  rec.CheckedText,
			Corrections:  rec.Corrections,
			Provider:     rec.Provider,
			CreatedAt:    rec.CreatedAt,
		})
	}
	h.sendJSON(w, http.StatusOK, map[string]interface{}{"success": true, "history": response})
}

// checkErrorStatus チェッカーのエラーをHTTPステータスに変換
func checkErrorStatus(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUnexpectedStatus), errors.Is(err, domain.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// storageErrorStatus 辞書・履歴のエラーをHTTPステータスに変換
func storageErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidEntry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *SpellHandler) sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// sendError エラーレスポンスを送信
func (h *SpellHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	h.sendJSON(w, statusCode, ErrorResponse{Success: false, Error: message})
}
