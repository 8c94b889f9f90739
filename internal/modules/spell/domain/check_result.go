package domain

import "time"

// CheckError 外部スペルチェッカーが報告した誤り1件
type CheckError struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
}

// CheckResult スペルチェック結果のエンティティ
type CheckResult struct {
	OriginalText string       `json:"original_text"`
	CheckedText  string       `json:"checked_text"`
	Errors       []CheckError `json:"errors"`
	Provider     string       `json:"provider"`
	CheckedAt    time.Time    `json:"checked_at"`
}

// NewCheckResult 新しいCheckResultを作成
func NewCheckResult(originalText, checkedText string, errors []CheckError, provider string) *CheckResult {
	return &CheckResult{
		OriginalText: originalText,
		CheckedText:  checkedText,
		Errors:       errors,
		Provider:     provider,
		CheckedAt:    time.Now(),
	}
}

// Corrections 誤りリストを original -> corrected のマップに変換する。
// 同じ original が複数回現れた場合は後勝ち。
func (r *CheckResult) Corrections() map[string]string {
	corrections := make(map[string]string, len(r.Errors))
	for _, e := range r.Errors {
		corrections[e.Original] = e.Corrected
	}
	return corrections
}

// IsCorrected テキストが補正されたかどうかを判定
func (r *CheckResult) IsCorrected() bool {
	return r.OriginalText != r.CheckedText
}

// ErrorCount 報告された誤りの件数
func (r *CheckResult) ErrorCount() int {
	return len(r.Errors)
}
