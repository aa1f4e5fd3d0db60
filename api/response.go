package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/stsysd/tabi/logger"
	"github.com/stsysd/tabi/model"
)

// Response はすべてのJSONレスポンスの共通形式です。
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// writeJSON はJSON形式でレスポンスを返却します。
func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.L().Error("failed to encode response", "error", err)
	}
}

// writeData は成功レスポンスを返却します。
func writeData(w http.ResponseWriter, statusCode int, data any, message string) {
	writeJSON(w, statusCode, Response{Success: true, Data: data, Message: message})
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int, errs ...string) {
	writeJSON(w, statusCode, Response{Success: false, Message: message, Errors: errs})
}

// writeError はエラーの種類に応じたステータスコードでエラーレスポンスを返却します。
// 予期しないエラーの詳細はログにのみ出力します。
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeJSONError(w, "入力内容に誤りがあります", http.StatusBadRequest, validationErr.Errors...)
	case errors.Is(err, model.ErrTravelPlanNotFound):
		writeJSONError(w, "旅行プランが見つかりません", http.StatusNotFound)
	case errors.Is(err, model.ErrAccommodationNotFound):
		writeJSONError(w, "宿泊施設が見つかりません", http.StatusNotFound)
	case errors.Is(err, model.ErrAttractionNotFound):
		writeJSONError(w, "観光地が見つかりません", http.StatusNotFound)
	case errors.Is(err, model.ErrActivityNotFound):
		writeJSONError(w, "予定が見つかりません", http.StatusNotFound)
	case errors.Is(err, model.ErrNotFound):
		writeJSONError(w, "リソースが見つかりません", http.StatusNotFound)
	default:
		logger.L().ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeJSONError(w, "サーバーエラーが発生しました", http.StatusInternalServerError)
	}
}

// badRequest はリクエストの形式エラーを返却します。
func badRequest(w http.ResponseWriter, err error) {
	writeJSONError(w, "リクエストが不正です", http.StatusBadRequest, err.Error())
}

// decodeBody はリクエストボディをJSONとして読み込みます。
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
