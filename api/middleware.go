package api

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/stsysd/tabi/logger"
)

// authMiddleware は更新系のAPIリクエストの認証を行うミドルウェアです。
// APIキーが設定されていない場合は認証を行いません。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.APIKey == "" || isReadOnly(r.Method) {
			next.ServeHTTP(w, r)
			return
		}

		// ヘッダーからAPIキーを取得して照合
		if r.Header.Get("X-API-Key") != s.config.APIKey {
			writeJSONError(w, "APIキーが正しくありません", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func isReadOnly(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// statusRecorder はレスポンスのステータスコードを記録します。
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware はリクエストごとにメソッド・パス・ステータス・処理時間を記録します。
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.L().InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// recoverMiddleware はハンドラー内のpanicを500エラーに変換します。
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.L().ErrorContext(r.Context(), "panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", v,
					"stack", string(debug.Stack()),
				)
				writeJSONError(w, "サーバーエラーが発生しました", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
