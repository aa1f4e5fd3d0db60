// Package config はアプリケーション設定を管理します。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	// データディレクトリのパス
	DataDir string

	// HTTPサーバーのポート
	Port string

	// API認証キー。空の場合、更新系リクエストの認証を行いません。
	APIKey string

	// ログレベルと出力形式
	LogLevel  slog.Level
	LogFormat string

	// グレースフルシャットダウンの待ち時間
	ShutdownTimeout time.Duration
}

// ログの出力形式
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Load は .env ファイルと環境変数から設定を読み込みます。
// .env ファイルが存在しない場合は環境変数のみを使用します。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv は環境変数から設定を読み込みます。
func FromEnv() (*Config, error) {
	cfg := &Config{
		DataDir:         getenv("TABI_DATA_DIR", filepath.Join(".", "data")),
		Port:            getenv("TABI_SERVER_PORT", "8080"),
		APIKey:          os.Getenv("TABI_API_KEY"),
		LogFormat:       strings.ToLower(getenv("TABI_LOG_FORMAT", LogFormatText)),
		ShutdownTimeout: 10 * time.Second,
	}

	if err := ValidatePort(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid TABI_SERVER_PORT: %w", err)
	}

	// ログ設定の検証
	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("TABI_LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid TABI_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != LogFormatText && cfg.LogFormat != LogFormatJSON {
		return nil, fmt.Errorf("invalid TABI_LOG_FORMAT: %q (text or json)", cfg.LogFormat)
	}

	if v := os.Getenv("TABI_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid TABI_SHUTDOWN_TIMEOUT: %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}

// ValidatePort はポート番号が1~65535の整数であることを確認します。
func ValidatePort(port string) error {
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be an integer between 1 and 65535: %q", port)
	}
	return nil
}

// Addr はHTTPサーバーの待ち受けアドレスを返します。
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
