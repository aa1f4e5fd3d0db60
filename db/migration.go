// Package db は、スキーマ定義とsqlcで生成されたクエリを提供します。
package db

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/stsysd/tabi/logger"
)

//go:embed schema/*.sql
var embedMigrations embed.FS

const migrationDir = "schema"

// gooseLogger は goose のログを共有ロガーに出力します。
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...any) {
	logger.L().Info(gooseMessage(format, v...), "component", "goose")
}

func (gooseLogger) Fatalf(format string, v ...any) {
	logger.L().Error(gooseMessage(format, v...), "component", "goose")
	os.Exit(1)
}

func gooseMessage(format string, v ...any) string {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	return strings.TrimPrefix(msg, "goose: ")
}

func setupGoose() error {
	goose.SetLogger(gooseLogger{})
	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate はデータベースを最新のスキーマまで移行します。
func Migrate(conn *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Up(conn, migrationDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Rollback は直前のマイグレーションを1つ取り消します。
func Rollback(conn *sql.DB) error {
	if err := setupGoose(); err != nil {
		return err
	}
	if err := goose.Down(conn, migrationDir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Version は適用済みの最新マイグレーションのバージョンを返します。
func Version(conn *sql.DB) (int64, error) {
	if err := setupGoose(); err != nil {
		return 0, err
	}
	v, err := goose.GetDBVersion(conn)
	if err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return v, nil
}
