// Package cli は tabi コマンドのサブコマンドを定義します。
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stsysd/tabi/config"
	"github.com/stsysd/tabi/logger"
)

// Execute はルートコマンドを実行します。
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd はルートコマンドを生成します。
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tabi",
		Short:        "旅行プラン・宿泊施設・観光地を管理するAPIサーバー",
		SilenceUsage: true,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(migrateCmd())
	cmd.AddCommand(seedCmd())
	return cmd
}

// setup は設定を読み込み、ロガーを初期化します。
func setup() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	return cfg, nil
}
