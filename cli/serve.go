package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stsysd/tabi/api"
	"github.com/stsysd/tabi/config"
	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/logger"
	"github.com/stsysd/tabi/store"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "APIサーバーを起動します",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				if err := config.ValidatePort(port); err != nil {
					return fmt.Errorf("invalid --port: %w", err)
				}
				cfg.Port = port
			}

			// SQLiteストアの初期化（マイグレーション関数を渡す）
			s, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
			if err != nil {
				return fmt.Errorf("failed to initialize SQLite store: %w", err)
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.L().Info("starting tabi", "data_dir", cfg.DataDir, "auth", cfg.APIKey != "")
			return api.NewServer(s, cfg).Run(ctx, cfg.Addr(), cfg.ShutdownTimeout)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "待ち受けポート (TABI_SERVER_PORT より優先)")
	return cmd
}

