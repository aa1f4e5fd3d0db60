package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/store"
)

func migrateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "migrate",
		Short: "データベースのスキーマを管理します",
	}

	c.AddCommand(migrateStepCmd("up", "最新のスキーマまで移行します", db.Migrate))
	c.AddCommand(migrateStepCmd("down", "直前のマイグレーションを取り消します", db.Rollback))
	c.AddCommand(migrateStatusCmd())
	return c
}

func migrateStepCmd(use, short string, step func(*sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(conn *sql.DB) error {
				if err := step(conn); err != nil {
					return err
				}
				return printVersion(cmd, conn)
			})
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "適用済みのスキーマバージョンを表示します",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(conn *sql.DB) error {
				return printVersion(cmd, conn)
			})
		},
	}
}

func withDB(fn func(conn *sql.DB) error) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	conn, err := store.OpenDB(cfg.DataDir)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

func printVersion(cmd *cobra.Command, conn *sql.DB) error {
	v, err := db.Version(conn)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", v)
	return nil
}
