package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stsysd/tabi/core"
	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/seed"
	"github.com/stsysd/tabi/store"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <fixture.yaml>",
		Short: "YAMLのフィクスチャからデータを登録します",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}

			fixture, err := seed.LoadFile(args[0])
			if err != nil {
				return err
			}

			s, err := store.NewSQLiteStore(cfg.DataDir, db.Migrate)
			if err != nil {
				return fmt.Errorf("failed to initialize SQLite store: %w", err)
			}
			defer s.Close()

			res, err := fixture.Apply(cmd.Context(), core.New(s))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d travel plans, %d accommodations, %d attractions\n",
				res.TravelPlans, res.Accommodations, res.Attractions)
			return nil
		},
	}
}
