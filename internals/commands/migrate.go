package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	database "rentbook_backend/internals/databases"
)

func MigrateCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "AutoMigrate semua tabel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db, err := env.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close(db)

			env.log.Info("migrate selesai", zap.Int("tables", len(database.Models())))
			return nil
		},
	}
}
