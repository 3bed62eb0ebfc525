package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	database "rentbook_backend/internals/databases"
	"rentbook_backend/internals/seeds"
)

func SeedCmd(env *runtimeEnv) *cobra.Command {
	var files seeds.Files

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Isi admin dan kamar dari file JSON (baris yang sudah ada dilewati)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if files.Admins == "" && files.Rooms == "" {
				return errors.New("butuh --admins atau --rooms")
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			db, err := env.openDB(ctx)
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := seeds.RunAllSeeds(ctx, db, files, env.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed selesai: %d admin, %d kamar baru\n", res.Admins, res.Rooms)
			return nil
		},
	}
	cmd.Flags().StringVar(&files.Admins, "admins", "", "file JSON admin")
	cmd.Flags().StringVar(&files.Rooms, "rooms", "", "file JSON kamar")
	return cmd
}
