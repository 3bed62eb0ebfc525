package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	database "rentbook_backend/internals/databases"
	"rentbook_backend/internals/features/users/admins/dto"
	"rentbook_backend/internals/features/users/admins/service"
)

func AdminCmd(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Kelola akun admin",
	}
	cmd.AddCommand(adminCreateCmd(env))
	return cmd
}

func adminCreateCmd(env *runtimeEnv) *cobra.Command {
	var name, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Buat admin baru",
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

			admin, err := service.NewAdminService(db).Create(ctx, dto.AdminCreateRequest{
				AdminName: name,
				Password:  password,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q dibuat (id=%d)\n", admin.AdminName, admin.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "nama admin")
	cmd.Flags().StringVar(&password, "password", "", "password (min 6 karakter)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
