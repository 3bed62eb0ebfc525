// Package commands berisi CLI operator: serve, migrate, admin, seed.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rentbook_backend/internals/configs"
	database "rentbook_backend/internals/databases"
	"rentbook_backend/internals/helpers/dbtime"
)

const serviceName = "rentbook"

// runtimeEnv dibangun sekali di PersistentPreRunE dan dipakai semua subcommand.
type runtimeEnv struct {
	cfg   *configs.Config
	log   *zap.Logger
	clock dbtime.Clock
}

func bootstrap() (*runtimeEnv, error) {
	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := configs.NewLogger(cfg.LogLevel, cfg.LogFormat, serviceName)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	zap.ReplaceGlobals(log)
	return &runtimeEnv{cfg: cfg, log: log, clock: dbtime.NewClock(cfg.Timezone)}, nil
}

// openDB membuka koneksi lalu AutoMigrate; SQLite in-memory selalu mulai kosong.
func (e *runtimeEnv) openDB(ctx context.Context) (*gorm.DB, error) {
	db, err := database.ConnectDB(e.cfg, e.log, e.clock)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

func NewRootCmd() *cobra.Command {
	env := &runtimeEnv{}

	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Pembukuan sewa kamar dua lantai (五楼 / 六楼)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := bootstrap()
			if err != nil {
				return err
			}
			*env = *loaded
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.log != nil {
				_ = env.log.Sync()
			}
		},
	}

	serve := ServeCmd(env)
	rootCmd.RunE = serve.RunE

	rootCmd.AddCommand(
		serve,
		MigrateCmd(env),
		AdminCmd(env),
		SeedCmd(env),
	)
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
