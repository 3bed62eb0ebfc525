package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	database "rentbook_backend/internals/databases"
	authScheduler "rentbook_backend/internals/features/users/auth/scheduler"
	authService "rentbook_backend/internals/features/users/auth/service"
	routes "rentbook_backend/internals/route"
	routeDetails "rentbook_backend/internals/route/details"
)

func ServeCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Jalankan HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), env)
		},
	}
}

func serve(ctx context.Context, env *runtimeEnv) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := env.log

	db, err := env.openDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}()

	blacklist, closeBlacklist, err := authService.NewBlacklistStore(ctx, db, env.cfg.RedisURL, env.clock)
	if err != nil {
		return err
	}
	defer func() { _ = closeBlacklist() }()

	tokens := authService.NewTokenService(env.cfg.SecretKey, env.cfg.SessionTTL, env.clock)
	auth := authService.NewAuthService(db, tokens, blacklist, env.clock, log)

	// scheduler setelah DB siap
	cleanup, err := authScheduler.StartBlacklistCleanupScheduler(env.cfg.BlacklistCleanupCron, blacklist, env.clock, log)
	if err != nil {
		return err
	}
	defer cleanup.Stop()

	app := routes.NewApp(routeDetails.NewDeps(db, env.cfg, log, env.clock, auth))

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("port", env.cfg.Port), zap.String("env", env.cfg.AppEnv))
		errCh <- app.Listen("0.0.0.0:" + env.cfg.Port)
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
