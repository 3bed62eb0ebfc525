package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"rentbook_backend/internals/features/users/auth/service"
	"rentbook_backend/internals/helpers/dbtime"
)

// RunBlacklistCleanup sekali jalan: hapus entri yang sudah kedaluwarsa.
func RunBlacklistCleanup(ctx context.Context, store service.BlacklistStore, clock dbtime.Clock, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := store.Purge(ctx, clock.Now())
	if err != nil {
		log.Error("[CLEANUP] gagal hapus token_blacklist", zap.Error(err))
		return
	}
	log.Info("[CLEANUP] token_blacklist dibersihkan", zap.Int64("deleted", n))
}

// StartBlacklistCleanupScheduler menjadwalkan cleanup dengan ekspresi cron (default @daily).
// Pemanggil wajib Stop() saat shutdown.
func StartBlacklistCleanupScheduler(spec string, store service.BlacklistStore, clock dbtime.Clock, log *zap.Logger) (*cron.Cron, error) {
	if spec == "" {
		spec = "@daily"
	}
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() {
		RunBlacklistCleanup(context.Background(), store, clock, log)
	}); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
