package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"go.uber.org/zap"

	helper "rentbook_backend/internals/helpers"
)

const HeaderRequestID = "X-Request-ID"

// RequestContext memberi tiap request: request id (header masuk dipakai bila ada),
// context dengan deadline untuk semua query GORM, dan satu log penutup lewat zap.
func RequestContext(log *zap.Logger, timeout time.Duration) fiber.Handler {
	if log == nil {
		log = zap.L()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" || len(rid) > 64 {
			rid = utils.UUID()
		}
		c.Locals(helper.LocRequestID, rid)
		c.Set(HeaderRequestID, rid)

		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		start := time.Now()
		err := c.Next()

		log.Debug("request completed",
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		)
		return err
	}
}
