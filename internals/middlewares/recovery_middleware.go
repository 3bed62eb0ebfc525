package middlewares

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	helper "rentbook_backend/internals/helpers"
)

// RecoveryMiddleware menangkap panic; stack trace dicatat lewat zap,
// client menerima 500 dari ErrorHandler.
func RecoveryMiddleware(log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.L()
	}
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.Error("panic recovered",
				zap.String("request_id", helper.RequestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("panic", fmt.Sprint(e)),
				zap.ByteString("stack", debug.Stack()),
			)
		},
	})
}
