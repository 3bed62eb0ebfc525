package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "rentbook_backend/internals/helpers"
)

// ErrorHandler untuk fiber.Config: error yang lolos dari handler tetap
// dijawab dengan bentuk JSON standar.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	if log == nil {
		log = zap.L()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			msg := fe.Message
			if fe.Code == fiber.StatusNotFound {
				msg = "接口不存在"
			}
			return helper.JsonError(c, fe.Code, msg)
		}

		var appErr *helper.AppError
		if errors.As(err, &appErr) {
			return helper.JsonFail(c, appErr.Message, appErr)
		}

		log.Error("unhandled error",
			zap.String("request_id", helper.RequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return helper.JsonError(c, fiber.StatusInternalServerError, "服务器内部错误")
	}
}
