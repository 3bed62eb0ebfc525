package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/constants"
	helper "rentbook_backend/internals/helpers"
)

// WithFloor menaruh lantai grup route ke Locals; handler membacanya via helper.Floor.
func WithFloor(floor constants.Floor) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(helper.LocFloor, floor)
		return c.Next()
	}
}

// UnknownFloor dipasang paling akhir di /api/:floor/*: lantai tak dikenal
// ditolak sebagai error validasi, lantai valid tanpa route → 404.
func UnknownFloor(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := constants.ParseFloor(c.Params(param)); err != nil {
			return helper.JsonFail(c, "楼层参数无效", helper.InvalidInput("楼层参数无效"))
		}
		return helper.JsonError(c, fiber.StatusNotFound, "接口不存在")
	}
}
