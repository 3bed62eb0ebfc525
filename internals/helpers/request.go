package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rentbook_backend/internals/constants"
)

const LocRequestID = "reqid"

func RequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocRequestID).(string); ok {
		return v
	}
	return ""
}

const LocFloor = "floor"

// Floor dibaca dari Locals yang diisi middleware WithFloor.
func Floor(c *fiber.Ctx) (constants.Floor, error) {
	if f, ok := c.Locals(LocFloor).(constants.Floor); ok && f.Valid() {
		return f, nil
	}
	return "", InvalidInput("楼层参数无效")
}

// ParseIDParam membaca :id sebagai bilangan positif.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || n == 0 {
		return 0, InvalidInput("无效的ID")
	}
	return uint(n), nil
}
