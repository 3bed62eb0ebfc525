package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	LocRawToken       = "raw_token"
	AccessTokenCookie = "access_token"
)

// GetRawAccessToken mengembalikan access token dari:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token"
// 3) Locals("raw_token") yang diset middleware
func GetRawAccessToken(c *fiber.Ctx) string {
	if fields := strings.Fields(c.Get("Authorization")); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		if tok := strings.Trim(fields[1], "\"'"); tok != "" {
			return tok
		}
	}
	if v := strings.TrimSpace(c.Cookies(AccessTokenCookie)); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}
