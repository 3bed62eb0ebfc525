// Package auth membawa identitas admin yang sudah login secara eksplisit
// lewat context request, bukan lewat state global.
package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type Identity struct {
	AdminID   uint   `json:"admin_id"`
	AdminName string `json:"admin_name"`
	TokenID   string `json:"-"`
}

type ctxKey struct{}

const LocIdentity = "admin_identity"

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Attach menyimpan identitas ke Locals dan ke user context sekaligus.
func Attach(c *fiber.Ctx, id Identity) {
	c.Locals(LocIdentity, id)
	c.SetUserContext(WithIdentity(c.UserContext(), id))
}

func FromFiber(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(LocIdentity).(Identity)
	return id, ok
}
