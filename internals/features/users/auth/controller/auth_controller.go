package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "rentbook_backend/internals/features/users/auth/repository"
	"rentbook_backend/internals/features/users/auth/service"
	helper "rentbook_backend/internals/helpers"
	helperAuth "rentbook_backend/internals/helpers/auth"
)

type AuthController struct {
	DB           *gorm.DB
	Svc          *service.AuthService
	SecureCookie bool
}

func NewAuthController(db *gorm.DB, svc *service.AuthService, secureCookie bool) *AuthController {
	return &AuthController{DB: db, Svc: svc, SecureCookie: secureCookie}
}

type loginRequest struct {
	AdminName string `json:"admin_name" form:"admin_name"`
	Password  string `json:"password" form:"password"`
}

func (ac *AuthController) setSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   ac.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (ac *AuthController) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   ac.SecureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonFail(c, "登录失败", service.ErrMissingCredentials)
	}
	res, err := ac.Svc.Login(c.UserContext(), in.AdminName, in.Password)
	if err != nil {
		return helper.JsonFail(c, "登录失败", err)
	}
	ac.setSessionCookie(c, res.Token, res.Claims.ExpiresAtTime())
	return helper.JsonOK(c, "登录成功", fiber.Map{
		"access_token": res.Token,
		"token_type":   "Bearer",
		"expires_at":   res.Claims.ExpiresAtTime(),
		"admin": fiber.Map{
			"id":         res.Claims.AdminID,
			"admin_name": res.Claims.AdminName,
		},
	})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.Svc.Logout(c.UserContext(), helper.GetRawAccessToken(c)); err != nil {
		return helper.JsonFail(c, "退出失败", err)
	}
	ac.clearSessionCookie(c)
	return helper.JsonOK(c, "已退出登录", nil)
}

// GET /logout (halaman): logout lalu kembali ke /login
func (ac *AuthController) LogoutPage(c *fiber.Ctx) error {
	_ = ac.Svc.Logout(c.UserContext(), helper.GetRawAccessToken(c))
	ac.clearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	id, ok := helperAuth.FromFiber(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "请先登录")
	}
	admin, err := authRepo.FindAdminByID(c.UserContext(), ac.DB, id.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "请先登录")
		}
		return helper.JsonFail(c, "查询失败", err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"id":         admin.ID,
		"admin_name": admin.AdminName,
		"last_login": admin.LastLogin,
		"created_at": admin.CreatedAt,
	})
}
