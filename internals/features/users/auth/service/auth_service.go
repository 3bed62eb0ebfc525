// internals/features/users/auth/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "rentbook_backend/internals/features/users/auth/repository"
	helper "rentbook_backend/internals/helpers"
	helperAuth "rentbook_backend/internals/helpers/auth"
	"rentbook_backend/internals/helpers/dbtime"
)

var (
	ErrMissingCredentials = helper.InvalidInput("请输入用户名和密码")
	ErrBadCredentials     = helper.Validation(helper.CodeInvalidCredentials, "用户名或密码错误")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

type AuthService struct {
	DB        *gorm.DB
	Tokens    *TokenService
	Blacklist BlacklistStore
	Clock     dbtime.Clock
	Log       *zap.Logger
}

func NewAuthService(db *gorm.DB, tokens *TokenService, blacklist BlacklistStore, clock dbtime.Clock, log *zap.Logger) *AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{DB: db, Tokens: tokens, Blacklist: blacklist, Clock: clock, Log: log}
}

type LoginResult struct {
	Token  string
	Claims *SessionClaims
}

// Login: nama tak dikenal dan password salah memberi pesan yang sama.
func (s *AuthService) Login(ctx context.Context, name, password string) (*LoginResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	admin, err := authRepo.FindAdminByName(ctx, s.DB, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, helper.Storage("登录失败", err)
	}
	if !CheckPassword(admin.PasswordHash, password) {
		return nil, ErrBadCredentials
	}

	now := s.Clock.Now()
	if err := authRepo.TouchLastLogin(ctx, s.DB, admin.ID, now); err != nil {
		return nil, helper.Storage("登录失败", err)
	}
	admin.LastLogin = &now

	token, claims, err := s.Tokens.Issue(*admin)
	if err != nil {
		return nil, helper.Storage("登录失败", err)
	}
	s.Log.Info("admin login", zap.Uint("admin_id", admin.ID), zap.String("admin_name", admin.AdminName))
	return &LoginResult{Token: token, Claims: claims}, nil
}

// Authenticate: verifikasi token + blacklist → Identity.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (helperAuth.Identity, error) {
	if raw == "" {
		return helperAuth.Identity{}, ErrUnauthenticated
	}
	claims, err := s.Tokens.Parse(raw)
	if err != nil {
		return helperAuth.Identity{}, err
	}
	if s.Blacklist == nil {
		return helperAuth.Identity{}, errNoStore
	}
	revoked, err := s.Blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return helperAuth.Identity{}, err
	}
	if revoked {
		return helperAuth.Identity{}, ErrUnauthenticated
	}
	return helperAuth.Identity{
		AdminID:   claims.AdminID,
		AdminName: claims.AdminName,
		TokenID:   claims.ID,
	}, nil
}

// Logout mem-blacklist jti sampai token kedaluwarsa. Token rusak/expired diabaikan.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}
	claims, err := s.Tokens.Parse(raw)
	if err != nil {
		return nil
	}
	if err := s.Blacklist.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		return helper.Storage("退出失败", err)
	}
	s.Log.Info("admin logout", zap.Uint("admin_id", claims.AdminID))
	return nil
}
