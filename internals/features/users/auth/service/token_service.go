// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	authModel "rentbook_backend/internals/features/users/auth/model"
	"rentbook_backend/internals/helpers/dbtime"
)

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// SessionClaims: admin_id, admin_name + jti/iat/exp.
type SessionClaims struct {
	AdminID   uint   `json:"admin_id"`
	AdminName string `json:"admin_name"`
	jwt.RegisteredClaims
}

func (c SessionClaims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

type TokenService struct {
	Secret []byte
	TTL    time.Duration
	Clock  dbtime.Clock
}

func NewTokenService(secret string, ttl time.Duration, clock dbtime.Clock) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{Secret: []byte(secret), TTL: ttl, Clock: clock}
}

// Issue membuat access token HS256 untuk admin.
func (s *TokenService) Issue(admin authModel.AdminModel) (string, *SessionClaims, error) {
	now := s.Clock.Now()
	claims := &SessionClaims{
		AdminID:   admin.ID,
		AdminName: admin.AdminName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse memverifikasi tanda tangan, lalu exp dicek terhadap Clock (bukan jam sistem).
func (s *TokenService) Parse(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if _, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.Secret, nil
	}); err != nil {
		return nil, ErrTokenInvalid
	}
	if claims.AdminID == 0 || claims.ID == "" {
		return nil, ErrTokenInvalid
	}
	if !claims.ExpiresAtTime().After(s.Clock.Now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
