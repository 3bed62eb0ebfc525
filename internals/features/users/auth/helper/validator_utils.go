package helpers

import (
	"strings"
	"unicode/utf8"

	helper "rentbook_backend/internals/helpers"
)

const (
	MinAdminNameLen = 3
	MinPasswordLen  = 6
)

// ValidateAdminName: minimal 3 karakter (dihitung per rune).
func ValidateAdminName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinAdminNameLen {
		return helper.InvalidInput("用户名长度至少3位")
	}
	return nil
}

func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return helper.InvalidInput("密码长度至少6位")
	}
	return nil
}

// ValidateCredentials dipakai saat membuat admin (API, CLI, seed).
func ValidateCredentials(name, password string) error {
	if err := ValidateAdminName(name); err != nil {
		return err
	}
	return ValidatePassword(password)
}
