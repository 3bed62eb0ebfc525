package dto

import (
	"strings"
	"time"

	authModel "rentbook_backend/internals/features/users/auth/model"
)

type AdminCreateRequest struct {
	AdminName string `json:"admin_name"`
	Password  string `json:"password"`
}

// AdminUpdateRequest: password kosong = tidak diubah.
type AdminUpdateRequest struct {
	AdminName string `json:"admin_name"`
	Password  string `json:"password"`
}

func (r *AdminCreateRequest) Normalize() { r.AdminName = strings.TrimSpace(r.AdminName) }
func (r *AdminUpdateRequest) Normalize() { r.AdminName = strings.TrimSpace(r.AdminName) }

type AdminResponse struct {
	ID        uint       `json:"id"`
	AdminName string     `json:"admin_name"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

func ToAdminResponse(m authModel.AdminModel) AdminResponse {
	return AdminResponse{
		ID:        m.ID,
		AdminName: m.AdminName,
		LastLogin: m.LastLogin,
		CreatedAt: m.CreatedAt,
	}
}

func ToAdminResponses(rows []authModel.AdminModel) []AdminResponse {
	out := make([]AdminResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAdminResponse(r))
	}
	return out
}
