package dto

import (
	"strings"
	"time"

	"rentbook_backend/internals/constants"
	"rentbook_backend/internals/features/property/contacts/model"
)

type ContactRequest struct {
	Name   string `json:"name" validate:"required,max=50"`
	RoomID string `json:"room_id" validate:"max=20"`
	Phone  string `json:"phone" validate:"required,max=20"`
	IDCard string `json:"id_card" validate:"max=18"`
}

func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.RoomID = strings.TrimSpace(r.RoomID)
	r.Phone = strings.TrimSpace(r.Phone)
	r.IDCard = strings.TrimSpace(r.IDCard)
}

type ContactResponse struct {
	ID        uint            `json:"id"`
	Floor     constants.Floor `json:"floor"`
	Name      string          `json:"name"`
	RoomID    string          `json:"room_id"`
	Phone     string          `json:"phone"`
	IDCard    string          `json:"id_card"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToContactResponse(m model.ContactModel) ContactResponse {
	return ContactResponse{
		ID:        m.ID,
		Floor:     m.Floor,
		Name:      m.Name,
		RoomID:    m.RoomID,
		Phone:     m.Phone,
		IDCard:    m.IDCard,
		CreatedAt: m.CreatedAt,
	}
}

func ToContactResponses(rows []model.ContactModel) []ContactResponse {
	out := make([]ContactResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToContactResponse(r))
	}
	return out
}

// ContactListQuery: view=card|table, q cocok ke nama/telepon.
type ContactListQuery struct {
	View string `query:"view"`
	Q    string `query:"q"`
}

func (q ContactListQuery) IsCard() bool {
	return strings.EqualFold(strings.TrimSpace(q.View), "card")
}
