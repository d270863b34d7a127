package dto

import (
	"time"

	"github.com/AnthoniusHendriyanto/session-service/internal/auth/domain"
)

// UserOutput is the wire shape of a user. The password hash never
// leaves the service; clients see "password": null.
type UserOutput struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	Password  *string   `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is the success envelope for signup/login and for
// protected endpoints returning the current user.
type AuthResponse struct {
	Status string   `json:"status"`
	Token  string   `json:"token,omitempty"`
	Data   AuthData `json:"data"`
}

type AuthData struct {
	User UserOutput `json:"user"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
