package api

import (
	"time"

	"github.com/veridia/identity/internal/validate"
	"github.com/veridia/identity/uid"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
		validate.Required("password", r.Password),
	}
}

type LoginResponse struct {
	UserID  uid.ID    `json:"userID"`
	Name    string    `json:"name"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
