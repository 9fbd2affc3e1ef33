package api

import (
	"time"

	"github.com/veridia/identity/internal/validate"
	"github.com/veridia/identity/uid"
)

// MinPasswordLength is the minimum number of bytes accepted for any
// password, at signup and at reset.
const MinPasswordLength = 6

type User struct {
	ID         uid.ID    `json:"id"`
	Name       string    `json:"name"`
	Created    time.Time `json:"created"`
	Updated    time.Time `json:"updated"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
		validate.Required("password", r.Password),
		validate.String("password", r.Password, MinPasswordLength, 200),
	}
}
