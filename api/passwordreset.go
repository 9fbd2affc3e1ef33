package api

import "github.com/veridia/identity/internal/validate"

type PasswordResetRequest struct {
	Email string `json:"email"`
}

func (r PasswordResetRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
	}
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("token", r.Token),
		validate.Required("newPassword", r.NewPassword),
		validate.String("newPassword", r.NewPassword, MinPasswordLength, 200),
	}
}

// MessageResponse is the body for endpoints that acknowledge an action
// without returning a resource, such as the password recovery endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
