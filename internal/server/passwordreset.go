package server

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/veridia/identity/api"
	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/access"
	"github.com/veridia/identity/internal/logging"
	"github.com/veridia/identity/internal/server/email"
	"github.com/veridia/identity/internal/server/redis"
)

// passwordResetMessage is returned for every forgot-password request,
// whether or not the email belongs to a user. Responding differently
// would let callers probe which addresses are registered.
const passwordResetMessage = "If that account exists, a reset link has been sent."

func (a *API) RequestPasswordReset(c *gin.Context, r *api.PasswordResetRequest) (*api.MessageResponse, error) {
	if err := redis.RateOK(a.server.redis, r.Email, 10); err != nil {
		return nil, err
	}

	resetToken, user, err := access.PasswordResetRequest(getDB(c), r.Email, a.server.options.PasswordResetDuration)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			logging.Debugf("password reset requested for unknown email")
			return &api.MessageResponse{Message: passwordResetMessage}, nil
		}
		return nil, err
	}

	link := fmt.Sprintf("%s/password-reset?token=%s", email.AppDomain, resetToken.Token)

	// Delivery is fire and forget. The caller gets the same response no
	// matter what happens to the email.
	err = email.SendPasswordReset(user.Name, r.Email, email.PasswordResetData{Link: link})
	switch {
	case errors.Is(err, email.ErrNotConfigured):
		logging.Infof("email delivery not configured; password reset link for %q: %s", r.Email, link)
	case err != nil:
		logging.Errorf("failed to send password reset email to %q: %s", r.Email, err)
	}

	return &api.MessageResponse{Message: passwordResetMessage}, nil
}

func (a *API) ResetPassword(c *gin.Context, r *api.ResetPasswordRequest) (*api.MessageResponse, error) {
	if _, err := access.VerifiedPasswordReset(getDB(c), r.Token, r.NewPassword); err != nil {
		return nil, err
	}

	return &api.MessageResponse{Message: "password has been reset"}, nil
}
