package access

import (
	"time"

	"gorm.io/gorm"

	"github.com/veridia/identity/internal/server/data"
	"github.com/veridia/identity/internal/server/models"
)

// PasswordResetRequest issues a reset credential for the user registered
// with email. The caller decides how the token reaches the user; it is never
// part of an HTTP response.
//
// Returns internal.ErrNotFound when no user matches, or when the user has no
// password credential to reset. Handlers must not surface that distinction
// to the requester.
func PasswordResetRequest(db *gorm.DB, email string, ttl time.Duration) (*models.PasswordResetToken, *models.Identity, error) {
	user, err := data.GetIdentity(db, data.ByName(email))
	if err != nil {
		return nil, nil, err
	}

	if _, err := data.GetCredential(db, data.ByIdentityID(user.ID)); err != nil {
		// if the credential is not found, the user cannot reset their password
		return nil, nil, err
	}

	prt, err := data.CreatePasswordResetToken(db, user.ID, ttl)
	if err != nil {
		return nil, nil, err
	}

	return prt, user, nil
}

// VerifiedPasswordReset redeems a reset token and replaces the user's
// password. The claim removes the token from the active set before the
// credential is touched, inside the same transaction, so a token can be
// redeemed at most once even under concurrent attempts.
func VerifiedPasswordReset(db *gorm.DB, token, newPassword string) (*models.Identity, error) {
	userID, err := data.ClaimPasswordResetToken(db, token)
	if err != nil {
		return nil, err
	}

	user, err := data.GetIdentity(db, data.ByID(userID))
	if err != nil {
		return nil, err
	}

	if err := updateCredential(db, user, newPassword); err != nil {
		return nil, err
	}

	return user, nil
}
