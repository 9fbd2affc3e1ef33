package data

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/claims"
	"github.com/veridia/identity/internal/server/models"
	"github.com/veridia/identity/uid"
)

// CreatePasswordResetToken mints a signed token for userID and records it in
// the active set. The row's ExpiresAt matches the expiry embedded in the
// token, but the row is what decides redeemability: expiring or deleting the
// row kills the token no matter what its signature says.
func CreatePasswordResetToken(db *gorm.DB, userID uid.ID, ttl time.Duration) (*models.PasswordResetToken, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return nil, err
	}

	expires := time.Now().Add(ttl).UTC()

	token, err := claims.CreateJWT(settings.PrivateJWK, userID, expires)
	if err != nil {
		return nil, err
	}

	prt := &models.PasswordResetToken{
		ID:         uid.New(),
		Token:      token,
		IdentityID: userID,
		ExpiresAt:  expires,
	}

	if err := add(db, prt); err != nil {
		return nil, err
	}

	return prt, nil
}

// ClaimPasswordResetToken verifies token and removes it from the active set,
// returning the user it authorizes a password change for. The removal is a
// single conditional DELETE, so when two requests race to claim the same
// token exactly one of them wins; the loser gets ErrInvalidResetToken, the
// same error produced by a forged, expired, or unknown token.
func ClaimPasswordResetToken(db *gorm.DB, token string) (uid.ID, error) {
	settings, err := GetSettings(db)
	if err != nil {
		return 0, err
	}

	subject, err := claims.VerifyJWT(settings.PublicJWK, token)
	if err != nil {
		if errors.Is(err, claims.ErrInvalidToken) {
			return 0, internal.ErrInvalidResetToken
		}
		return 0, err
	}

	result := db.
		Where("token = ? AND identity_id = ? AND expires_at > ?", token, subject, time.Now().UTC()).
		Delete(&models.PasswordResetToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, internal.ErrInvalidResetToken
	}

	return subject, nil
}

// RemoveExpiredPasswordResetTokens reclaims active-set rows whose window has
// passed. Expired rows are already unredeemable; this keeps the table from
// growing without bound.
func RemoveExpiredPasswordResetTokens(db *gorm.DB) error {
	return db.
		Where("expires_at <= ?", time.Now().UTC()).
		Delete(&models.PasswordResetToken{}).Error
}

// ListPasswordResetTokens returns the outstanding tokens for a user. Used by
// tests and by operators debugging delivery problems; the redeem path never
// lists, it claims.
func ListPasswordResetTokens(db *gorm.DB, userID uid.ID) ([]models.PasswordResetToken, error) {
	return list[models.PasswordResetToken](db, ByIdentityID(userID))
}
