package access

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/claims"
	"github.com/veridia/identity/internal/server/data"
	"github.com/veridia/identity/internal/server/models"
)

// LoginWithPasswordCredential exchanges a username/password pair for a
// session token. All authentication failures map to ErrUnauthorized so the
// response does not reveal whether the email is registered.
func LoginWithPasswordCredential(db *gorm.DB, email, password string, sessionDuration time.Duration) (*models.Identity, string, time.Time, error) {
	identity, err := data.GetIdentity(db, data.ByName(email))
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("%w: could not get identity for email: %s", internal.ErrUnauthorized, err)
	}

	credential, err := data.GetCredential(db, data.ByIdentityID(identity.ID))
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("%w: validate creds get user: %s", internal.ErrUnauthorized, err)
	}

	// compare the stored hash of the user's password and the hash of the
	// presented password
	if err := bcrypt.CompareHashAndPassword(credential.PasswordHash, []byte(password)); err != nil {
		return nil, "", time.Time{}, fmt.Errorf("%w: could not verify password", internal.ErrUnauthorized)
	}

	settings, err := data.GetSettings(db)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	expires := time.Now().Add(sessionDuration).UTC()
	token, err := claims.CreateJWT(settings.PrivateJWK, identity.ID, expires)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	identity.LastSeenAt = time.Now().UTC()
	if err := data.SaveIdentity(db, identity); err != nil {
		return nil, "", time.Time{}, fmt.Errorf("login failed to update last seen: %w", err)
	}

	return identity, token, expires, nil
}
