package access

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/claims"
	"github.com/veridia/identity/internal/server/data"
)

func TestLoginWithPasswordCredential(t *testing.T) {
	db := setupDB(t)

	user, err := CreateUser(db, "user@example.com", "mypassword")
	assert.NilError(t, err)

	identity, token, expires, err := LoginWithPasswordCredential(db, "user@example.com", "mypassword", time.Hour)
	assert.NilError(t, err)
	assert.Equal(t, identity.ID, user.ID)
	assert.Assert(t, expires.After(time.Now()))

	// the session token is verifiable with the published key and names the
	// right subject
	settings, err := data.GetSettings(db)
	assert.NilError(t, err)

	subject, err := claims.VerifyJWT(settings.PublicJWK, token)
	assert.NilError(t, err)
	assert.Equal(t, subject, user.ID)
}

func TestLoginWithPasswordCredential_WrongPassword(t *testing.T) {
	db := setupDB(t)

	_, err := CreateUser(db, "user@example.com", "mypassword")
	assert.NilError(t, err)

	_, _, _, err = LoginWithPasswordCredential(db, "user@example.com", "wrong", time.Hour)
	assert.ErrorIs(t, err, internal.ErrUnauthorized)
}

func TestLoginWithPasswordCredential_UnknownEmail(t *testing.T) {
	db := setupDB(t)

	_, _, _, err := LoginWithPasswordCredential(db, "nosuch@example.com", "mypassword", time.Hour)
	assert.ErrorIs(t, err, internal.ErrUnauthorized)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupDB(t)

	_, err := CreateUser(db, "user@example.com", "mypassword")
	assert.NilError(t, err)

	_, err = CreateUser(db, "user@example.com", "otherpassword")
	assert.ErrorContains(t, err, "already exists")
}
