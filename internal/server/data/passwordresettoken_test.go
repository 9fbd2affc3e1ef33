package data

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/server/models"
	"github.com/veridia/identity/uid"
)

func TestCreatePasswordResetToken(t *testing.T) {
	db := setupDB(t)
	userID := uid.New()

	prt, err := CreatePasswordResetToken(db, userID, 5*time.Minute)
	assert.NilError(t, err)
	assert.Assert(t, prt.Token != "")
	assert.Equal(t, prt.IdentityID, userID)

	claimed, err := ClaimPasswordResetToken(db, prt.Token)
	assert.NilError(t, err)
	assert.Equal(t, claimed, userID)
}

func TestClaimPasswordResetToken(t *testing.T) {
	t.Run("deletes token", func(t *testing.T) {
		db := setupDB(t)
		userID := uid.New()

		prt, err := CreatePasswordResetToken(db, userID, 5*time.Minute)
		assert.NilError(t, err)

		claimed, err := ClaimPasswordResetToken(db, prt.Token)
		assert.NilError(t, err)
		assert.Equal(t, claimed, userID)

		// claim again should fail because the token was deleted
		_, err = ClaimPasswordResetToken(db, prt.Token)
		assert.ErrorIs(t, err, internal.ErrInvalidResetToken)
	})

	t.Run("expired row", func(t *testing.T) {
		db := setupDB(t)

		// the active-set window is stricter than the signature expiry:
		// sign for an hour but expire the row immediately
		prt, err := CreatePasswordResetToken(db, uid.New(), time.Hour)
		assert.NilError(t, err)

		err = db.Model(&models.PasswordResetToken{}).
			Where("id = ?", prt.ID).
			Update("expires_at", time.Now().Add(-time.Minute)).Error
		assert.NilError(t, err)

		_, err = ClaimPasswordResetToken(db, prt.Token)
		assert.ErrorIs(t, err, internal.ErrInvalidResetToken)
	})

	t.Run("expired signature", func(t *testing.T) {
		db := setupDB(t)

		prt, err := CreatePasswordResetToken(db, uid.New(), -5*time.Second)
		assert.NilError(t, err)

		_, err = ClaimPasswordResetToken(db, prt.Token)
		assert.ErrorIs(t, err, internal.ErrInvalidResetToken)
	})

	t.Run("tampered token does not mutate state", func(t *testing.T) {
		db := setupDB(t)
		userID := uid.New()

		prt, err := CreatePasswordResetToken(db, userID, 5*time.Minute)
		assert.NilError(t, err)

		_, err = ClaimPasswordResetToken(db, prt.Token[:len(prt.Token)-2]+"xx")
		assert.ErrorIs(t, err, internal.ErrInvalidResetToken)

		// the original token is still claimable
		claimed, err := ClaimPasswordResetToken(db, prt.Token)
		assert.NilError(t, err)
		assert.Equal(t, claimed, userID)
	})

	t.Run("token never issued", func(t *testing.T) {
		db := setupDB(t)

		_, err := ClaimPasswordResetToken(db, "never-issued")
		assert.ErrorIs(t, err, internal.ErrInvalidResetToken)
	})
}

func TestMultipleOutstandingTokens(t *testing.T) {
	db := setupDB(t)
	userID := uid.New()

	first, err := CreatePasswordResetToken(db, userID, 5*time.Minute)
	assert.NilError(t, err)
	second, err := CreatePasswordResetToken(db, userID, 5*time.Minute)
	assert.NilError(t, err)

	// issuing a new token does not invalidate the previous one
	claimed, err := ClaimPasswordResetToken(db, first.Token)
	assert.NilError(t, err)
	assert.Equal(t, claimed, userID)

	claimed, err = ClaimPasswordResetToken(db, second.Token)
	assert.NilError(t, err)
	assert.Equal(t, claimed, userID)
}

func TestRemoveExpiredPasswordResetTokens(t *testing.T) {
	db := setupDB(t)
	userID := uid.New()

	expired, err := CreatePasswordResetToken(db, userID, -time.Minute)
	assert.NilError(t, err)
	live, err := CreatePasswordResetToken(db, userID, time.Hour)
	assert.NilError(t, err)

	assert.NilError(t, RemoveExpiredPasswordResetTokens(db))

	remaining, err := ListPasswordResetTokens(db, userID)
	assert.NilError(t, err)
	assert.Equal(t, len(remaining), 1)
	assert.Equal(t, remaining[0].Token, live.Token)
	assert.Assert(t, remaining[0].Token != expired.Token)
}
