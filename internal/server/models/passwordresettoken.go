package models

import (
	"time"

	"github.com/veridia/identity/uid"
)

// PasswordResetToken is one entry in the active set of outstanding reset
// credentials. The Token column holds the full signed token; the row's own
// ExpiresAt is authoritative over the expiry embedded in the token, and the
// row is hard-deleted when the token is claimed, so a token can never be
// redeemed twice.
type PasswordResetToken struct {
	ID uid.ID

	Token      string    `gorm:"uniqueIndex" validate:"required"`
	IdentityID uid.ID    `validate:"required"`
	ExpiresAt  time.Time `validate:"required"`
}

func (PasswordResetToken) IsAModel() {}
