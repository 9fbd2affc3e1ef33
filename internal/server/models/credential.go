package models

import "github.com/veridia/identity/uid"

type Credential struct {
	Model

	IdentityID   uid.ID `gorm:"uniqueIndex:idx_credentials_identity_id,where:deleted_at is NULL" validate:"required"`
	PasswordHash []byte `validate:"required"`
}
