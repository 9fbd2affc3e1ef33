package models

import (
	"time"

	"github.com/veridia/identity/api"
)

type Identity struct {
	Model

	// Name is the email address the identity signed up with. It doubles as
	// the login name.
	Name       string    `gorm:"uniqueIndex:idx_identities_name,where:deleted_at is NULL"`
	LastSeenAt time.Time // updated when an identity uses a session token
}

func (i *Identity) ToAPI() *api.User {
	return &api.User{
		ID:         i.ID,
		Created:    i.CreatedAt,
		Updated:    i.UpdatedAt,
		LastSeenAt: i.LastSeenAt,
		Name:       i.Name,
	}
}
