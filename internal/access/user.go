package access

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/veridia/identity/internal/server/data"
	"github.com/veridia/identity/internal/server/models"
)

// CreateUser registers a new identity with a password credential.
func CreateUser(db *gorm.DB, email, password string) (*models.Identity, error) {
	identity := &models.Identity{
		Name:       email,
		LastSeenAt: time.Now().UTC(),
	}

	if err := data.CreateIdentity(db, identity); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("generate from password: %w", err)
	}

	credential := &models.Credential{
		IdentityID:   identity.ID,
		PasswordHash: hash,
	}

	if err := data.CreateCredential(db, credential); err != nil {
		return nil, fmt.Errorf("create credential: %w", err)
	}

	return identity, nil
}
