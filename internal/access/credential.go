package access

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/veridia/identity/internal"
	"github.com/veridia/identity/internal/server/data"
	"github.com/veridia/identity/internal/server/models"
)

func updateCredential(db *gorm.DB, user *models.Identity, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generate from password: %w", err)
	}

	credential, err := data.GetCredential(db, data.ByIdentityID(user.ID))
	switch {
	case errors.Is(err, internal.ErrNotFound):
		credential = &models.Credential{IdentityID: user.ID, PasswordHash: hash}
		if err := data.CreateCredential(db, credential); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("get credential: %w", err)
	}

	credential.PasswordHash = hash
	if err := data.SaveCredential(db, credential); err != nil {
		return fmt.Errorf("update credential: %w", err)
	}

	return nil
}
