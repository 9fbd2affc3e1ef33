package data

import (
	"gorm.io/gorm"

	"github.com/veridia/identity/internal/server/models"
)

func CreateCredential(db *gorm.DB, credential *models.Credential) error {
	return add(db, credential)
}

func GetCredential(db *gorm.DB, selectors ...SelectorFunc) (*models.Credential, error) {
	return get[models.Credential](db, selectors...)
}

func SaveCredential(db *gorm.DB, credential *models.Credential) error {
	return save(db, credential)
}
