package data

import (
	"gorm.io/gorm"

	"github.com/veridia/identity/internal/server/models"
	"github.com/veridia/identity/uid"
)

func CreateIdentity(db *gorm.DB, identity *models.Identity) error {
	return add(db, identity)
}

func GetIdentity(db *gorm.DB, selectors ...SelectorFunc) (*models.Identity, error) {
	return get[models.Identity](db, selectors...)
}

func SaveIdentity(db *gorm.DB, identity *models.Identity) error {
	return save(db, identity)
}

func DeleteIdentity(db *gorm.DB, id uid.ID) error {
	return delete[models.Identity](db, id)
}
