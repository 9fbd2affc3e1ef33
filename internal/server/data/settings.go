package data

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"

	"gopkg.in/square/go-jose.v2"
	"gorm.io/gorm"

	"github.com/veridia/identity/internal/server/models"
)

// InitializeSettings generates the token signing keypair on first startup.
// Subsequent calls return the existing record so the key survives restarts.
func InitializeSettings(db *gorm.DB) (*models.Settings, error) {
	existing, err := GetSettings(db)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pubkey, seckey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	sec := jose.JSONWebKey{Key: seckey, KeyID: "", Algorithm: string(jose.ED25519), Use: "sig"}

	thumb, err := sec.Thumbprint(crypto.SHA256)
	if err != nil {
		return nil, err
	}

	sec.KeyID = base64.URLEncoding.EncodeToString(thumb)

	pub := jose.JSONWebKey{Key: pubkey, KeyID: sec.KeyID, Algorithm: string(jose.ED25519), Use: "sig"}

	secs, err := sec.MarshalJSON()
	if err != nil {
		return nil, err
	}

	pubs, err := pub.MarshalJSON()
	if err != nil {
		return nil, err
	}

	settings := models.Settings{
		PrivateJWK: secs,
		PublicJWK:  pubs,
	}

	if err := db.Create(&settings).Error; err != nil {
		return nil, err
	}

	return &settings, nil
}

func GetSettings(db *gorm.DB) (*models.Settings, error) {
	var settings models.Settings
	if err := db.First(&settings).Error; err != nil {
		return nil, err
	}

	return &settings, nil
}
