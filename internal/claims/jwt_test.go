package claims

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"gopkg.in/square/go-jose.v2"
	"gotest.tools/v3/assert"

	"github.com/veridia/identity/uid"
)

func testKeyPair(t *testing.T) (priv, pub []byte) {
	t.Helper()

	pubKey, secKey, err := ed25519.GenerateKey(rand.Reader)
	assert.NilError(t, err)

	sec := jose.JSONWebKey{Key: secKey, KeyID: "test", Algorithm: string(jose.ED25519), Use: "sig"}
	pubJWK := jose.JSONWebKey{Key: pubKey, KeyID: "test", Algorithm: string(jose.ED25519), Use: "sig"}

	priv, err = sec.MarshalJSON()
	assert.NilError(t, err)
	pub, err = pubJWK.MarshalJSON()
	assert.NilError(t, err)
	return priv, pub
}

func TestCreateAndVerifyJWT(t *testing.T) {
	priv, pub := testKeyPair(t)
	subject := uid.New()

	raw, err := CreateJWT(priv, subject, time.Now().Add(time.Hour))
	assert.NilError(t, err)
	assert.Assert(t, raw != "")

	got, err := VerifyJWT(pub, raw)
	assert.NilError(t, err)
	assert.Equal(t, got, subject)
}

func TestVerifyJWT_Expired(t *testing.T) {
	priv, pub := testKeyPair(t)

	raw, err := CreateJWT(priv, uid.New(), time.Now().Add(-time.Minute))
	assert.NilError(t, err)

	_, err = VerifyJWT(pub, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJWT_Tampered(t *testing.T) {
	priv, pub := testKeyPair(t)

	raw, err := CreateJWT(priv, uid.New(), time.Now().Add(time.Hour))
	assert.NilError(t, err)

	tampered := raw[:len(raw)-2] + "xx"
	_, err = VerifyJWT(pub, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = VerifyJWT(pub, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyJWT_WrongKey(t *testing.T) {
	priv, _ := testKeyPair(t)
	_, otherPub := testKeyPair(t)

	raw, err := CreateJWT(priv, uid.New(), time.Now().Add(time.Hour))
	assert.NilError(t, err)

	_, err = VerifyJWT(otherPub, raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
