package claims

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/square/go-jose.v2"
	"gopkg.in/square/go-jose.v2/jwt"

	"github.com/veridia/identity/internal/generate"
	"github.com/veridia/identity/uid"
)

const Issuer = "VeridiaIdentity"

// ErrInvalidToken is returned by Verify for any token that does not pass:
// bad signature, malformed compact serialization, wrong issuer, or expired
// claims. Callers must not distinguish between these cases.
var ErrInvalidToken = errors.New("invalid token")

var signatureAlgorithmFromKeyAlgorithm = map[string]string{
	"ED25519": "EdDSA", // elliptic curve 25519
}

// CreateJWT signs a token for subject which expires at expires. The key is
// a JSON serialized private jose.JSONWebKey.
func CreateJWT(privateJWK []byte, subject uid.ID, expires time.Time) (string, error) {
	// Warning: sec is a sensitive value, do not log it
	var sec jose.JSONWebKey
	if err := sec.UnmarshalJSON(privateJWK); err != nil {
		return "", err
	}

	algo, ok := signatureAlgorithmFromKeyAlgorithm[sec.Algorithm]
	if !ok {
		return "", fmt.Errorf("unsupported algorithm %v", sec.Algorithm)
	}

	options := &jose.SignerOptions{}

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.SignatureAlgorithm(algo), Key: sec}, options.WithType("JWT"))
	if err != nil {
		return "", err
	}

	nonce, err := generate.CryptoRandom(10, generate.CharsetAlphaNumeric)
	if err != nil {
		return "", err
	}

	now := time.Now()

	claim := jwt.Claims{
		Issuer:    Issuer,
		Subject:   subject.String(),
		NotBefore: jwt.NewNumericDate(now.Add(time.Minute * -5)), // adjust for clock drift
		Expiry:    jwt.NewNumericDate(expires),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	custom := Custom{Nonce: nonce}

	raw, err := jwt.Signed(signer).Claims(claim).Claims(custom).CompactSerialize()
	if err != nil {
		return "", err
	}

	return raw, nil
}

// VerifyJWT checks the signature and time claims of raw against the public
// half of the signing key, and returns the subject the token was issued for.
// Every failure maps to ErrInvalidToken.
func VerifyJWT(publicJWK []byte, raw string) (uid.ID, error) {
	var pub jose.JSONWebKey
	if err := pub.UnmarshalJSON(publicJWK); err != nil {
		return 0, err
	}

	tok, err := jwt.ParseSigned(raw)
	if err != nil {
		return 0, ErrInvalidToken
	}

	var claim jwt.Claims
	if err := tok.Claims(pub, &claim); err != nil {
		return 0, ErrInvalidToken
	}

	err = claim.Validate(jwt.Expected{
		Issuer: Issuer,
		Time:   time.Now(),
	})
	if err != nil {
		return 0, ErrInvalidToken
	}

	subject, err := uid.Parse([]byte(claim.Subject))
	if err != nil {
		return 0, ErrInvalidToken
	}

	return subject, nil
}
