package orchid

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultIssuerTokenTTL = time.Hour

// IssuerTokenSigner mints JWTs signed with a trusted issuer's shared
// secret. A token produced here is a valid bearer credential against any
// server that trusts the issuer, so external systems can obtain sessions
// without a user password:
//
//	signer := orchid.NewIssuerTokenSigner(secret, orchidID, 0)
//	token, err := signer.Sign("integration")
//	client.SetBearerToken(token)
type IssuerTokenSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewIssuerTokenSigner creates a signer for the trusted issuer identified
// by orchidID (the same UUID passed to CreateTrustedIssuer). A ttl of zero
// defaults to one hour.
func NewIssuerTokenSigner(secret []byte, orchidID uuid.UUID, ttl time.Duration) *IssuerTokenSigner {
	if ttl <= 0 {
		ttl = defaultIssuerTokenTTL
	}
	return &IssuerTokenSigner{
		secret: secret,
		issuer: orchidID.String(),
		ttl:    ttl,
	}
}

// Sign produces an HS512-signed token for the given subject.
func (s *IssuerTokenSigner) Sign(subject string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("orchid: issuer secret is empty")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
}
