package orchid

import (
	"context"
	"encoding/base64"

	"github.com/google/uuid"
)

// GetTrustedIssuer retrieves the current trusted issuer.
func (c *Client) GetTrustedIssuer(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/trusted/issuer")
}

// CreateTrustedIssuer registers a trusted issuer on the server. orchidID is
// the UUID of the Orchid Core VMS server and secret is the 32-byte shared
// secret used to sign JWTs (see IssuerTokenSigner). The secret travels as a
// JWK of type "oct" with a url-safe base64 key.
func (c *Client) CreateTrustedIssuer(ctx context.Context, orchidID uuid.UUID, secret []byte, description, uri string) (*Response, error) {
	body := map[string]any{
		"id":           orchidID.String(),
		"access_token": "",
		"key": map[string]string{
			"kty": "oct",
			"k":   base64.URLEncoding.EncodeToString(secret),
		},
		"description": description,
		"uri":         uri,
	}
	return c.post(ctx, "/trusted/issuer?version=2", body)
}

// DeleteTrustedIssuer removes the trusted issuer.
func (c *Client) DeleteTrustedIssuer(ctx context.Context) (*Response, error) {
	return c.delete(ctx, "/trusted/issuer")
}
