package orchid

import "context"

// GetLicenseSession retrieves the current VMS license session.
func (c *Client) GetLicenseSession(ctx context.Context) (*Response, error) {
	return c.get(ctx, "/license-session")
}

// CreateLicenseSession uploads a new VMS license and creates a license
// session from it.
func (c *Client) CreateLicenseSession(ctx context.Context, license string) (*Response, error) {
	body := map[string]any{"license": license}
	return c.post(ctx, "/license-session", body)
}

// DeleteLicenseSession deletes the current license session.
func (c *Client) DeleteLicenseSession(ctx context.Context) (*Response, error) {
	return c.delete(ctx, "/license-session")
}
